package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mvianna/api-produtos/internal/middlewares"
)

// executor returns the per-request transaction when the tx middleware
// opened one, otherwise the shared connection pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
