package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/models"
)

type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// List returns all products.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT id, nome, preco, em_estoque
		FROM produtos
		ORDER BY id
	`

	products := []models.ProductDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &products, query)

	logger.Log.Infow("product select",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(products),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID returns the product with the given id, or nil when no such
// product exists.
func (r *ProductReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductDB, error) {
	const query = `
		SELECT id, nome, preco, em_estoque
		FROM produtos
		WHERE id = $1
	`

	var product models.ProductDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &product, query, id)

	logger.Log.Infow("product select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Save inserts a new product and returns the stored row with its
// generated id.
func (r *ProductWriteRepository) Save(ctx context.Context, name string, price float64, inStock bool) (*models.ProductDB, error) {
	const query = `
		INSERT INTO produtos (nome, preco, em_estoque)
		VALUES ($1, $2, $3)
		RETURNING id, nome, preco, em_estoque
	`
	args := []any{name, price, inStock}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &product, query, args...)

	logger.Log.Infow("product insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Delete removes the product with the given id and reports whether a
// row was actually deleted.
func (r *ProductWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM produtos
		WHERE id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("product delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
