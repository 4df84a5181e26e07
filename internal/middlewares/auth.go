package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mvianna/api-produtos/internal/jwt"
	"github.com/mvianna/api-produtos/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthErrorResponse is the uniform body for every authorization failure.
// A missing header, a bad signature and an expired token are not
// distinguishable from the outside.
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	// default: Token inválido
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that validates the bearer token
// and stores the verified username in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = setUsernameToContext(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(AuthErrorResponse{Error: "Token inválido"})
}

var usernameKey = contextKey{"username"}

// setUsernameToContext stores the authenticated username in the context
func setUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. Returns an empty string if the request was not authenticated.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
