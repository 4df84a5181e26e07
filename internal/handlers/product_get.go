package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/models"
	"github.com/mvianna/api-produtos/internal/services"
)

// ProductGetter defines the interface that the service must implement.
type ProductGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.ProductDB, error)
}

// NewGetProductHandler returns an HTTP handler fetching a product by id.
// @Summary Get a product
// @Description Returns the product with the given id
// @Tags produtos
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.ProductDB "Product"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ProductErrorResponse "Unknown product id"
// @Router /produtos/{id} [get]
// @Security BearerAuth
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// A malformed id cannot match any product
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Error: "Produto não encontrado",
			})
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: "Produto não encontrado",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: "Erro interno do servidor",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(product)
	}
}
