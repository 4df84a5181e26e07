package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/services"
)

// ProductDeleter defines the interface that the service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteProductResponse represents a successful deletion response
// swagger:model DeleteProductResponse
type DeleteProductResponse struct {
	// Success message
	// default: Produto deletado com sucesso
	Msg string `json:"msg"`
}

// NewDeleteProductHandler returns an HTTP handler deleting a product by id.
// @Summary Delete a product
// @Description Removes the product with the given id
// @Tags produtos
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} handlers.DeleteProductResponse "Product deleted"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ProductErrorResponse "Unknown product id"
// @Router /produtos/{id} [delete]
// @Security BearerAuth
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), id); err != nil {
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
		json.NewEncoder(w).Encode(DeleteProductResponse{
			Msg: "Produto deletado com sucesso",
		})
	}
}
