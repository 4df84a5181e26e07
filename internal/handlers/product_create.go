package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/models"
	"github.com/mvianna/api-produtos/internal/services"
)

// ProductCreator defines the interface that the service must implement.
type ProductCreator interface {
	Create(ctx context.Context, name string, price float64, inStock bool) (*models.ProductDB, error)
}

// CreateProductRequest represents the JSON body for product creation
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	// Product name
	// required: true
	// default: Café
	Nome string `json:"nome"`

	// Product price
	// required: true
	// default: 9.99
	Preco float64 `json:"preco"`

	// In stock flag, defaults to true when omitted
	// default: true
	EmEstoque *bool `json:"em_estoque"`
}

// ProductErrorResponse represents an error response for product endpoints
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	// default: Produto não encontrado
	Error string `json:"error"`
}

// NewCreateProductHandler returns an HTTP handler for product creation.
// @Summary Create a product
// @Description Stores a new product and returns it with its generated id
// @Tags produtos
// @Accept json
// @Produce json
// @Param createProductRequest body handlers.CreateProductRequest true "Product to create"
// @Success 200 {object} models.ProductDB "Created product"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid request"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Router /produtos/ [post]
// @Security BearerAuth
func NewCreateProductHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Error: "corpo da requisição inválido",
			})
			return
		}

		inStock := true
		if req.EmEstoque != nil {
			inStock = *req.EmEstoque
		}

		product, err := svc.Create(r.Context(), req.Nome, req.Preco, inStock)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: "dados do produto inválidos",
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
