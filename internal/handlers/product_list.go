package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/models"
)

// ProductLister defines the interface that the service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// NewListProductsHandler returns an HTTP handler listing all products.
// @Summary List products
// @Description Returns every product in the catalog
// @Tags produtos
// @Produce json
// @Success 200 {array} models.ProductDB "Products"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Router /produtos/ [get]
// @Security BearerAuth
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Error: "Erro interno do servidor",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(products)
	}
}
