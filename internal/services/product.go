package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mvianna/api-produtos/internal/logger"
	"github.com/mvianna/api-produtos/internal/models"
)

// ErrProductNotFound is returned when no product exists for the given id.
var ErrProductNotFound = errors.New("product not found")

// ProductReader defines read-only operations for products.
type ProductReader interface {
	List(ctx context.Context) ([]models.ProductDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductDB, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, name string, price float64, inStock bool) (*models.ProductDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductService handles product CRUD.
type ProductService struct {
	reader ProductReader
	writer ProductWriter
}

// NewProductService creates a new ProductService instance.
func NewProductService(reader ProductReader, writer ProductWriter) *ProductService {
	return &ProductService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a new product.
func (svc *ProductService) Create(ctx context.Context, name string, price float64, inStock bool) (*models.ProductDB, error) {
	if name == "" || price < 0 {
		return nil, ErrValidation
	}

	product, err := svc.writer.Save(ctx, name, price, inStock)
	if err != nil {
		logger.Log.Errorw("failed to save product", "err", err)
		return nil, err
	}

	return product, nil
}

// List returns all products.
func (svc *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	products, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "err", err)
		return nil, err
	}

	return products, nil
}

// Get returns a product by id.
func (svc *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.ProductDB, error) {
	product, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get product", "err", err, "product_id", id)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// Delete removes a product by id.
func (svc *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete product", "err", err, "product_id", id)
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	return nil
}
