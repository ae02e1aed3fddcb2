package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage"
)

// ProductService handles product read access.
type ProductService struct {
	storage *storage.Storage
}

// NewProductService creates a new ProductService.
func NewProductService(store *storage.Storage) *ProductService {
	return &ProductService{storage: store}
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	row, err := s.storage.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProductNotFound
	}
	return productFromStorage(row), nil
}

// ListProducts returns all products.
func (s *ProductService) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.storage.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Product, len(rows))
	for i, row := range rows {
		converted[i] = *productFromStorage(row)
	}
	return converted, nil
}
