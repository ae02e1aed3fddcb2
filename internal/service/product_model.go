package service

import (
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage/product"
)

var ErrProductNotFound = errors.New("product not found")

// Product represents a product in the service layer. Price is in minor
// currency units.
type Product struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    int64
}

func productFromStorage(row *product.Product) *Product {
	return &Product{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Price:    row.Price,
	}
}
