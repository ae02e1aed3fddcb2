package product

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Product represents a product record. Price is in minor currency units.
type Product struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Price     int64     `db:"price"`
	CreatedAt time.Time `db:"created_at"`
}

// ProductCreate is the input for creating a new product.
type ProductCreate struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    int64
}

// IProductTable defines the read-only interface for product storage.
//
//go:generate mockery --name IProductTable --output mock_IProductTable.go
type IProductTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}

// IProductWriter is the transaction-scoped write interface.
type IProductWriter interface {
	IProductTable
	Create(ctx context.Context, create *ProductCreate) error
}
