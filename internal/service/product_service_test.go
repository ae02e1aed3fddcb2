package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/product"
)

func newProductTestService(t *testing.T) (*ProductService, *product.MockIProductTable) {
	t.Helper()
	mockTable := product.NewMockIProductTable(t)
	store := &storage.Storage{Products: mockTable}
	svc := NewProductService(store)
	return svc, mockTable
}

func TestGetProduct_Success(t *testing.T) {
	svc, mockTable := newProductTestService(t)

	id := uuid.Must(uuid.NewV4())
	row := &product.Product{
		ID:       id,
		Name:     "Coffee",
		Category: "Hot drinks",
		Price:    150,
	}
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(row, nil)

	result, err := svc.GetProduct(context.Background(), id)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, row.Name, result.Name)
	assert.Equal(t, row.Category, result.Category)
	assert.Equal(t, row.Price, result.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, mockTable := newProductTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	result, err := svc.GetProduct(context.Background(), id)

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, result)
}

func TestListProducts_Success(t *testing.T) {
	svc, mockTable := newProductTestService(t)

	rows := []*product.Product{
		{ID: uuid.Must(uuid.NewV4()), Name: "Coffee", Category: "Hot drinks", Price: 150},
		{ID: uuid.Must(uuid.NewV4()), Name: "Sandwich", Category: "Snacks", Price: 350},
	}
	mockTable.EXPECT().List(mock.Anything).Return(rows, nil)

	products, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, rows[0].Name, products[0].Name)
	assert.Equal(t, rows[1].Price, products[1].Price)
}

func TestListProducts_StorageError(t *testing.T) {
	svc, mockTable := newProductTestService(t)

	mockTable.EXPECT().List(mock.Anything).
		Return(nil, errors.New("database unavailable"))

	products, err := svc.ListProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}
