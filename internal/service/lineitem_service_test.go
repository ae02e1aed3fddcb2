package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/product"
	"github.com/carson-networks/credit-server/internal/storage/transactionproduct"
)

func newLineItemTestService(t *testing.T) (*LineItemService, *transactionproduct.MockITransactionProductTable, *product.MockIProductTable, *MockActionProcessor) {
	t.Helper()
	mockAssociations := transactionproduct.NewMockITransactionProductTable(t)
	mockProducts := product.NewMockIProductTable(t)
	mockProcessor := NewMockActionProcessor(t)
	store := &storage.Storage{
		Products:            mockProducts,
		TransactionProducts: mockAssociations,
	}
	svc := NewLineItemService(store, mockProcessor)
	return svc, mockAssociations, mockProducts, mockProcessor
}

// -- AddProducts / RemoveProducts tests --

func TestLineItemAddProducts_BuildsAction(t *testing.T) {
	svc, _, _, mockProcessor := newLineItemTestService(t)

	transactionID := uuid.Must(uuid.NewV4())
	productID := uuid.Must(uuid.NewV4())

	mockProcessor.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		add, ok := a.(*actions.AddProducts)
		return ok &&
			add.TransactionID == transactionID &&
			len(add.Items) == 1 &&
			add.Items[0].ProductID == productID &&
			add.Items[0].Amount == 2
	})).Return(nil)

	err := svc.AddProducts(context.Background(), transactionID, []ProductAmount{
		{ProductID: productID, Amount: 2},
	})

	assert.NoError(t, err)
}

func TestLineItemRemoveProducts_BuildsAction(t *testing.T) {
	svc, _, _, mockProcessor := newLineItemTestService(t)

	transactionID := uuid.Must(uuid.NewV4())
	productID := uuid.Must(uuid.NewV4())

	mockProcessor.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		remove, ok := a.(*actions.RemoveProducts)
		return ok &&
			remove.TransactionID == transactionID &&
			len(remove.Items) == 1 &&
			remove.Items[0].Amount == 3
	})).Return(nil)

	err := svc.RemoveProducts(context.Background(), transactionID, []ProductAmount{
		{ProductID: productID, Amount: 3},
	})

	assert.NoError(t, err)
}

func TestLineItemAddProducts_ProcessorError(t *testing.T) {
	svc, _, _, mockProcessor := newLineItemTestService(t)

	mockProcessor.EXPECT().Process(mock.Anything, mock.Anything).
		Return(actions.ErrTransactionNotFound)

	err := svc.AddProducts(context.Background(), uuid.Must(uuid.NewV4()), []ProductAmount{
		{ProductID: uuid.Must(uuid.NewV4()), Amount: 1},
	})

	assert.ErrorIs(t, err, actions.ErrTransactionNotFound)
}

// -- GetProducts tests --

func TestGetProducts_ResolvesAssociations(t *testing.T) {
	svc, mockAssociations, mockProducts, _ := newLineItemTestService(t)

	transactionID := uuid.Must(uuid.NewV4())
	coffeeID := uuid.Must(uuid.NewV4())
	sandwichID := uuid.Must(uuid.NewV4())

	mockAssociations.EXPECT().ListByTransaction(mock.Anything, transactionID).
		Return([]*transactionproduct.TransactionProduct{
			{TransactionID: transactionID, ProductID: coffeeID, Amount: 2},
			{TransactionID: transactionID, ProductID: sandwichID, Amount: 1},
		}, nil)
	mockProducts.EXPECT().FindByID(mock.Anything, coffeeID).
		Return(&product.Product{ID: coffeeID, Name: "Coffee", Price: 150}, nil)
	mockProducts.EXPECT().FindByID(mock.Anything, sandwichID).
		Return(&product.Product{ID: sandwichID, Name: "Sandwich", Price: 350}, nil)

	items, err := svc.GetProducts(context.Background(), transactionID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Coffee", items[0].Product.Name)
	assert.Equal(t, int64(2), items[0].Amount)
	assert.Equal(t, "Sandwich", items[1].Product.Name)
	assert.Equal(t, int64(1), items[1].Amount)
}

func TestGetProducts_DropsUnresolvableProduct(t *testing.T) {
	svc, mockAssociations, mockProducts, _ := newLineItemTestService(t)

	transactionID := uuid.Must(uuid.NewV4())
	goneID := uuid.Must(uuid.NewV4())
	keptID := uuid.Must(uuid.NewV4())

	mockAssociations.EXPECT().ListByTransaction(mock.Anything, transactionID).
		Return([]*transactionproduct.TransactionProduct{
			{TransactionID: transactionID, ProductID: goneID, Amount: 1},
			{TransactionID: transactionID, ProductID: keptID, Amount: 4},
		}, nil)
	mockProducts.EXPECT().FindByID(mock.Anything, goneID).Return(nil, nil)
	mockProducts.EXPECT().FindByID(mock.Anything, keptID).
		Return(&product.Product{ID: keptID, Name: "Tea", Price: 120}, nil)

	items, err := svc.GetProducts(context.Background(), transactionID)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, keptID, items[0].Product.ID)
}

func TestGetProducts_StorageError(t *testing.T) {
	svc, mockAssociations, _, _ := newLineItemTestService(t)

	transactionID := uuid.Must(uuid.NewV4())
	mockAssociations.EXPECT().ListByTransaction(mock.Anything, transactionID).
		Return(nil, errors.New("database unavailable"))

	items, err := svc.GetProducts(context.Background(), transactionID)

	assert.Error(t, err)
	assert.Nil(t, items)
}
