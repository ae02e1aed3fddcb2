package transactionproduct

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// TransactionProduct associates a product quantity with a transaction.
// Amount is always positive; a merge that would reach zero or below deletes
// the row instead.
type TransactionProduct struct {
	TransactionID uuid.UUID `db:"transaction_id"`
	ProductID     uuid.UUID `db:"product_id"`
	Amount        int64     `db:"amount"`
}

// ITransactionProductTable defines the read-only interface for line-item
// association storage.
//
//go:generate mockery --name ITransactionProductTable --output mock_ITransactionProductTable.go
type ITransactionProductTable interface {
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*TransactionProduct, error)
}

// ITransactionProductWriter is the transaction-scoped write interface.
//
//go:generate mockery --name ITransactionProductWriter --output mock_ITransactionProductWriter.go
type ITransactionProductWriter interface {
	ITransactionProductTable
	FindForUpdate(ctx context.Context, transactionID, productID uuid.UUID) (*TransactionProduct, error)
	Insert(ctx context.Context, transactionID, productID uuid.UUID, amount int64) error
	UpdateAmount(ctx context.Context, transactionID, productID uuid.UUID, amount int64) error
	Delete(ctx context.Context, transactionID, productID uuid.UUID) error
}
