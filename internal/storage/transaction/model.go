package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Transaction is an immutable ledger entry. Rows are only ever inserted;
// before/after snapshots let the auditor replay the chain later.
type Transaction struct {
	ID           uuid.UUID     `db:"id"`
	AccountID    uuid.UUID     `db:"account_id"`
	CashierID    uuid.NullUUID `db:"cashier_id"`
	Total        int64         `db:"total"`
	BeforeCredit int64         `db:"before_credit"`
	AfterCredit  int64         `db:"after_credit"`
	Date         time.Time     `db:"date"`
	CreatedAt    time.Time     `db:"created_at"`
}

// TransactionCreate is the input for inserting a new ledger entry.
type TransactionCreate struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CashierID    uuid.NullUUID
	Total        int64
	BeforeCredit int64
	AfterCredit  int64
	Date         time.Time
}

// ListFilter restricts ListByAccount to a date window. Nil bounds are open.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

// ITransactionTable defines the read-only interface for transaction storage.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, filter *ListFilter) ([]*Transaction, error)
}

// ITransactionWriter is the transaction-scoped write interface.
//
//go:generate mockery --name ITransactionWriter --output mock_ITransactionWriter.go
type ITransactionWriter interface {
	ITransactionTable
	Insert(ctx context.Context, create *TransactionCreate) error
}
