package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Account represents an account record. Credit amounts are signed minor
// currency units; the credit field is mutated exclusively through the
// transaction executor.
type Account struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Credit        int64     `db:"credit"`
	MinimumCredit int64     `db:"minimum_credit"`
	CreatedAt     time.Time `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID            uuid.UUID
	Name          string
	Credit        int64
	MinimumCredit int64
}

// IAccountTable defines the read-only interface for account storage.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

// IAccountWriter is the transaction-scoped write interface. It includes the
// reader methods so a writer observes its own uncommitted state.
//
//go:generate mockery --name IAccountWriter --output mock_IAccountWriter.go
type IAccountWriter interface {
	IAccountTable
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Create(ctx context.Context, create *AccountCreate) error
	UpdateCredit(ctx context.Context, id uuid.UUID, credit int64) error
}
