package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/credit-server/internal/config"
	"github.com/carson-networks/credit-server/internal/storage/account"
	"github.com/carson-networks/credit-server/internal/storage/product"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
	"github.com/carson-networks/credit-server/internal/storage/transactionproduct"
)

// Storage bundles the database handle with the read-only table accessors.
// All writes go through a Writer obtained from Write.
type Storage struct {
	DB                  bob.DB
	Accounts            account.IAccountTable
	Products            product.IProductTable
	Transactions        transaction.ITransactionTable
	TransactionProducts transactionproduct.ITransactionProductTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:                  bobDB,
		Accounts:            account.NewReader(bobDB),
		Products:            product.NewReader(bobDB),
		Transactions:        transaction.NewReader(bobDB),
		TransactionProducts: transactionproduct.NewReader(bobDB),
	}, nil
}

// Write begins a serializable transaction and returns a Writer scoped to it.
// Serializable isolation is the only concurrency-control mechanism for the
// balance read-check-write sequence and for audit snapshots; conflicting
// writers fail with ErrSerialization instead of blocking on app-level locks.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
