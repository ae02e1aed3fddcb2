package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/credit-server/internal/storage/account"
	"github.com/carson-networks/credit-server/internal/storage/product"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
	"github.com/carson-networks/credit-server/internal/storage/transactionproduct"
)

// Tx is the commit/rollback surface of a storage transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles per-table writers bound to one transaction. The embedded
// readers on each writer observe the transaction's own uncommitted state.
type Writer struct {
	tx                 Tx
	Account            account.IAccountWriter
	Product            product.IProductWriter
	Transaction        transaction.ITransactionWriter
	TransactionProduct transactionproduct.ITransactionProductWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:                 tx,
		Account:            account.NewWriter(tx),
		Product:            product.NewWriter(tx),
		Transaction:        transaction.NewWriter(tx),
		TransactionProduct: transactionproduct.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return wrapSerialization(w.tx.Commit(context.Background()))
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}
