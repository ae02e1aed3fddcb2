package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage"
)

// ProductAmount names a product quantity in an add or remove request.
type ProductAmount struct {
	ProductID uuid.UUID
	Amount    int64
}

// AddProducts attaches product quantities to an existing transaction,
// merging into any association that is already there. No credit policy runs
// here; line items are metadata on an already-committed transaction.
type AddProducts struct {
	TransactionID uuid.UUID
	Items         []ProductAmount
}

func (a *AddProducts) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := writer.Transaction.FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrTransactionNotFound
	}

	for _, item := range a.Items {
		if err := mergeProduct(ctx, writer, a.TransactionID, item.ProductID, item.Amount); err != nil {
			return err
		}
	}
	return nil
}

// RemoveProducts detaches product quantities from a transaction, flooring at
// zero: a row whose amount would reach zero or below is deleted instead of
// stored non-positive.
type RemoveProducts struct {
	TransactionID uuid.UUID
	Items         []ProductAmount
}

func (a *RemoveProducts) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := writer.Transaction.FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrTransactionNotFound
	}

	for _, item := range a.Items {
		if err := mergeProduct(ctx, writer, a.TransactionID, item.ProductID, -item.Amount); err != nil {
			return err
		}
	}
	return nil
}

// mergeProduct applies a signed delta to one (transaction, product)
// association. The stored amount is always positive; any merge reaching zero
// or below removes the row.
func mergeProduct(ctx context.Context, writer *storage.Writer, transactionID, productID uuid.UUID, delta int64) error {
	existing, err := writer.TransactionProduct.FindForUpdate(ctx, transactionID, productID)
	if err != nil {
		return err
	}

	if existing == nil {
		if delta <= 0 {
			return nil
		}
		return writer.TransactionProduct.Insert(ctx, transactionID, productID, delta)
	}

	newAmount := existing.Amount + delta
	if newAmount <= 0 {
		return writer.TransactionProduct.Delete(ctx, transactionID, productID)
	}
	return writer.TransactionProduct.UpdateAmount(ctx, transactionID, productID, newAmount)
}
