package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
)

// TransactionService is the transaction executor and the ledger read path.
type TransactionService struct {
	storage         *storage.Storage
	processor       ActionProcessor
	allowZeroAmount bool
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor, allowZeroAmount bool) *TransactionService {
	return &TransactionService{
		storage:         store,
		processor:       processor,
		allowZeroAmount: allowZeroAmount,
	}
}

// Execute atomically applies the signed amount to the account's credit and
// returns the resulting ledger entry, whose AfterCredit is the new balance.
// A zero date stamps the entry with now.
//
// Failure leaves everything untouched: a *actions.PolicyViolationError means
// the credit floor rejected the amount, storage.IsSerializationFailure
// identifies a conflict with a concurrent execution (retry is the caller's
// decision), anything else is infrastructure.
func (s *TransactionService) Execute(ctx context.Context, accountID uuid.UUID, cashierID *uuid.UUID, amount int64, date time.Time) (*Transaction, error) {
	action := &actions.ExecuteTransaction{
		AccountID: accountID,
		Amount:    amount,
		Date:      date,
		AllowZero: s.allowZeroAmount,
	}
	if cashierID != nil {
		action.CashierID = uuid.NullUUID{UUID: *cashierID, Valid: true}
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return transactionFromStorage(action.Result), nil
}

// ListTransactions returns an account's ledger entries ordered by date
// ascending, optionally restricted to a date window.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID uuid.UUID, filter *TransactionFilter) ([]Transaction, error) {
	var storageFilter *transaction.ListFilter
	if filter != nil {
		storageFilter = &transaction.ListFilter{
			From: filter.From,
			To:   filter.To,
		}
	}

	rows, err := s.storage.Transactions.ListByAccount(ctx, accountID, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted, nil
}
