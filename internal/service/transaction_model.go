package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage/transaction"
)

// Transaction represents an immutable ledger entry in the service layer.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CashierID    *uuid.UUID
	Total        int64
	BeforeCredit int64
	AfterCredit  int64
	Date         time.Time
}

// TransactionFilter restricts listings to a date window. Nil bounds are open.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	converted := &Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		Total:        row.Total,
		BeforeCredit: row.BeforeCredit,
		AfterCredit:  row.AfterCredit,
		Date:         row.Date,
	}
	if row.CashierID.Valid {
		cashierID := row.CashierID.UUID
		converted.CashierID = &cashierID
	}
	return converted
}
