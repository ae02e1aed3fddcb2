package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/account"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
)

// snapshotStore opens the serializable transaction the auditor reads its
// consistent snapshot from.
type snapshotStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// AuditService replays transaction histories and checks that every stored
// balance is explained by its ledger.
type AuditService struct {
	snapshots snapshotStore
	accounts  account.IAccountTable
}

// NewAuditService creates a new AuditService.
func NewAuditService(store *storage.Storage) *AuditService {
	return &AuditService{
		snapshots: store,
		accounts:  store.Accounts,
	}
}

// ValidateAccount replays one account's transactions in date order inside a
// serializable snapshot, so a concurrent executor commit is either fully
// visible or not at all. The returned error is infrastructure only; every
// audit outcome, including mismatches, is a ValidationResult.
func (s *AuditService) ValidateAccount(ctx context.Context, accountID uuid.UUID) (*ValidationResult, error) {
	writer, err := s.snapshots.Write(ctx)
	if err != nil {
		return nil, err
	}
	// Read-only replay; the snapshot is always rolled back.
	defer func() {
		_ = writer.Rollback()
	}()

	row, err := writer.Account.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, actions.ErrAccountNotFound
	}

	rows, err := writer.Transaction.ListByAccount(ctx, accountID, nil)
	if err != nil {
		return nil, err
	}

	return validateChain(row, rows), nil
}

// ValidateAll audits every account independently. An infrastructure failure
// while replaying one account maps to a ValidationError verdict for that
// account only; the batch always covers every account.
func (s *AuditService) ValidateAll(ctx context.Context) (map[uuid.UUID]ValidationResult, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make(map[uuid.UUID]ValidationResult, len(accounts))
	for _, row := range accounts {
		result, err := s.ValidateAccount(ctx, row.ID)
		if err != nil {
			results[row.ID] = ValidationResult{
				Status:  ValidationError,
				Message: err.Error(),
			}
			continue
		}
		results[row.ID] = *result
	}
	return results, nil
}

func validateChain(row *account.Account, rows []*transaction.Transaction) *ValidationResult {
	if len(rows) == 0 {
		if row.Credit == 0 {
			return &ValidationResult{Status: ValidationNoData}
		}
		// No history, non-zero balance: the ledger does not explain it.
		return &ValidationResult{
			Status:   ValidationInvalidSum,
			Expected: 0,
			Actual:   row.Credit,
		}
	}

	var expectedBefore int64
	for _, entry := range rows {
		if entry.BeforeCredit != expectedBefore {
			return &ValidationResult{
				Status:            ValidationInvalidTransactionBefore,
				ExpectedCredit:    expectedBefore,
				TransactionCredit: entry.BeforeCredit,
				Transaction:       transactionFromStorage(entry),
			}
		}
		if entry.BeforeCredit+entry.Total != entry.AfterCredit {
			return &ValidationResult{
				Status:            ValidationInvalidTransactionAfter,
				ExpectedCredit:    entry.BeforeCredit + entry.Total,
				TransactionCredit: entry.AfterCredit,
				Transaction:       transactionFromStorage(entry),
			}
		}
		expectedBefore += entry.Total
	}

	if expectedBefore != row.Credit {
		return &ValidationResult{
			Status:   ValidationInvalidSum,
			Expected: expectedBefore,
			Actual:   row.Credit,
		}
	}
	return &ValidationResult{Status: ValidationOk}
}
