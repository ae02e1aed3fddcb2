package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
)

// ExecuteTransaction applies a signed amount to an account's credit and
// records the change as an immutable ledger entry. The balance decision is
// always made against the row re-read inside the transaction, never against
// whatever the caller last saw.
type ExecuteTransaction struct {
	AccountID uuid.UUID
	CashierID uuid.NullUUID
	Amount    int64
	// Date stamps the ledger entry; zero means now. Callers backfilling
	// history supply their own dates.
	Date time.Time
	// AllowZero permits zero-amount entries when set.
	AllowZero bool

	// Result holds the created ledger entry after a successful Perform.
	// It is only meaningful once the surrounding transaction committed.
	Result *transaction.Transaction
}

func (t *ExecuteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByIDForUpdate(ctx, t.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	afterCredit := account.Credit + t.Amount

	if t.Amount == 0 && !t.AllowZero {
		return &PolicyViolationError{
			Credit:        account.Credit,
			MinimumCredit: account.MinimumCredit,
			Amount:        t.Amount,
			AfterCredit:   afterCredit,
		}
	}

	// The floor only blocks changes that both land below it and worsen the
	// balance: an increase is accepted even while still below the floor.
	if afterCredit < account.MinimumCredit && afterCredit < account.Credit {
		return &PolicyViolationError{
			Credit:        account.Credit,
			MinimumCredit: account.MinimumCredit,
			Amount:        t.Amount,
			AfterCredit:   afterCredit,
		}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	date := t.Date
	if date.IsZero() {
		date = time.Now()
	}

	create := &transaction.TransactionCreate{
		ID:           id,
		AccountID:    t.AccountID,
		CashierID:    t.CashierID,
		Total:        t.Amount,
		BeforeCredit: account.Credit,
		AfterCredit:  afterCredit,
		Date:         date,
	}
	if err := writer.Transaction.Insert(ctx, create); err != nil {
		return err
	}

	if err := writer.Account.UpdateCredit(ctx, t.AccountID, afterCredit); err != nil {
		return err
	}

	t.Result = &transaction.Transaction{
		ID:           id,
		AccountID:    t.AccountID,
		CashierID:    t.CashierID,
		Total:        t.Amount,
		BeforeCredit: account.Credit,
		AfterCredit:  afterCredit,
		Date:         date,
	}
	return nil
}
