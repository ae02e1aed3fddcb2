package actions

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// PolicyViolationError rejects a transaction that would both land below the
// account's minimum credit and make the balance worse. It is a business
// outcome, distinct from infrastructure failures; callers recover by topping
// up first or choosing a different amount.
type PolicyViolationError struct {
	Credit        int64
	MinimumCredit int64
	Amount        int64
	AfterCredit   int64
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf(
		"transaction of %d rejected: credit %d would become %d, below minimum %d",
		e.Amount, e.Credit, e.AfterCredit, e.MinimumCredit,
	)
}
