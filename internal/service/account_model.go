package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/storage/account"
)

// Account represents an account in the service layer. Credit amounts are
// signed minor currency units.
type Account struct {
	ID            uuid.UUID
	Name          string
	Credit        int64
	MinimumCredit int64
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:            row.ID,
		Name:          row.Name,
		Credit:        row.Credit,
		MinimumCredit: row.MinimumCredit,
	}
}
