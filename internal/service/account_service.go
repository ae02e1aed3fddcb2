package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
)

// AccountService handles account read access. Account balances are mutated
// only through TransactionService.Execute.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, actions.ErrAccountNotFound
	}
	return accountFromStorage(row), nil
}

// ListAccounts returns all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = *accountFromStorage(row)
	}
	return converted, nil
}
