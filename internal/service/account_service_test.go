package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/account"
)

func newAccountTestService(t *testing.T) (*AccountService, *account.MockIAccountTable) {
	t.Helper()
	mockTable := account.NewMockIAccountTable(t)
	store := &storage.Storage{Accounts: mockTable}
	svc := NewAccountService(store)
	return svc, mockTable
}

// -- GetAccount tests --

func TestGetAccount_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	id := uuid.Must(uuid.NewV4())
	row := &account.Account{
		ID:            id,
		Name:          "Lunch account",
		Credit:        -250,
		MinimumCredit: -5000,
	}
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(row, nil)

	result, err := svc.GetAccount(context.Background(), id)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, row.Name, result.Name)
	assert.Equal(t, row.Credit, result.Credit)
	assert.Equal(t, row.MinimumCredit, result.MinimumCredit)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	result, err := svc.GetAccount(context.Background(), id)

	assert.ErrorIs(t, err, actions.ErrAccountNotFound)
	assert.Nil(t, result)
}

func TestGetAccount_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).
		Return(nil, errors.New("connection refused"))

	result, err := svc.GetAccount(context.Background(), id)

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Nil(t, result)
}

// -- ListAccounts tests --

func TestListAccounts_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	rows := []*account.Account{
		{ID: uuid.Must(uuid.NewV4()), Name: "Alice", Credit: 1200, MinimumCredit: -5000},
		{ID: uuid.Must(uuid.NewV4()), Name: "Bob", Credit: -300, MinimumCredit: 0},
	}
	mockTable.EXPECT().List(mock.Anything).Return(rows, nil)

	accounts, err := svc.ListAccounts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, rows[0].ID, accounts[0].ID)
	assert.Equal(t, rows[0].Credit, accounts[0].Credit)
	assert.Equal(t, rows[1].Name, accounts[1].Name)
	assert.Equal(t, rows[1].MinimumCredit, accounts[1].MinimumCredit)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().List(mock.Anything).
		Return(nil, errors.New("database unavailable"))

	accounts, err := svc.ListAccounts(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, accounts)
}
