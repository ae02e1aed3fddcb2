package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/account"
	"github.com/carson-networks/credit-server/internal/storage/transaction"
)

type fakeSnapshotStore struct {
	writer *storage.Writer
	err    error
}

func (f *fakeSnapshotStore) Write(ctx context.Context) (*storage.Writer, error) {
	return f.writer, f.err
}

func newAuditTestService(t *testing.T) (*AuditService, *account.MockIAccountTable, *account.MockIAccountWriter, *transaction.MockITransactionWriter) {
	t.Helper()
	mockAccounts := account.NewMockIAccountTable(t)
	mockAccountWriter := account.NewMockIAccountWriter(t)
	mockTransactionWriter := transaction.NewMockITransactionWriter(t)

	svc := &AuditService{
		snapshots: &fakeSnapshotStore{
			writer: &storage.Writer{
				Account:     mockAccountWriter,
				Transaction: mockTransactionWriter,
			},
		},
		accounts: mockAccounts,
	}
	return svc, mockAccounts, mockAccountWriter, mockTransactionWriter
}

func chainEntry(accountID uuid.UUID, total, before, after int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		AccountID:    accountID,
		Total:        total,
		BeforeCredit: before,
		AfterCredit:  after,
		Date:         date,
	}
}

// -- ValidateAccount tests --

func TestValidateAccount_Ok(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	date := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 850}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{
			chainEntry(accountID, 1000, 0, 1000, date),
			chainEntry(accountID, -150, 1000, 850, date.Add(time.Hour)),
		}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationOk, result.Status)
}

func TestValidateAccount_InvalidTransactionBefore(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	date := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	broken := chainEntry(accountID, -100, 900, 800, date.Add(time.Hour))

	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 800}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{
			chainEntry(accountID, 1000, 0, 1000, date),
			broken,
		}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationInvalidTransactionBefore, result.Status)
	assert.Equal(t, int64(1000), result.ExpectedCredit)
	assert.Equal(t, int64(900), result.TransactionCredit)
	assert.NotNil(t, result.Transaction)
	assert.Equal(t, broken.ID, result.Transaction.ID)
}

func TestValidateAccount_InvalidTransactionAfter(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	broken := chainEntry(accountID, 100, 0, 150, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 150}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{broken}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationInvalidTransactionAfter, result.Status)
	assert.Equal(t, int64(100), result.ExpectedCredit)
	assert.Equal(t, int64(150), result.TransactionCredit)
	assert.Equal(t, broken.ID, result.Transaction.ID)
}

func TestValidateAccount_InvalidSum(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())

	// Chain is internally consistent but the stored balance drifted.
	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 400}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{
			chainEntry(accountID, 500, 0, 500, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)),
		}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationInvalidSum, result.Status)
	assert.Equal(t, int64(500), result.Expected)
	assert.Equal(t, int64(400), result.Actual)
}

func TestValidateAccount_NoData(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 0}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationNoData, result.Status)
}

func TestValidateAccount_NoHistoryNonZeroBalance(t *testing.T) {
	svc, _, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).
		Return(&account.Account{ID: accountID, Credit: 700}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, accountID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{}, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, ValidationInvalidSum, result.Status)
	assert.Equal(t, int64(0), result.Expected)
	assert.Equal(t, int64(700), result.Actual)
}

func TestValidateAccount_AccountNotFound(t *testing.T) {
	svc, _, mockAccountWriter, _ := newAuditTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	mockAccountWriter.EXPECT().FindByID(mock.Anything, accountID).Return(nil, nil)

	result, err := svc.ValidateAccount(context.Background(), accountID)

	assert.ErrorIs(t, err, actions.ErrAccountNotFound)
	assert.Nil(t, result)
}

func TestValidateAccount_SnapshotError(t *testing.T) {
	mockAccounts := account.NewMockIAccountTable(t)
	svc := &AuditService{
		snapshots: &fakeSnapshotStore{err: errors.New("connection refused")},
		accounts:  mockAccounts,
	}

	result, err := svc.ValidateAccount(context.Background(), uuid.Must(uuid.NewV4()))

	assert.Error(t, err)
	assert.Nil(t, result)
}

// -- ValidateAll tests --

func TestValidateAll_MixedVerdicts(t *testing.T) {
	svc, mockAccounts, mockAccountWriter, mockTransactionWriter := newAuditTestService(t)

	healthyID := uuid.Must(uuid.NewV4())
	brokenID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().List(mock.Anything).Return([]*account.Account{
		{ID: healthyID, Credit: 100},
		{ID: brokenID, Credit: 0},
	}, nil)

	mockAccountWriter.EXPECT().FindByID(mock.Anything, healthyID).
		Return(&account.Account{ID: healthyID, Credit: 100}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, healthyID, (*transaction.ListFilter)(nil)).
		Return([]*transaction.Transaction{
			chainEntry(healthyID, 100, 0, 100, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)),
		}, nil)

	mockAccountWriter.EXPECT().FindByID(mock.Anything, brokenID).
		Return(&account.Account{ID: brokenID, Credit: 0}, nil)
	mockTransactionWriter.EXPECT().ListByAccount(mock.Anything, brokenID, (*transaction.ListFilter)(nil)).
		Return(nil, errors.New("replica lag"))

	results, err := svc.ValidateAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, ValidationOk, results[healthyID].Status)
	assert.Equal(t, ValidationError, results[brokenID].Status)
	assert.Equal(t, "replica lag", results[brokenID].Message)
}

func TestValidateAll_ListError(t *testing.T) {
	svc, mockAccounts, _, _ := newAuditTestService(t)

	mockAccounts.EXPECT().List(mock.Anything).
		Return(nil, errors.New("database unavailable"))

	results, err := svc.ValidateAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, results)
}
