package generator

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/credit-server/internal/service"
)

type fakeAccounts struct {
	account *service.Account
	err     error
}

func (f *fakeAccounts) GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error) {
	return f.account, f.err
}

type fakeProducts struct {
	products []service.Product
	err      error
}

func (f *fakeProducts) ListProducts(ctx context.Context) ([]service.Product, error) {
	return f.products, f.err
}

// fakeExecutor simulates the executor's balance bookkeeping. With stuck set
// the balance never moves, as if every top-up were lost.
type fakeExecutor struct {
	credit int64
	stuck  bool
	err    error

	topUps    []int64
	purchases []*service.Transaction
}

func (f *fakeExecutor) Execute(ctx context.Context, accountID uuid.UUID, cashierID *uuid.UUID, amount int64, date time.Time) (*service.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.stuck {
		f.credit += amount
	}
	entry := &service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		AccountID:   accountID,
		CashierID:   cashierID,
		Total:       amount,
		AfterCredit: f.credit,
		Date:        date,
	}
	if amount > 0 {
		f.topUps = append(f.topUps, amount)
	} else {
		f.purchases = append(f.purchases, entry)
	}
	return entry, nil
}

type fakeLedger struct {
	attached map[uuid.UUID][]service.ProductAmount
	err      error
}

func (f *fakeLedger) AddProducts(ctx context.Context, transactionID uuid.UUID, items []service.ProductAmount) error {
	if f.err != nil {
		return f.err
	}
	if f.attached == nil {
		f.attached = make(map[uuid.UUID][]service.ProductAmount)
	}
	f.attached[transactionID] = items
	return nil
}

func testProducts() []service.Product {
	return []service.Product{
		{ID: uuid.Must(uuid.NewV4()), Name: "coffee", Price: 150},
		{ID: uuid.Must(uuid.NewV4()), Name: "sandwich", Price: 350},
	}
}

func newTestGenerator(accounts *fakeAccounts, products *fakeProducts, executor *fakeExecutor, ledger *fakeLedger, cfg Config) *Generator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Generator{
		accounts: accounts,
		products: products,
		executor: executor,
		ledger:   ledger,
		logger:   logger,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// -- NewGenerator tests --

func TestNewGenerator_RejectsNonPositiveTopUp(t *testing.T) {
	_, err := NewGenerator(&service.Service{}, logrus.New(), Config{
		Rounds: 10,
		TopUp:  0,
	})
	assert.Error(t, err)

	_, err = NewGenerator(&service.Service{}, logrus.New(), Config{
		Rounds: 10,
		TopUp:  -500,
	})
	assert.Error(t, err)
}

func TestNewGenerator_RejectsNonPositiveRounds(t *testing.T) {
	_, err := NewGenerator(&service.Service{}, logrus.New(), Config{
		Rounds: 0,
		TopUp:  500,
	})
	assert.Error(t, err)
}

// -- Run tests --

func TestRun_PurchasesAndAttachesBaskets(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	cashierID := uuid.Must(uuid.NewV4())
	executor := &fakeExecutor{credit: 0}
	ledger := &fakeLedger{}

	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{ID: accountID, Credit: 0, MinimumCredit: -1000}},
		&fakeProducts{products: testProducts()},
		executor,
		ledger,
		Config{
			AccountID:  accountID,
			CashierID:  &cashierID,
			Rounds:     10,
			TopUp:      500,
			BasketSize: 3,
		},
	)

	err := gen.Run(context.Background())

	assert.NoError(t, err)
	assert.Len(t, executor.purchases, 10)
	assert.Len(t, ledger.attached, 10)

	for _, purchase := range executor.purchases {
		assert.Negative(t, purchase.Total)
		// The purchase itself never breaches the floor.
		assert.GreaterOrEqual(t, purchase.AfterCredit, int64(-1000))
		// Every purchase has its basket attached.
		items, ok := ledger.attached[purchase.ID]
		assert.True(t, ok)
		assert.NotEmpty(t, items)
		assert.NotNil(t, purchase.CashierID)
		assert.Equal(t, cashierID, *purchase.CashierID)
	}
	for _, topUp := range executor.topUps {
		assert.Equal(t, int64(500), topUp)
	}
}

func TestRun_TopsUpBeforeUnaffordablePurchase(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	executor := &fakeExecutor{credit: 0}

	// Floor at zero: every purchase needs top-ups first.
	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{ID: accountID, Credit: 0, MinimumCredit: 0}},
		&fakeProducts{products: testProducts()},
		executor,
		&fakeLedger{},
		Config{
			AccountID:  accountID,
			Rounds:     5,
			TopUp:      200,
			BasketSize: 2,
		},
	)

	err := gen.Run(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, executor.topUps)
	assert.GreaterOrEqual(t, executor.credit, int64(0))
}

func TestRun_StuckBalanceHitsTopUpBound(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	executor := &fakeExecutor{credit: 0, stuck: true}

	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{ID: accountID, Credit: 0, MinimumCredit: 0}},
		&fakeProducts{products: testProducts()},
		executor,
		&fakeLedger{},
		Config{
			AccountID:  accountID,
			Rounds:     1,
			TopUp:      200,
			BasketSize: 2,
		},
	)

	err := gen.Run(context.Background())

	assert.Error(t, err)
	assert.Len(t, executor.topUps, maxTopUpsPerPurchase)
}

func TestRun_NoProducts(t *testing.T) {
	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{}},
		&fakeProducts{products: nil},
		&fakeExecutor{},
		&fakeLedger{},
		Config{Rounds: 1, TopUp: 100, BasketSize: 1},
	)

	err := gen.Run(context.Background())

	assert.Error(t, err)
}

func TestRun_ExecutorErrorAborts(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	executor := &fakeExecutor{err: errors.New("serialization conflict")}

	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{ID: accountID, Credit: 10000, MinimumCredit: -1000}},
		&fakeProducts{products: testProducts()},
		executor,
		&fakeLedger{},
		Config{AccountID: accountID, Rounds: 3, TopUp: 500, BasketSize: 2},
	)

	err := gen.Run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "serialization conflict", err.Error())
}

func TestRun_LedgerErrorAborts(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	gen := newTestGenerator(
		&fakeAccounts{account: &service.Account{ID: accountID, Credit: 10000, MinimumCredit: -1000}},
		&fakeProducts{products: testProducts()},
		&fakeExecutor{credit: 10000},
		&fakeLedger{err: errors.New("transaction not found")},
		Config{AccountID: accountID, Rounds: 3, TopUp: 500, BasketSize: 2},
	)

	err := gen.Run(context.Background())

	assert.Error(t, err)
}
