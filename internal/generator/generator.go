package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/credit-server/internal/service"
)

// maxTopUpsPerPurchase bounds the affordability loop. With a positive top-up
// the loop converges long before this; hitting the bound means something is
// wrong with the configuration or the account and the round fails instead of
// spinning.
const maxTopUpsPerPurchase = 1000

type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

type productLister interface {
	ListProducts(ctx context.Context) ([]service.Product, error)
}

type transactionExecutor interface {
	Execute(ctx context.Context, accountID uuid.UUID, cashierID *uuid.UUID, amount int64, date time.Time) (*service.Transaction, error)
}

type basketAttacher interface {
	AddProducts(ctx context.Context, transactionID uuid.UUID, items []service.ProductAmount) error
}

// Config tunes one generator run.
type Config struct {
	AccountID  uuid.UUID
	CashierID  *uuid.UUID
	Rounds     int
	TopUp      int64
	BasketSize int
	Seed       int64
	// Start stamps the first purchase; zero means thirty days ago. Each
	// round advances the clock a little so histories look organic.
	Start time.Time
}

// Generator drives the executor and the line-item ledger to build a
// plausible purchase history. Per round it prices a random basket, tops the
// account up until the purchase would pass the credit floor, executes the
// purchase, and attaches the basket.
//
// The top-up loop is a business-rule loop: it works *within* the executor's
// policy by issuing accepted transactions first. It is not a retry loop for
// serialization conflicts; those abort the run like any other error.
type Generator struct {
	accounts accountGetter
	products productLister
	executor transactionExecutor
	ledger   basketAttacher
	logger   *logrus.Logger

	cfg Config
	rng *rand.Rand
}

// NewGenerator validates the configuration and builds a Generator over the
// given services. A non-positive top-up amount is rejected outright; the
// affordability loop cannot converge without one.
func NewGenerator(svc *service.Service, logger *logrus.Logger, cfg Config) (*Generator, error) {
	if cfg.TopUp <= 0 {
		return nil, errors.New("generator: top-up amount must be positive")
	}
	if cfg.Rounds <= 0 {
		return nil, errors.New("generator: rounds must be positive")
	}
	if cfg.BasketSize <= 0 {
		cfg.BasketSize = 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		accounts: svc.Account,
		products: svc.Product,
		executor: svc.Transaction,
		ledger:   svc.LineItem,
		logger:   logger,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes the configured number of purchase rounds.
func (g *Generator) Run(ctx context.Context) error {
	products, err := g.products.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return errors.New("generator: no products to purchase")
	}

	account, err := g.accounts.GetAccount(ctx, g.cfg.AccountID)
	if err != nil {
		return err
	}

	date := g.cfg.Start
	if date.IsZero() {
		date = time.Now().AddDate(0, 0, -30)
	}

	credit := account.Credit
	for round := 0; round < g.cfg.Rounds; round++ {
		basket, price := g.pickBasket(products)

		credit, err = g.ensureAffordable(ctx, credit, price, account.MinimumCredit, date)
		if err != nil {
			return err
		}

		purchase, err := g.executor.Execute(ctx, g.cfg.AccountID, g.cfg.CashierID, -price, date)
		if err != nil {
			return err
		}
		credit = purchase.AfterCredit

		if err := g.ledger.AddProducts(ctx, purchase.ID, basket); err != nil {
			return err
		}

		g.logger.WithFields(logrus.Fields{
			"round":  round,
			"price":  price,
			"items":  len(basket),
			"credit": credit,
		}).Info("Generator.Run.purchase")

		date = date.Add(time.Duration(30+g.rng.Intn(600)) * time.Minute)
	}

	return nil
}

// ensureAffordable issues top-up transactions until a purchase of price
// would leave the balance at or above the floor. Returns the resulting
// balance as reported by the executor.
func (g *Generator) ensureAffordable(ctx context.Context, credit, price, minimumCredit int64, date time.Time) (int64, error) {
	topUps := 0
	for credit-price < minimumCredit {
		if topUps >= maxTopUpsPerPurchase {
			return credit, fmt.Errorf("generator: %d top-ups of %d did not make price %d affordable", topUps, g.cfg.TopUp, price)
		}

		topUp, err := g.executor.Execute(ctx, g.cfg.AccountID, nil, g.cfg.TopUp, date)
		if err != nil {
			return credit, err
		}
		credit = topUp.AfterCredit
		topUps++
	}
	return credit, nil
}

// pickBasket selects a random multiset of products and prices it.
func (g *Generator) pickBasket(products []service.Product) ([]service.ProductAmount, int64) {
	entries := 1 + g.rng.Intn(g.cfg.BasketSize)

	amounts := make(map[uuid.UUID]int64, entries)
	prices := make(map[uuid.UUID]int64, entries)
	for i := 0; i < entries; i++ {
		product := products[g.rng.Intn(len(products))]
		amounts[product.ID] += int64(1 + g.rng.Intn(3))
		prices[product.ID] = product.Price
	}

	basket := make([]service.ProductAmount, 0, len(amounts))
	var price int64
	for productID, amount := range amounts {
		basket = append(basket, service.ProductAmount{ProductID: productID, Amount: amount})
		price += prices[productID] * amount
	}
	return basket, price
}
