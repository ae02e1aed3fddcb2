package main

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/credit-server/internal/config"
	"github.com/carson-networks/credit-server/internal/generator"
	"github.com/carson-networks/credit-server/internal/logging"
	"github.com/carson-networks/credit-server/internal/operator"
	"github.com/carson-networks/credit-server/internal/service"
	"github.com/carson-networks/credit-server/internal/storage"
	"github.com/carson-networks/credit-server/internal/storage/account"
	"github.com/carson-networks/credit-server/internal/storage/product"
)

// Seeds a demo account, a cashier and a product catalog, then drives the
// executor and line-item ledger through the configured number of purchase
// rounds and audits the result.
func main() {
	logger := logging.SetupLogging()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, env.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, env.TransactionAllowZero)

	ctx := context.Background()
	accountID, cashierID, err := seed(ctx, dbStorage)
	if err != nil {
		logrus.WithError(err).Fatal("seed")
		return
	}

	gen, err := generator.NewGenerator(svc, logger, generator.Config{
		AccountID:  accountID,
		CashierID:  &cashierID,
		Rounds:     env.GeneratorRounds,
		TopUp:      env.GeneratorTopUp,
		BasketSize: env.GeneratorBasketSize,
		Seed:       env.GeneratorSeed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("generator.NewGenerator")
		return
	}

	if err := gen.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Generator.Run")
		return
	}

	results, err := svc.Audit.ValidateAll(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("AuditService.ValidateAll")
		return
	}
	for id, result := range results {
		logger.WithFields(logrus.Fields{
			"account": id.String(),
			"status":  result.Status,
		}).Info("audit verdict")
	}
}

func seed(ctx context.Context, dbStorage *storage.Storage) (uuid.UUID, uuid.UUID, error) {
	writer, err := dbStorage.Write(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	accountID := uuid.Must(uuid.NewV4())
	err = writer.Account.Create(ctx, &account.AccountCreate{
		ID:            accountID,
		Name:          "demo",
		Credit:        0,
		MinimumCredit: -5000,
	})
	if err != nil {
		_ = writer.Rollback()
		return uuid.Nil, uuid.Nil, err
	}

	cashierID := uuid.Must(uuid.NewV4())
	err = writer.Account.Create(ctx, &account.AccountCreate{
		ID:   cashierID,
		Name: "cashier",
	})
	if err != nil {
		_ = writer.Rollback()
		return uuid.Nil, uuid.Nil, err
	}

	catalog := []product.ProductCreate{
		{Name: "coffee", Category: "hot drinks", Price: 150},
		{Name: "tea", Category: "hot drinks", Price: 120},
		{Name: "soda", Category: "cold drinks", Price: 180},
		{Name: "sandwich", Category: "snacks", Price: 350},
		{Name: "chocolate bar", Category: "snacks", Price: 90},
	}
	for _, entry := range catalog {
		entry.ID = uuid.Must(uuid.NewV4())
		if err := writer.Product.Create(ctx, &entry); err != nil {
			_ = writer.Rollback()
			return uuid.Nil, uuid.Nil, err
		}
	}

	if err := writer.Commit(); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return accountID, cashierID, nil
}
