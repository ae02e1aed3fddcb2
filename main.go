package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/credit-server/api"
	"github.com/carson-networks/credit-server/internal/config"
	"github.com/carson-networks/credit-server/internal/logging"
	"github.com/carson-networks/credit-server/internal/operator"
	"github.com/carson-networks/credit-server/internal/service"
	"github.com/carson-networks/credit-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("credit-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.TransactionAllowZero)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    "9446",
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
