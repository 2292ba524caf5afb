package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/autovault/vault-server/api"
	"github.com/autovault/vault-server/internal/config"
	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/exchange"
	"github.com/autovault/vault-server/internal/logging"
	"github.com/autovault/vault-server/internal/operator"
	"github.com/autovault/vault-server/internal/service"
	"github.com/autovault/vault-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("vault-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx := context.Background()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if envConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, logger)
		if err != nil {
			logrus.WithError(err).Fatal("events.NewAMQPPublisher")
			return
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	var exch exchange.Exchange = exchange.Stub{}
	if envConfig.ExchangeURL != "" {
		exch = exchange.NewClient(envConfig.ExchangeURL)
	}

	delegator := operator.NewOperatorDelegator(dbStorage, publisher, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, exch, envConfig.OwnerAccount)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
