// Keeper daemon: polls the vault server for due DCA strategies and
// executes them as the configured keeper account. The keeper must have
// been authorized by the owner first.
package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/autovault/vault-server/internal/config"
	"github.com/autovault/vault-server/internal/logging"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("keeper starting")

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	apiClient := newClient(env.APIBaseURL, env.KeeperAccount)

	scheduler := cron.New()
	_, err = scheduler.AddFunc(env.KeeperSchedule, func() {
		runOnce(apiClient, logger)
	})
	if err != nil {
		logrus.WithError(err).Fatal("cron.AddFunc")
		return
	}

	logger.WithFields(logrus.Fields{
		"schedule": env.KeeperSchedule,
		"keeper":   env.KeeperAccount,
	}).Info("keeper scheduled")

	scheduler.Run()
}

func runOnce(apiClient *client, logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	due, err := apiClient.listDue(ctx)
	if err != nil {
		logger.WithError(err).Error("keeper.listDue")
		return
	}
	if len(due) == 0 {
		return
	}

	logger.WithField("count", len(due)).Info("keeper.executing")

	for _, d := range due {
		result, err := apiClient.execute(ctx, d)
		if err != nil {
			// A strategy can stop being due between poll and execute; the
			// next tick picks up whatever is left.
			logger.WithError(err).WithFields(logrus.Fields{
				"account":    d.Account,
				"strategyId": d.StrategyID,
			}).Warn("keeper.execute")
			continue
		}

		logger.WithFields(logrus.Fields{
			"account":    d.Account,
			"strategyId": d.StrategyID,
			"amountIn":   result.AmountIn,
			"amountOut":  result.AmountOut,
		}).Info("keeper.executed")
	}
}
