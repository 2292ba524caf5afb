package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/autovault/vault-server/internal/handlers/v1/bucket"
	"github.com/autovault/vault-server/internal/handlers/v1/dca"
	"github.com/autovault/vault-server/internal/handlers/v1/events"
	"github.com/autovault/vault-server/internal/handlers/v1/goal"
	"github.com/autovault/vault-server/internal/handlers/v1/status"
	"github.com/autovault/vault-server/internal/logging"
	"github.com/autovault/vault-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := chi.NewMux()
	humaAPI := humachi.New(mux, huma.DefaultConfig("vault-server", "1.0.0"))

	bucket.NewGetPortfolioHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewDepositHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewWithdrawHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewTransferHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewRebalanceHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewCreateBucketHandler(r.Service.Bucket).Register(humaAPI)
	bucket.NewUpdateBucketHandler(r.Service.Bucket).Register(humaAPI)

	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewDepositGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewWithdrawGoalHandler(r.Service.Goal).Register(humaAPI)

	dca.NewListStrategiesHandler(r.Service.DCA).Register(humaAPI)
	dca.NewCreateStrategyHandler(r.Service.DCA).Register(humaAPI)
	dca.NewLifecycleHandler(r.Service.DCA).Register(humaAPI)
	dca.NewExecuteHandler(r.Service.DCA).Register(humaAPI)
	dca.NewFundsHandler(r.Service.DCA).Register(humaAPI)
	dca.NewListDueHandler(r.Service.DCA).Register(humaAPI)
	dca.NewSetKeeperHandler(r.Service.DCA).Register(humaAPI)
	dca.NewQuoteHandler(r.Service.DCA).Register(humaAPI)

	events.NewListEventsHandler(r.Service.Event).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
