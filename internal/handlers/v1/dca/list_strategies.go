package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// ListStrategiesInput is the Huma input for listing an account's strategies.
type ListStrategiesInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
}

// ListStrategiesResponseBody is the response body for listing an account's strategies.
type ListStrategiesResponseBody struct {
	Strategies []Strategy `json:"strategies" doc:"All strategies in index order"`
}

// ListStrategiesOutput is the Huma output for listing an account's strategies.
type ListStrategiesOutput struct {
	Body ListStrategiesResponseBody
}

type strategyLister interface {
	ListStrategies(ctx context.Context, account string) ([]service.Strategy, error)
}

// ListStrategiesHandler handles GET /v1/accounts/{account}/strategies.
type ListStrategiesHandler struct {
	DCAService strategyLister
}

// NewListStrategiesHandler creates a new ListStrategiesHandler.
func NewListStrategiesHandler(svc strategyLister) *ListStrategiesHandler {
	return &ListStrategiesHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListStrategiesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-strategies",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{account}/strategies",
		Summary:     "List strategies",
		Description: "Returns all of the account's DCA strategies.",
		Tags:        []string{"DCA"},
	}, h.handle)
}

func (h *ListStrategiesHandler) handle(ctx context.Context, input *ListStrategiesInput) (*ListStrategiesOutput, error) {
	strategies, err := h.DCAService.ListStrategies(ctx, input.Account)
	if err != nil {
		return nil, apierror.New(err, "failed to list strategies")
	}

	resp := ListStrategiesResponseBody{Strategies: make([]Strategy, len(strategies))}
	for i, s := range strategies {
		resp.Strategies[i] = convertStrategy(s)
	}

	return &ListStrategiesOutput{Body: resp}, nil
}

func convertStrategy(s service.Strategy) Strategy {
	return Strategy{
		StrategyID:        s.Index,
		TokenOut:          s.TokenOut,
		AmountPerInterval: amount.Format(s.AmountPerInterval),
		IntervalSeconds:   s.IntervalSeconds,
		LastExecution:     s.LastExecution,
		NextExecution:     s.NextExecution,
		TotalInvested:     amount.Format(s.TotalInvested),
		TotalReceived:     amount.Format(s.TotalReceived),
		SlippageBps:       s.SlippageBps,
		IsActive:          s.IsActive,
		IsCancelled:       s.IsCancelled,
		Due:               s.Due,
	}
}
