package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// CreateStrategyBody is the request body for creating a strategy.
type CreateStrategyBody struct {
	TokenOut          string `json:"tokenOut" required:"true" minLength:"1" doc:"Asset to accumulate"`
	AmountPerInterval string `json:"amountPerInterval" required:"true" doc:"Decimal purchase size"`
	IntervalSeconds   int64  `json:"intervalSeconds" minimum:"1" doc:"Seconds between purchases, at least 3600"`
	SlippageBps       int64  `json:"slippageBps" minimum:"0" doc:"Slippage tolerance in basis points, at most 1000"`
}

// CreateStrategyInput is the Huma input for creating a strategy.
type CreateStrategyInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    CreateStrategyBody
}

// CreateStrategyResponseBody is the response body for creating a strategy.
type CreateStrategyResponseBody struct {
	StrategyID int `json:"strategyId" doc:"Index of the new strategy"`
}

// CreateStrategyOutput is the Huma output for creating a strategy.
type CreateStrategyOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreateStrategyResponseBody
}

type strategyCreator interface {
	CreateStrategy(ctx context.Context, account, tokenOut string, amountPerInterval, intervalSeconds, slippageBps int64) (int, error)
}

// CreateStrategyHandler handles POST /v1/accounts/{account}/strategies.
type CreateStrategyHandler struct {
	DCAService strategyCreator
}

// NewCreateStrategyHandler creates a new CreateStrategyHandler.
func NewCreateStrategyHandler(svc strategyCreator) *CreateStrategyHandler {
	return &CreateStrategyHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateStrategyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-strategy",
		Method:        http.MethodPost,
		Path:          "/v1/accounts/{account}/strategies",
		Summary:       "Create strategy",
		Description:   "Opens a new active DCA strategy.",
		Tags:          []string{"DCA"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateStrategyHandler) handle(ctx context.Context, input *CreateStrategyInput) (*CreateStrategyOutput, error) {
	perInterval, err := amount.Parse(input.Body.AmountPerInterval)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amountPerInterval", err)
	}

	idx, err := h.DCAService.CreateStrategy(ctx, input.Account, input.Body.TokenOut,
		perInterval, input.Body.IntervalSeconds, input.Body.SlippageBps)
	if err != nil {
		return nil, apierror.New(err, "failed to create strategy")
	}

	return &CreateStrategyOutput{
		Status: http.StatusCreated,
		Body:   CreateStrategyResponseBody{StrategyID: idx},
	}, nil
}
