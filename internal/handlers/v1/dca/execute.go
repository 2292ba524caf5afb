package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// ExecuteBody is the request body for executing a strategy.
type ExecuteBody struct {
	Caller string `json:"caller" required:"true" minLength:"1" doc:"Executing identity: the account itself or an authorized keeper"`
}

// ExecuteInput is the Huma input for executing a strategy.
type ExecuteInput struct {
	Account    string `path:"account" minLength:"1" doc:"Account identifier"`
	StrategyID int    `path:"strategyId" minimum:"0" doc:"Strategy index"`
	Body       ExecuteBody
}

// ExecuteResponseBody is the response body for executing a strategy.
type ExecuteResponseBody struct {
	AmountIn  string `json:"amountIn" doc:"Decimal amount spent from the pool"`
	AmountOut string `json:"amountOut" doc:"Decimal amount received"`
}

// ExecuteOutput is the Huma output for executing a strategy.
type ExecuteOutput struct {
	Body ExecuteResponseBody
}

type executor interface {
	Execute(ctx context.Context, caller, account string, strategyID int) (service.ExecutionResult, error)
}

// ExecuteHandler handles POST /v1/accounts/{account}/strategies/{strategyId}/execute.
type ExecuteHandler struct {
	DCAService executor
}

// NewExecuteHandler creates a new ExecuteHandler.
func NewExecuteHandler(svc executor) *ExecuteHandler {
	return &ExecuteHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ExecuteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "execute-strategy",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/strategies/{strategyId}/execute",
		Summary:     "Execute strategy",
		Description: "Performs one due DCA purchase from the account's pool.",
		Tags:        []string{"DCA"},
	}, h.handle)
}

func (h *ExecuteHandler) handle(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	result, err := h.DCAService.Execute(ctx, input.Body.Caller, input.Account, input.StrategyID)
	if err != nil {
		return nil, apierror.New(err, "failed to execute strategy")
	}

	return &ExecuteOutput{Body: ExecuteResponseBody{
		AmountIn:  amount.Format(result.AmountIn),
		AmountOut: amount.Format(result.AmountOut),
	}}, nil
}
