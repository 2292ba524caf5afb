package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// FundsBody is the request body for allocating or withdrawing pool funds.
type FundsBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount"`
}

// FundsInput is the Huma input for allocating or withdrawing pool funds.
type FundsInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    FundsBody
}

// FundsOutput is the Huma output for allocating or withdrawing pool funds.
type FundsOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// GetFundsInput is the Huma input for reading the pool balance.
type GetFundsInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
}

// GetFundsResponseBody is the response body for reading the pool balance.
type GetFundsResponseBody struct {
	Balance string `json:"balance" doc:"Decimal pool balance available for DCA purchases"`
}

// GetFundsOutput is the Huma output for reading the pool balance.
type GetFundsOutput struct {
	Body GetFundsResponseBody
}

type fundsService interface {
	AllocatedFunds(ctx context.Context, account string) (int64, error)
	AllocateFunds(ctx context.Context, account string, amount int64) error
	WithdrawFunds(ctx context.Context, account string, amount int64) error
}

// FundsHandler handles the /v1/accounts/{account}/funds endpoints.
type FundsHandler struct {
	DCAService fundsService
}

// NewFundsHandler creates a new FundsHandler.
func NewFundsHandler(svc fundsService) *FundsHandler {
	return &FundsHandler{DCAService: svc}
}

// Register registers the endpoints with the Huma API.
func (h *FundsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-funds",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{account}/funds",
		Summary:     "Get pool balance",
		Description: "Returns the account's DCA pool balance.",
		Tags:        []string{"DCA"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "allocate-funds",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/funds/allocate",
		Summary:     "Allocate funds",
		Description: "Credits the account's DCA pool.",
		Tags:        []string{"DCA"},
	}, h.handleAllocate)

	huma.Register(api, huma.Operation{
		OperationID: "withdraw-funds",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/funds/withdraw",
		Summary:     "Withdraw funds",
		Description: "Debits the account's DCA pool.",
		Tags:        []string{"DCA"},
	}, h.handleWithdraw)
}

func (h *FundsHandler) handleGet(ctx context.Context, input *GetFundsInput) (*GetFundsOutput, error) {
	balance, err := h.DCAService.AllocatedFunds(ctx, input.Account)
	if err != nil {
		return nil, apierror.New(err, "failed to get pool balance")
	}

	return &GetFundsOutput{Body: GetFundsResponseBody{Balance: amount.Format(balance)}}, nil
}

func (h *FundsHandler) handleAllocate(ctx context.Context, input *FundsInput) (*FundsOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if err := h.DCAService.AllocateFunds(ctx, input.Account, minor); err != nil {
		return nil, apierror.New(err, "failed to allocate funds")
	}

	return &FundsOutput{Status: http.StatusOK}, nil
}

func (h *FundsHandler) handleWithdraw(ctx context.Context, input *FundsInput) (*FundsOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if err := h.DCAService.WithdrawFunds(ctx, input.Account, minor); err != nil {
		return nil, apierror.New(err, "failed to withdraw funds")
	}

	return &FundsOutput{Status: http.StatusOK}, nil
}
