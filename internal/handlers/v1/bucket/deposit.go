package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// DepositBody is the request body for a bucket deposit.
type DepositBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount to split across active buckets"`
}

// DepositInput is the Huma input for a bucket deposit.
type DepositInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    DepositBody
}

// DepositOutput is the Huma output for a bucket deposit.
type DepositOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type depositor interface {
	Deposit(ctx context.Context, account string, amount int64) error
}

// DepositHandler handles POST /v1/accounts/{account}/deposit.
type DepositHandler struct {
	BucketService depositor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc depositor) *DepositHandler {
	return &DepositHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/deposit",
		Summary:     "Deposit",
		Description: "Splits a deposit across the account's active buckets by target percentage.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if err := h.BucketService.Deposit(ctx, input.Account, minor); err != nil {
		return nil, apierror.New(err, "failed to deposit")
	}

	return &DepositOutput{Status: http.StatusOK}, nil
}
