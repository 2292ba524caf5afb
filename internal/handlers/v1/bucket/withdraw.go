package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// WithdrawBody is the request body for a bucket withdrawal.
type WithdrawBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount to withdraw"`
}

// WithdrawInput is the Huma input for a bucket withdrawal.
type WithdrawInput struct {
	Account  string `path:"account" minLength:"1" doc:"Account identifier"`
	BucketID int    `path:"bucketId" minimum:"0" doc:"Bucket index"`
	Body     WithdrawBody
}

// WithdrawOutput is the Huma output for a bucket withdrawal.
type WithdrawOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type withdrawer interface {
	Withdraw(ctx context.Context, account string, bucketID int, amount int64) error
}

// WithdrawHandler handles POST /v1/accounts/{account}/buckets/{bucketId}/withdraw.
type WithdrawHandler struct {
	BucketService withdrawer
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(svc withdrawer) *WithdrawHandler {
	return &WithdrawHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw-bucket",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/buckets/{bucketId}/withdraw",
		Summary:     "Withdraw from bucket",
		Description: "Withdraws an amount from a single bucket.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if err := h.BucketService.Withdraw(ctx, input.Account, input.BucketID, minor); err != nil {
		return nil, apierror.New(err, "failed to withdraw")
	}

	return &WithdrawOutput{Status: http.StatusOK}, nil
}
