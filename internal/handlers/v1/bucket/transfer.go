package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// TransferBody is the request body for a bucket-to-bucket transfer.
type TransferBody struct {
	FromBucketID int    `json:"fromBucketId" minimum:"0" doc:"Source bucket index"`
	ToBucketID   int    `json:"toBucketId" minimum:"0" doc:"Destination bucket index"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount to move"`
}

// TransferInput is the Huma input for a bucket-to-bucket transfer.
type TransferInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    TransferBody
}

// TransferOutput is the Huma output for a bucket-to-bucket transfer.
type TransferOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type transferrer interface {
	Transfer(ctx context.Context, account string, fromBucketID, toBucketID int, amount int64) error
}

// TransferHandler handles POST /v1/accounts/{account}/buckets/transfer.
type TransferHandler struct {
	BucketService transferrer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc transferrer) *TransferHandler {
	return &TransferHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer-buckets",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/buckets/transfer",
		Summary:     "Transfer between buckets",
		Description: "Moves an amount between two buckets without changing the total.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	err = h.BucketService.Transfer(ctx, input.Account, input.Body.FromBucketID, input.Body.ToBucketID, minor)
	if err != nil {
		return nil, apierror.New(err, "failed to transfer")
	}

	return &TransferOutput{Status: http.StatusOK}, nil
}
