package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// RebalanceInput is the Huma input for a rebalance.
type RebalanceInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
}

// RebalanceOutput is the Huma output for a rebalance.
type RebalanceOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type rebalancer interface {
	Rebalance(ctx context.Context, account string) error
}

// RebalanceHandler handles POST /v1/accounts/{account}/buckets/rebalance.
type RebalanceHandler struct {
	BucketService rebalancer
}

// NewRebalanceHandler creates a new RebalanceHandler.
func NewRebalanceHandler(svc rebalancer) *RebalanceHandler {
	return &RebalanceHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RebalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rebalance-buckets",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/buckets/rebalance",
		Summary:     "Rebalance buckets",
		Description: "Resets every active bucket to its target share of the unchanged total.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *RebalanceHandler) handle(ctx context.Context, input *RebalanceInput) (*RebalanceOutput, error) {
	if err := h.BucketService.Rebalance(ctx, input.Account); err != nil {
		return nil, apierror.New(err, "failed to rebalance")
	}

	return &RebalanceOutput{Status: http.StatusOK}, nil
}
