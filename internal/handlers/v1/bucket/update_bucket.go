package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// UpdateBucketBody is the request body for updating a bucket's target share.
type UpdateBucketBody struct {
	TargetPercentage int64 `json:"targetPercentage" minimum:"0" maximum:"10000" doc:"New target share in basis points"`
}

// UpdateBucketInput is the Huma input for updating a bucket's target share.
type UpdateBucketInput struct {
	Account  string `path:"account" minLength:"1" doc:"Account identifier"`
	BucketID int    `path:"bucketId" minimum:"0" doc:"Bucket index"`
	Body     UpdateBucketBody
}

// UpdateBucketOutput is the Huma output for updating a bucket's target share.
type UpdateBucketOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type percentageUpdater interface {
	UpdatePercentage(ctx context.Context, account string, bucketID int, targetBps int64) error
}

// UpdateBucketHandler handles PUT /v1/accounts/{account}/buckets/{bucketId}.
type UpdateBucketHandler struct {
	BucketService percentageUpdater
}

// NewUpdateBucketHandler creates a new UpdateBucketHandler.
func NewUpdateBucketHandler(svc percentageUpdater) *UpdateBucketHandler {
	return &UpdateBucketHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateBucketHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-bucket",
		Method:      http.MethodPut,
		Path:        "/v1/accounts/{account}/buckets/{bucketId}",
		Summary:     "Update bucket percentage",
		Description: "Changes a bucket's target share without moving balances.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *UpdateBucketHandler) handle(ctx context.Context, input *UpdateBucketInput) (*UpdateBucketOutput, error) {
	err := h.BucketService.UpdatePercentage(ctx, input.Account, input.BucketID, input.Body.TargetPercentage)
	if err != nil {
		return nil, apierror.New(err, "failed to update bucket")
	}

	return &UpdateBucketOutput{Status: http.StatusOK}, nil
}
