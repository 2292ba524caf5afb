package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// CreateBucketBody is the request body for creating a bucket.
type CreateBucketBody struct {
	Name             string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	TargetPercentage int64  `json:"targetPercentage" minimum:"0" maximum:"10000" doc:"Target share in basis points"`
	Color            string `json:"color" doc:"Display color, hex"`
}

// CreateBucketInput is the Huma input for creating a bucket.
type CreateBucketInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    CreateBucketBody
}

// CreateBucketResponseBody is the response body for creating a bucket.
type CreateBucketResponseBody struct {
	BucketID int `json:"bucketId" doc:"Index of the new bucket"`
}

// CreateBucketOutput is the Huma output for creating a bucket.
type CreateBucketOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreateBucketResponseBody
}

type bucketCreator interface {
	CreateBucket(ctx context.Context, account, name string, targetBps int64, color string) (int, error)
}

// CreateBucketHandler handles POST /v1/accounts/{account}/buckets.
type CreateBucketHandler struct {
	BucketService bucketCreator
}

// NewCreateBucketHandler creates a new CreateBucketHandler.
func NewCreateBucketHandler(svc bucketCreator) *CreateBucketHandler {
	return &CreateBucketHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateBucketHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-bucket",
		Method:        http.MethodPost,
		Path:          "/v1/accounts/{account}/buckets",
		Summary:       "Create bucket",
		Description:   "Appends a new active bucket with a zero balance.",
		Tags:          []string{"Buckets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBucketHandler) handle(ctx context.Context, input *CreateBucketInput) (*CreateBucketOutput, error) {
	idx, err := h.BucketService.CreateBucket(ctx, input.Account, input.Body.Name,
		input.Body.TargetPercentage, input.Body.Color)
	if err != nil {
		return nil, apierror.New(err, "failed to create bucket")
	}

	return &CreateBucketOutput{
		Status: http.StatusCreated,
		Body:   CreateBucketResponseBody{BucketID: idx},
	}, nil
}
