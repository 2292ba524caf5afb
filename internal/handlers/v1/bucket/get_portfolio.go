package bucket

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// GetPortfolioInput is the Huma input for reading an account's buckets.
type GetPortfolioInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
}

// GetPortfolioResponseBody is the response body for reading an account's buckets.
type GetPortfolioResponseBody struct {
	Buckets      []Bucket `json:"buckets" doc:"All buckets in index order"`
	TotalBalance string   `json:"totalBalance" doc:"Decimal sum across all buckets"`
}

// GetPortfolioOutput is the Huma output for reading an account's buckets.
type GetPortfolioOutput struct {
	Body GetPortfolioResponseBody
}

type portfolioGetter interface {
	GetPortfolio(ctx context.Context, account string) (service.Portfolio, error)
}

// GetPortfolioHandler handles GET /v1/accounts/{account}/buckets.
type GetPortfolioHandler struct {
	BucketService portfolioGetter
}

// NewGetPortfolioHandler creates a new GetPortfolioHandler.
func NewGetPortfolioHandler(svc portfolioGetter) *GetPortfolioHandler {
	return &GetPortfolioHandler{BucketService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetPortfolioHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{account}/buckets",
		Summary:     "Get buckets",
		Description: "Returns the account's allocation buckets and total balance.",
		Tags:        []string{"Buckets"},
	}, h.handle)
}

func (h *GetPortfolioHandler) handle(ctx context.Context, input *GetPortfolioInput) (*GetPortfolioOutput, error) {
	portfolio, err := h.BucketService.GetPortfolio(ctx, input.Account)
	if err != nil {
		return nil, apierror.New(err, "failed to get buckets")
	}

	resp := GetPortfolioResponseBody{
		Buckets:      make([]Bucket, len(portfolio.Buckets)),
		TotalBalance: amount.Format(portfolio.TotalBalance),
	}
	for i, b := range portfolio.Buckets {
		resp.Buckets[i] = Bucket{
			BucketID:         b.Index,
			Name:             b.Name,
			Color:            b.Color,
			TargetPercentage: b.TargetBps,
			Balance:          amount.Format(b.Balance),
			IsActive:         b.IsActive,
		}
	}

	return &GetPortfolioOutput{Body: resp}, nil
}
