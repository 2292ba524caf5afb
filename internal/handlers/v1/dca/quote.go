package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// QuoteInput is the Huma input for quoting a purchase.
type QuoteInput struct {
	TokenOut string `query:"tokenOut" required:"true" minLength:"1" doc:"Asset to price"`
	Amount   string `query:"amount" required:"true" doc:"Decimal amount to spend"`
}

// QuoteResponseBody is the response body for quoting a purchase.
type QuoteResponseBody struct {
	AmountOut string `json:"amountOut" doc:"Estimated decimal amount received"`
}

// QuoteOutput is the Huma output for quoting a purchase.
type QuoteOutput struct {
	Body QuoteResponseBody
}

type quoter interface {
	Quote(ctx context.Context, tokenOut string, amountIn int64) (int64, error)
}

// QuoteHandler handles GET /v1/dca/quote.
type QuoteHandler struct {
	DCAService quoter
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc quoter) *QuoteHandler {
	return &QuoteHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *QuoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "quote",
		Method:      http.MethodGet,
		Path:        "/v1/dca/quote",
		Summary:     "Quote purchase",
		Description: "Estimates the amount received for a purchase without executing it.",
		Tags:        []string{"DCA"},
	}, h.handle)
}

func (h *QuoteHandler) handle(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
	minor, err := amount.Parse(input.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	amountOut, err := h.DCAService.Quote(ctx, input.TokenOut, minor)
	if err != nil {
		return nil, apierror.New(err, "failed to quote")
	}

	return &QuoteOutput{Body: QuoteResponseBody{AmountOut: amount.Format(amountOut)}}, nil
}
