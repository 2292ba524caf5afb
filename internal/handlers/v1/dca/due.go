package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// DueStrategy identifies one strategy ready for execution.
type DueStrategy struct {
	Account    string `json:"account" doc:"Account identifier"`
	StrategyID int    `json:"strategyId" doc:"Strategy index"`
}

// ListDueInput is the Huma input for listing due strategies.
type ListDueInput struct{}

// ListDueResponseBody is the response body for listing due strategies.
type ListDueResponseBody struct {
	Due []DueStrategy `json:"due" doc:"Strategies whose interval has elapsed"`
}

// ListDueOutput is the Huma output for listing due strategies.
type ListDueOutput struct {
	Body ListDueResponseBody
}

type dueLister interface {
	ListDue(ctx context.Context) ([]service.DueStrategy, error)
}

// ListDueHandler handles GET /v1/dca/due. The keeper daemon polls it.
type ListDueHandler struct {
	DCAService dueLister
}

// NewListDueHandler creates a new ListDueHandler.
func NewListDueHandler(svc dueLister) *ListDueHandler {
	return &ListDueHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListDueHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-due-strategies",
		Method:      http.MethodGet,
		Path:        "/v1/dca/due",
		Summary:     "List due strategies",
		Description: "Returns every active strategy whose interval has elapsed, across all accounts.",
		Tags:        []string{"DCA"},
	}, h.handle)
}

func (h *ListDueHandler) handle(ctx context.Context, _ *ListDueInput) (*ListDueOutput, error) {
	due, err := h.DCAService.ListDue(ctx)
	if err != nil {
		return nil, apierror.New(err, "failed to list due strategies")
	}

	resp := ListDueResponseBody{Due: make([]DueStrategy, len(due))}
	for i, d := range due {
		resp.Due[i] = DueStrategy{Account: d.Account, StrategyID: d.StrategyID}
	}

	return &ListDueOutput{Body: resp}, nil
}
