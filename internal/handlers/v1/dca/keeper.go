package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// SetKeeperBody is the request body for updating keeper authorization.
type SetKeeperBody struct {
	Caller     string `json:"caller" required:"true" minLength:"1" doc:"Must be the configured owner account"`
	Keeper     string `json:"keeper" required:"true" minLength:"1" doc:"Keeper account to update"`
	Authorized bool   `json:"authorized" doc:"Grant or revoke execution rights"`
}

// SetKeeperInput is the Huma input for updating keeper authorization.
type SetKeeperInput struct {
	Body SetKeeperBody
}

// SetKeeperOutput is the Huma output for updating keeper authorization.
type SetKeeperOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type keeperSetter interface {
	SetKeeper(ctx context.Context, caller, keeper string, authorized bool) error
}

// SetKeeperHandler handles PUT /v1/dca/keepers.
type SetKeeperHandler struct {
	DCAService keeperSetter
}

// NewSetKeeperHandler creates a new SetKeeperHandler.
func NewSetKeeperHandler(svc keeperSetter) *SetKeeperHandler {
	return &SetKeeperHandler{DCAService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SetKeeperHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-keeper",
		Method:      http.MethodPut,
		Path:        "/v1/dca/keepers",
		Summary:     "Set keeper",
		Description: "Grants or revokes a keeper's right to execute strategies. Owner only.",
		Tags:        []string{"DCA"},
	}, h.handle)
}

func (h *SetKeeperHandler) handle(ctx context.Context, input *SetKeeperInput) (*SetKeeperOutput, error) {
	err := h.DCAService.SetKeeper(ctx, input.Body.Caller, input.Body.Keeper, input.Body.Authorized)
	if err != nil {
		return nil, apierror.New(err, "failed to set keeper")
	}

	return &SetKeeperOutput{Status: http.StatusOK}, nil
}
