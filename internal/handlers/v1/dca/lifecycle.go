package dca

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// LifecycleInput is the Huma input for pause, resume and cancel.
type LifecycleInput struct {
	Account    string `path:"account" minLength:"1" doc:"Account identifier"`
	StrategyID int    `path:"strategyId" minimum:"0" doc:"Strategy index"`
}

// LifecycleOutput is the Huma output for pause, resume and cancel.
type LifecycleOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type lifecycleService interface {
	PauseStrategy(ctx context.Context, account string, strategyID int) error
	ResumeStrategy(ctx context.Context, account string, strategyID int) error
	CancelStrategy(ctx context.Context, account string, strategyID int) error
}

// LifecycleHandler handles the strategy pause/resume/cancel endpoints.
type LifecycleHandler struct {
	DCAService lifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler.
func NewLifecycleHandler(svc lifecycleService) *LifecycleHandler {
	return &LifecycleHandler{DCAService: svc}
}

// Register registers the endpoints with the Huma API.
func (h *LifecycleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pause-strategy",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/strategies/{strategyId}/pause",
		Summary:     "Pause strategy",
		Description: "Deactivates a running strategy.",
		Tags:        []string{"DCA"},
	}, h.handlePause)

	huma.Register(api, huma.Operation{
		OperationID: "resume-strategy",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/strategies/{strategyId}/resume",
		Summary:     "Resume strategy",
		Description: "Reactivates a paused strategy without resetting its execution clock.",
		Tags:        []string{"DCA"},
	}, h.handleResume)

	huma.Register(api, huma.Operation{
		OperationID: "cancel-strategy",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/strategies/{strategyId}/cancel",
		Summary:     "Cancel strategy",
		Description: "Deactivates a strategy permanently; pool funds stay withdrawable.",
		Tags:        []string{"DCA"},
	}, h.handleCancel)
}

func (h *LifecycleHandler) handlePause(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	if err := h.DCAService.PauseStrategy(ctx, input.Account, input.StrategyID); err != nil {
		return nil, apierror.New(err, "failed to pause strategy")
	}
	return &LifecycleOutput{Status: http.StatusOK}, nil
}

func (h *LifecycleHandler) handleResume(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	if err := h.DCAService.ResumeStrategy(ctx, input.Account, input.StrategyID); err != nil {
		return nil, apierror.New(err, "failed to resume strategy")
	}
	return &LifecycleOutput{Status: http.StatusOK}, nil
}

func (h *LifecycleHandler) handleCancel(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
	if err := h.DCAService.CancelStrategy(ctx, input.Account, input.StrategyID); err != nil {
		return nil, apierror.New(err, "failed to cancel strategy")
	}
	return &LifecycleOutput{Status: http.StatusOK}, nil
}
