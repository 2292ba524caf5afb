package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// DepositGoalBody is the request body for a goal deposit.
type DepositGoalBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount to save"`
}

// DepositGoalInput is the Huma input for a goal deposit.
type DepositGoalInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	GoalID  int    `path:"goalId" minimum:"0" doc:"Goal index"`
	Body    DepositGoalBody
}

// DepositGoalOutput is the Huma output for a goal deposit.
type DepositGoalOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

type goalDepositor interface {
	Deposit(ctx context.Context, account string, goalID int, amount int64) error
}

// DepositGoalHandler handles POST /v1/accounts/{account}/goals/{goalId}/deposit.
type DepositGoalHandler struct {
	GoalService goalDepositor
}

// NewDepositGoalHandler creates a new DepositGoalHandler.
func NewDepositGoalHandler(svc goalDepositor) *DepositGoalHandler {
	return &DepositGoalHandler{GoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DepositGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit-goal",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/goals/{goalId}/deposit",
		Summary:     "Deposit to goal",
		Description: "Credits the goal; milestone events fire when a new threshold is crossed.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *DepositGoalHandler) handle(ctx context.Context, input *DepositGoalInput) (*DepositGoalOutput, error) {
	minor, err := amount.Parse(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if err := h.GoalService.Deposit(ctx, input.Account, input.GoalID, minor); err != nil {
		return nil, apierror.New(err, "failed to deposit to goal")
	}

	return &DepositGoalOutput{Status: http.StatusOK}, nil
}
