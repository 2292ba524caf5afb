package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// WithdrawGoalInput is the Huma input for a goal withdrawal.
type WithdrawGoalInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	GoalID  int    `path:"goalId" minimum:"0" doc:"Goal index"`
}

// WithdrawGoalResponseBody is the response body for a goal withdrawal.
type WithdrawGoalResponseBody struct {
	Amount string `json:"amount" doc:"Decimal amount paid out"`
}

// WithdrawGoalOutput is the Huma output for a goal withdrawal.
type WithdrawGoalOutput struct {
	Body WithdrawGoalResponseBody
}

type goalWithdrawer interface {
	Withdraw(ctx context.Context, account string, goalID int) (int64, error)
}

// WithdrawGoalHandler handles POST /v1/accounts/{account}/goals/{goalId}/withdraw.
type WithdrawGoalHandler struct {
	GoalService goalWithdrawer
}

// NewWithdrawGoalHandler creates a new WithdrawGoalHandler.
func NewWithdrawGoalHandler(svc goalWithdrawer) *WithdrawGoalHandler {
	return &WithdrawGoalHandler{GoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *WithdrawGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw-goal",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{account}/goals/{goalId}/withdraw",
		Summary:     "Withdraw goal",
		Description: "Pays out an unlocked goal exactly once.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *WithdrawGoalHandler) handle(ctx context.Context, input *WithdrawGoalInput) (*WithdrawGoalOutput, error) {
	paid, err := h.GoalService.Withdraw(ctx, input.Account, input.GoalID)
	if err != nil {
		return nil, apierror.New(err, "failed to withdraw goal")
	}

	return &WithdrawGoalOutput{
		Body: WithdrawGoalResponseBody{Amount: amount.Format(paid)},
	}, nil
}
