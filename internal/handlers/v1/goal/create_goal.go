package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Name         string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Decimal target, must be positive"`
	Deadline     int64  `json:"deadline" minimum:"0" doc:"Unix seconds, 0 for none; must be in the future"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
	Body    CreateGoalBody
}

// CreateGoalResponseBody is the response body for creating a goal.
type CreateGoalResponseBody struct {
	GoalID int `json:"goalId" doc:"Index of the new goal"`
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreateGoalResponseBody
}

type goalCreator interface {
	CreateGoal(ctx context.Context, account, name string, targetAmount, deadline int64) (int, error)
}

// CreateGoalHandler handles POST /v1/accounts/{account}/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/accounts/{account}/goals",
		Summary:       "Create goal",
		Description:   "Opens a new savings goal.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	target, err := amount.Parse(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	idx, err := h.GoalService.CreateGoal(ctx, input.Account, input.Body.Name, target, input.Body.Deadline)
	if err != nil {
		return nil, apierror.New(err, "failed to create goal")
	}

	return &CreateGoalOutput{
		Status: http.StatusCreated,
		Body:   CreateGoalResponseBody{GoalID: idx},
	}, nil
}
