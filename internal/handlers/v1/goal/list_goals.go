package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/amount"
	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// ListGoalsInput is the Huma input for listing an account's goals.
type ListGoalsInput struct {
	Account string `path:"account" minLength:"1" doc:"Account identifier"`
}

// ListGoalsResponseBody is the response body for listing an account's goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"All goals in index order"`
}

// ListGoalsOutput is the Huma output for listing an account's goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

type goalLister interface {
	ListGoals(ctx context.Context, account string) ([]service.Goal, error)
}

// ListGoalsHandler handles GET /v1/accounts/{account}/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{account}/goals",
		Summary:     "List goals",
		Description: "Returns all of the account's savings goals.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := h.GoalService.ListGoals(ctx, input.Account)
	if err != nil {
		return nil, apierror.New(err, "failed to list goals")
	}

	resp := ListGoalsResponseBody{Goals: make([]Goal, len(goals))}
	for i, g := range goals {
		resp.Goals[i] = convertGoal(g)
	}

	return &ListGoalsOutput{Body: resp}, nil
}

func convertGoal(g service.Goal) Goal {
	return Goal{
		GoalID:        g.Index,
		Name:          g.Name,
		TargetAmount:  amount.Format(g.TargetAmount),
		CurrentAmount: amount.Format(g.CurrentAmount),
		Deadline:      g.Deadline,
		Progress:      g.Progress,
		LastMilestone: g.LastMilestone,
		IsCompleted:   g.IsCompleted,
		IsWithdrawn:   g.IsWithdrawn,
		Unlocked:      g.Unlocked,
	}
}
