package goal

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/vault"
)

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) Withdraw(ctx context.Context, account string, goalID int) (int64, error) {
	args := m.Called(ctx, account, goalID)
	return args.Get(0).(int64), args.Error(1)
}

func TestHTTP_WithdrawGoal_Success(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("Withdraw", mock.Anything, "user1", 0).Return(int64(150000), nil)

	_, api := humatest.New(t)
	NewWithdrawGoalHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/goals/0/withdraw")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body WithdrawGoalResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1500.00", body.Amount)
}

func TestHTTP_WithdrawGoal_StillLocked(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("Withdraw", mock.Anything, "user1", 0).Return(int64(0), vault.ErrGoalLocked)

	_, api := humatest.New(t)
	NewWithdrawGoalHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/goals/0/withdraw")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_WithdrawGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("Withdraw", mock.Anything, "user1", 9).Return(int64(0), vault.ErrGoalNotFound)

	_, api := humatest.New(t)
	NewWithdrawGoalHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/goals/9/withdraw")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
