package bucket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/service"
	"github.com/autovault/vault-server/internal/vault"
)

type mockBucketService struct {
	mock.Mock
}

func (m *mockBucketService) GetPortfolio(ctx context.Context, account string) (service.Portfolio, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(service.Portfolio), args.Error(1)
}

func (m *mockBucketService) Deposit(ctx context.Context, account string, amount int64) error {
	args := m.Called(ctx, account, amount)
	return args.Error(0)
}

func (m *mockBucketService) CreateBucket(ctx context.Context, account, name string, targetBps int64, color string) (int, error) {
	args := m.Called(ctx, account, name, targetBps, color)
	return args.Int(0), args.Error(1)
}

func TestHTTP_Deposit_Success(t *testing.T) {
	mockSvc := new(mockBucketService)
	mockSvc.On("Deposit", mock.Anything, "user1", int64(1250)).Return(nil)

	_, api := humatest.New(t)
	NewDepositHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/deposit", DepositBody{Amount: "12.50"})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Deposit_InvalidAmount(t *testing.T) {
	mockSvc := new(mockBucketService)

	_, api := humatest.New(t)
	NewDepositHandler(mockSvc).Register(api)

	// Amount is a plain string with no format tag, so the handler validates it.
	resp := api.Post("/v1/accounts/user1/deposit", DepositBody{Amount: "not-a-decimal"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Deposit")
}

func TestHTTP_Deposit_PercentagesDontSum(t *testing.T) {
	mockSvc := new(mockBucketService)
	mockSvc.On("Deposit", mock.Anything, "user1", int64(1000)).
		Return(vault.ErrPercentageSumInvalid)

	_, api := humatest.New(t)
	NewDepositHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/deposit", DepositBody{Amount: "10.00"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_GetPortfolio(t *testing.T) {
	mockSvc := new(mockBucketService)
	mockSvc.On("GetPortfolio", mock.Anything, "user1").Return(service.Portfolio{
		Buckets: []service.Bucket{
			{Index: 0, Name: "Savings", Color: "#10b981", TargetBps: 4000, Balance: 40000, IsActive: true},
			{Index: 1, Name: "Bills", Color: "#3b82f6", TargetBps: 6000, Balance: 60000, IsActive: true},
		},
		TotalBalance: 100000,
	}, nil)

	_, api := humatest.New(t)
	NewGetPortfolioHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts/user1/buckets")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body GetPortfolioResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1000.00", body.TotalBalance)
	assert.Len(t, body.Buckets, 2)
	assert.Equal(t, "400.00", body.Buckets[0].Balance)
	assert.Equal(t, int64(4000), body.Buckets[0].TargetPercentage)
}

func TestHTTP_CreateBucket_ReturnsIndex(t *testing.T) {
	mockSvc := new(mockBucketService)
	mockSvc.On("CreateBucket", mock.Anything, "user1", "Vacation", int64(500), "#ec4899").
		Return(4, nil)

	_, api := humatest.New(t)
	NewCreateBucketHandler(mockSvc).Register(api)

	resp := api.Post("/v1/accounts/user1/buckets", CreateBucketBody{
		Name:             "Vacation",
		TargetPercentage: 500,
		Color:            "#ec4899",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body CreateBucketResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body.BucketID)
}
