package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSwap_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/swap", r.URL.Path)

		var req swapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user1", req.Account)
		assert.Equal(t, "wbtc", req.TokenOut)
		assert.Equal(t, int64(100), req.AmountIn)

		json.NewEncoder(w).Encode(swapResponse{AmountOut: 95})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	amountOut, err := client.Swap(context.Background(), "user1", "wbtc", 100, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(95), amountOut)
}

func TestClientSwap_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(swapResponse{Error: "no liquidity"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Swap(context.Background(), "user1", "wbtc", 100, 100)

	assert.ErrorContains(t, err, "no liquidity")
}

func TestClientQuote_Cached(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(swapResponse{AmountOut: 95})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	for i := 0; i < 3; i++ {
		amountOut, err := client.Quote(context.Background(), "wbtc", 100)
		require.NoError(t, err)
		assert.Equal(t, int64(95), amountOut)
	}

	assert.Equal(t, int64(1), hits.Load())
}

func TestStub_FillsOneToOne(t *testing.T) {
	amountOut, err := Stub{}.Swap(context.Background(), "user1", "wbtc", 100, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), amountOut)
}
