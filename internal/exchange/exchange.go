// Package exchange wraps the external swap collaborator that DCA
// executions buy through. The engine only cares about a clean
// success/failure answer: on success it advances strategy state, on any
// error it leaves all state untouched.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Exchange executes a purchase of tokenOut for amountIn minor units on
// behalf of account, honoring the strategy's slippage tolerance. Swap
// returns the amount of tokenOut received; Quote estimates it without
// executing.
type Exchange interface {
	Swap(ctx context.Context, account, tokenOut string, amountIn, slippageBps int64) (int64, error)
	Quote(ctx context.Context, tokenOut string, amountIn int64) (int64, error)
}

// Client talks to the swap service over HTTP. Quotes are cached briefly
// to keep keeper polling from hammering the collaborator.
type Client struct {
	baseURL    string
	httpClient *http.Client
	quotes     *cache.Cache
}

var _ Exchange = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		quotes:     cache.New(30*time.Second, time.Minute),
	}
}

type swapRequest struct {
	Account     string `json:"account"`
	TokenOut    string `json:"tokenOut"`
	AmountIn    int64  `json:"amountIn"`
	SlippageBps int64  `json:"slippageBps"`
}

type swapResponse struct {
	AmountOut int64  `json:"amountOut"`
	Error     string `json:"error,omitempty"`
}

func (c *Client) Swap(ctx context.Context, account, tokenOut string, amountIn, slippageBps int64) (int64, error) {
	body, err := json.Marshal(swapRequest{
		Account:     account,
		TokenOut:    tokenOut,
		AmountIn:    amountIn,
		SlippageBps: slippageBps,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/swap", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var result swapResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange swap failed (%d): %s", resp.StatusCode, result.Error)
	}
	return result.AmountOut, nil
}

// Quote returns the current amountOut estimate for a purchase without
// executing it.
func (c *Client) Quote(ctx context.Context, tokenOut string, amountIn int64) (int64, error) {
	key := tokenOut + "/" + strconv.FormatInt(amountIn, 10)
	if cached, found := c.quotes.Get(key); found {
		return cached.(int64), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/quote?tokenOut="+tokenOut+"&amountIn="+strconv.FormatInt(amountIn, 10), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var result swapResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange quote failed (%d): %s", resp.StatusCode, result.Error)
	}

	c.quotes.Set(key, result.AmountOut, cache.DefaultExpiration)
	return result.AmountOut, nil
}

// Stub is a deterministic in-process exchange used when no EXCHANGE_URL is
// configured: every swap fills 1:1.
type Stub struct{}

var _ Exchange = (*Stub)(nil)

func (Stub) Swap(ctx context.Context, account, tokenOut string, amountIn, slippageBps int64) (int64, error) {
	return amountIn, nil
}

func (Stub) Quote(ctx context.Context, tokenOut string, amountIn int64) (int64, error) {
	return amountIn, nil
}
