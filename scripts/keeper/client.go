package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// dueStrategy identifies one strategy the server reports as executable.
type dueStrategy struct {
	Account    string `json:"account"`
	StrategyID int    `json:"strategyId"`
}

type dueResponse struct {
	Due []dueStrategy `json:"due"`
}

type executeRequest struct {
	Caller string `json:"caller"`
}

type executeResponse struct {
	AmountIn  string `json:"amountIn"`
	AmountOut string `json:"amountOut"`
}

// client talks to the vault server's DCA endpoints as the keeper account.
type client struct {
	baseURL    string
	keeper     string
	httpClient *http.Client
}

func newClient(baseURL, keeper string) *client {
	return &client{
		baseURL:    baseURL,
		keeper:     keeper,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) listDue(ctx context.Context) ([]dueStrategy, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/dca/due", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list due: unexpected status %d", resp.StatusCode)
	}

	var body dueResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Due, nil
}

func (c *client) execute(ctx context.Context, due dueStrategy) (executeResponse, error) {
	payload, err := json.Marshal(executeRequest{Caller: c.keeper})
	if err != nil {
		return executeResponse{}, err
	}

	url := fmt.Sprintf("%s/v1/accounts/%s/strategies/%d/execute",
		c.baseURL, due.Account, due.StrategyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return executeResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return executeResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return executeResponse{}, fmt.Errorf("execute: unexpected status %d", resp.StatusCode)
	}

	var body executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return executeResponse{}, err
	}
	return body, nil
}
