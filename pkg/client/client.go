// Package client talks to a running dashboard server. The CLI and the URL scheme
// handler use it so that the server stays the only writer of the data document.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
)

const defaultTimeout = 10 * time.Second

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client is an HTTP client for the dashboard API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for baseURL, e.g. http://127.0.0.1:3847.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Health checks that the server is reachable.
func (c *Client) Health(ctx context.Context) error {
	var out api.HealthResponse
	return c.do(ctx, http.MethodGet, "/health", nil, &out)
}

// AddTask captures a task through the shortcut endpoint, so the server applies the
// same defaults as for voice capture.
func (c *Client) AddTask(ctx context.Context, req capture.TaskRequest) (*api.Task, error) {
	var out api.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/siri/add-task", req, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

// AddTransaction submits a dictated message.
func (c *Client) AddTransaction(ctx context.Context, message string) (*api.TransactionResponse, error) {
	var out api.TransactionResponse
	body := api.TransactionMessage{Message: &message}
	if err := c.do(ctx, http.MethodPost, "/siri/addTransaction", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportTransaction submits a message from the email or SMS channel.
func (c *Client) ImportTransaction(ctx context.Context, in api.ImportTransaction) (*api.TransactionResponse, error) {
	var out api.TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/transactions/import", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions returns the newest transactions. A non-positive limit uses the server default.
func (c *Client) ListTransactions(ctx context.Context, limit int) ([]api.Transaction, error) {
	path := "/transactions"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var out api.TransactionListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach dashboard server at %s: %w", c.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope api.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Error
		} else {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
