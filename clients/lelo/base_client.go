package lelo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a non-2xx reply decoded from the error envelope.
type APIError struct {
	StatusCode int               `json:"code"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lelo api: %d %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool     { return StatusOf(err) == http.StatusNotFound }
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }
func IsForbidden(err error) bool    { return StatusOf(err) == http.StatusForbidden }

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count,omitempty"`
}

type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	bearer  func() string
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetHTTPClient replaces the transport, as for tests against an httptest server.
func (c *BaseClient) SetHTTPClient(hc *http.Client) {
	c.client = hc
}

// MakeRequest sends body and decodes the data field of the reply into out, when out is not nil.
func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.bearer != nil {
		if tok := c.bearer(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func (c *BaseClient) send(ctx context.Context, method, endpoint string, in, out interface{}) error {
	if in == nil {
		return c.MakeRequest(ctx, method, endpoint, nil, "", out)
	}
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.MakeRequest(ctx, method, endpoint, bytes.NewReader(b), "application/json", out)
}

func (c *BaseClient) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.send(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *BaseClient) Post(ctx context.Context, endpoint string, in, out interface{}) error {
	return c.send(ctx, http.MethodPost, endpoint, in, out)
}

func (c *BaseClient) Put(ctx context.Context, endpoint string, in, out interface{}) error {
	return c.send(ctx, http.MethodPut, endpoint, in, out)
}

func (c *BaseClient) Delete(ctx context.Context, endpoint string) error {
	return c.send(ctx, http.MethodDelete, endpoint, nil, nil)
}
