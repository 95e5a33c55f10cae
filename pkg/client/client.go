// Package client provides a typed HTTP client for the todo API. It is the
// transport used by the CLI commands and the client-side store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

// Client calls the todo API at BaseURL. The zero HTTPClient falls back to
// http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// List fetches all todos, newest first.
func (c *Client) List(ctx context.Context) ([]types.Todo, error) {
	var todos []types.Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Create adds a todo and returns the created row.
func (c *Client) Create(ctx context.Context, text string) (types.Todo, error) {
	var todo types.Todo
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/api/todos", body, &todo); err != nil {
		return types.Todo{}, err
	}
	return todo, nil
}

// Update applies a partial update and returns the updated row.
func (c *Client) Update(ctx context.Context, id int64, patch types.UpdatePatch) (types.Todo, error) {
	var todo types.Todo
	path := fmt.Sprintf("/api/todos/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, &todo); err != nil {
		return types.Todo{}, err
	}
	return todo, nil
}

// Toggle flips the completed flag and returns the updated row.
func (c *Client) Toggle(ctx context.Context, id int64) (types.Todo, error) {
	var todo types.Todo
	path := fmt.Sprintf("/api/todos/%d/toggle", id)
	if err := c.do(ctx, http.MethodPost, path, nil, &todo); err != nil {
		return types.Todo{}, err
	}
	return todo, nil
}

// Delete removes a todo.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/todos/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one request. A non-2xx response is decoded into *APIError;
// a 2xx response is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeAPIError reads the error envelope from a failed response. Bodies
// that are not valid envelopes still produce a usable APIError.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Error       string              `json:"error"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
		apiErr.FieldErrors = envelope.FieldErrors
	}
	return apiErr
}
