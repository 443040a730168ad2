package apisdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin client for the menu API. Unauthenticated operations live
// on the Client itself; SetToken attaches a bearer token for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a menu API client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken stores the bearer token used on authenticated requests.
func (c *Client) SetToken(token string) { c.token = token }

// Register creates a new client account and returns the one-time credentials.
func (c *Client) Register(ctx context.Context, email, name string) (*RegisterResponse, error) {
	var out RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", RegisterRequest{Email: email, Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges client credentials for a bearer token.
func (c *Client) Login(ctx context.Context, clientID, clientKey string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{ClientID: clientID, ClientKey: clientKey}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientInfo returns the identity of the authenticated client.
func (c *Client) ClientInfo(ctx context.Context) (*ClientInfo, error) {
	var out ClientInfo
	if err := c.do(ctx, http.MethodGet, "/api/auth/client-info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns every registered client.
func (c *Client) ListClients(ctx context.Context) (*ListClientsResponse, error) {
	var out ListClientsResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/clients", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMenu fetches the menu catalog.
func (c *Client) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenuItem fetches a single menu item by id.
func (c *Client) GetMenuItem(ctx context.Context, id int64) (*MenuItem, error) {
	var out MenuItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/menu/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMenuItem adds a catalog entry. Requires a bearer token.
func (c *Client) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error) {
	var out MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/menu/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem merges the present fields into an existing entry. Requires a
// bearer token.
func (c *Client) UpdateMenuItem(ctx context.Context, id int64, req UpdateMenuItemRequest) (*MenuItem, error) {
	var out MenuItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/menu/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes a catalog entry. Requires a bearer token.
func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/menu/%d", id), nil, nil)
}

// do performs a request, attaches the bearer token when present, and decodes
// either the success body into out or the error body into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apisdk: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("apisdk: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("apisdk: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = ErrorCodeServerError
			apiErr.Description = resp.Status
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apisdk: decode response: %w", err)
	}
	return nil
}
