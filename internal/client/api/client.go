package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/greyhelm/sheetsync/pkg/api"
)

// Client is the HTTP client for the sync server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates a user and returns a token pair
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout revokes the refresh token on the server
func (c *Client) Logout(ctx context.Context, token string, req api.LogoutRequest) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", token, req, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Health probes server reachability. It is the connectivity check: a nil
// error means the server answered.
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil)
}

// ListEntities fetches the full owner-scoped set for one entity type
func (c *Client) ListEntities(ctx context.Context, token, entityType string) ([]api.EntityPayload, error) {
	var resp api.ListEntitiesResponse
	path := fmt.Sprintf("/api/v1/entities/%s", entityType)
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list entities request failed: %w", err)
	}
	return resp.Entities, nil
}

// GetEntity fetches a single entity
func (c *Client) GetEntity(ctx context.Context, token, entityType, id string) (*api.EntityPayload, error) {
	var resp api.EntityPayload
	path := fmt.Sprintf("/api/v1/entities/%s/%s", entityType, id)
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get entity request failed: %w", err)
	}
	return &resp, nil
}

// CreateEntity uploads a new entity and returns the server's stored version
func (c *Client) CreateEntity(ctx context.Context, token, entityType string, req api.SaveEntityRequest) (*api.EntityPayload, error) {
	var resp api.EntityPayload
	path := fmt.Sprintf("/api/v1/entities/%s", entityType)
	err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create entity request failed: %w", err)
	}
	return &resp, nil
}

// UpdateEntity uploads a changed entity. When req.BaseUpdatedAt is set and
// the server holds a newer version, the error unwraps to *ConflictError.
func (c *Client) UpdateEntity(ctx context.Context, token, entityType, id string, req api.SaveEntityRequest) (*api.EntityPayload, error) {
	var resp api.EntityPayload
	path := fmt.Sprintf("/api/v1/entities/%s/%s", entityType, id)
	err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update entity request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntity removes an entity, with the same conflict semantics as
// UpdateEntity.
func (c *Client) DeleteEntity(ctx context.Context, token, entityType, id string, req api.DeleteEntityRequest) error {
	path := fmt.Sprintf("/api/v1/entities/%s/%s", entityType, id)
	err := c.doRequest(ctx, http.MethodDelete, path, token, req, nil)
	if err != nil {
		return fmt.Errorf("delete entity request failed: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request and decodes the response
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeError maps well-known statuses to typed errors so callers can branch
// on them with errors.Is / errors.As.
func (c *Client) decodeError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		var conflict api.ConflictResponse
		if err := json.Unmarshal(body, &conflict); err == nil && conflict.Current.ID != "" {
			return &ConflictError{
				Message: conflict.Message,
				Current: conflict.Current,
			}
		}
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("server error (%d): %s", statusCode, errResp.Message)
	}
	return fmt.Errorf("request failed with status %d: %s", statusCode, string(body))
}
