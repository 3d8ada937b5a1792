package api

import (
	"context"

	"github.com/greyhelm/sheetsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the server surface the client runtime depends on. *Client is
// the real implementation; tests substitute a mock.
type ClientAPI interface {
	// Auth endpoints.
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context, token string, req api.LogoutRequest) error

	// Health probes server reachability.
	Health(ctx context.Context) error

	// Entity endpoints.
	ListEntities(ctx context.Context, token, entityType string) ([]api.EntityPayload, error)
	GetEntity(ctx context.Context, token, entityType, id string) (*api.EntityPayload, error)
	CreateEntity(ctx context.Context, token, entityType string, req api.SaveEntityRequest) (*api.EntityPayload, error)
	UpdateEntity(ctx context.Context, token, entityType, id string, req api.SaveEntityRequest) (*api.EntityPayload, error)
	DeleteEntity(ctx context.Context, token, entityType, id string, req api.DeleteEntityRequest) error
}

var _ ClientAPI = (*Client)(nil)
