package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage stores the client's session with the server.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no auth data exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout).
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks whether a non-expired session exists.
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the stored session.
type AuthData struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // access token expiry, unix seconds
}
