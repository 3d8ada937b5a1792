// Package auth manages the client's account session: register, login,
// logout and access-token renewal. Tokens live in AuthStorage so a session
// survives restarts and the client can keep working offline.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/greyhelm/sheetsync/internal/client/api"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/validation"
	pkgapi "github.com/greyhelm/sheetsync/pkg/api"
)

// ErrNotAuthenticated means no usable session exists; the user must log in.
var ErrNotAuthenticated = errors.New("not authenticated")

// Access tokens are renewed this long before their recorded expiry so a
// token never goes stale mid-request.
const expirySkew = 30 * time.Second

// Service provides authentication operations.
type Service struct {
	apiClient api.ClientAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
}

// NewService creates a new authentication service.
func NewService(apiClient api.ClientAPI, authStore storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
	}
}

// Register creates a new account on the server. It does not log the user
// in; call Login afterwards.
func (s *Service) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return resp, nil
}

// Login authenticates against the server and persists the session.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return auth, nil
}

// Logout revokes the session on the server (best effort) and always removes
// the local session.
func (s *Service) Logout(ctx context.Context) error {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		s.logger.Debug("no session found during logout", "error", err)
	} else {
		logoutErr := s.apiClient.Logout(ctx, auth.AccessToken, pkgapi.LogoutRequest{
			RefreshToken: auth.RefreshToken,
		})
		if logoutErr != nil {
			// The server may be unreachable; local logout proceeds anyway.
			s.logger.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}

// Session returns the stored session.
// Returns ErrNotAuthenticated if none exists.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return auth, nil
}

// IsAuthenticated reports whether a non-expired session exists
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStore.IsAuthenticated(ctx)
}

// AccessToken returns a valid access token, refreshing the pair first when
// the stored token is expired or about to expire.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}

	if time.Now().Add(expirySkew).Unix() < auth.ExpiresAt {
		return auth.AccessToken, nil
	}

	auth, err = s.refresh(ctx, auth)
	if err != nil {
		return "", err
	}

	return auth.AccessToken, nil
}

// refresh exchanges the refresh token for a new pair and persists it
func (s *Service) refresh(ctx context.Context, auth *storage.AuthData) (*storage.AuthData, error) {
	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			// Refresh token revoked or expired: the session is dead.
			if delErr := s.authStore.DeleteAuth(ctx); delErr != nil {
				s.logger.Warn("failed to delete dead session", "error", delErr)
			}
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	renewed := &storage.AuthData{
		Username:     auth.Username,
		UserID:       auth.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, renewed); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return renewed, nil
}
