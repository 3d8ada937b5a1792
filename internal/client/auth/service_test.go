package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/client/api"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	pkgapi "github.com/greyhelm/sheetsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memAuthStore is an in-memory AuthStorage for service tests.
func memAuthStore() *storage.AuthStorageMock {
	var saved *storage.AuthData

	return &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if saved == nil {
				return nil, storage.ErrAuthNotFound
			}
			return saved, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			saved = nil
			return nil
		},
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return saved != nil && time.Now().Unix() < saved.ExpiresAt, nil
		},
	}
}

func TestRegister(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			assert.Equal(t, "testuser", req.Username)
			return &pkgapi.RegisterResponse{UserID: "user-123", Message: "ok"}, nil
		},
	}

	svc := NewService(apiMock, memAuthStore(), testLogger())

	resp, err := svc.Register(context.Background(), "testuser", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	require.Len(t, apiMock.RegisterCalls(), 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(&api.ClientAPIMock{}, memAuthStore(), testLogger())

	_, err := svc.Register(context.Background(), "ab", "secret123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username")

	_, err = svc.Register(context.Background(), "testuser", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
}

func TestLoginSavesSession(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				UserID:       "user-123",
				ExpiresIn:    900,
			}, nil
		},
	}
	store := memAuthStore()

	svc := NewService(apiMock, store, testLogger())

	auth, err := svc.Login(context.Background(), "testuser", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "testuser", auth.Username)
	assert.Equal(t, "access", auth.AccessToken)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())

	ok, err := svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginFailure(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, errors.New("server error (401): invalid credentials")
		},
	}
	store := memAuthStore()

	svc := NewService(apiMock, store, testLogger())

	_, err := svc.Login(context.Background(), "testuser", "wrongpass1")
	require.Error(t, err)
	assert.Empty(t, store.SaveAuthCalls())
}

func TestLogoutBestEffort(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
		},
		LogoutFunc: func(ctx context.Context, token string, req pkgapi.LogoutRequest) error {
			return errors.New("connection refused")
		},
	}
	store := memAuthStore()

	svc := NewService(apiMock, store, testLogger())

	_, err := svc.Login(context.Background(), "testuser", "secret123")
	require.NoError(t, err)

	// Server unreachable: local session still goes away.
	require.NoError(t, svc.Logout(context.Background()))

	_, err = svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogoutWithoutSession(t *testing.T) {
	svc := NewService(&api.ClientAPIMock{}, memAuthStore(), testLogger())
	assert.NoError(t, svc.Logout(context.Background()))
}

func TestAccessTokenFresh(t *testing.T) {
	apiMock := &api.ClientAPIMock{}
	store := memAuthStore()
	require.NoError(t, store.SaveAuthFunc(context.Background(), &storage.AuthData{
		Username:     "testuser",
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}))

	svc := NewService(apiMock, store, testLogger())

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", token)
	assert.Empty(t, apiMock.RefreshCalls())
}

func TestAccessTokenRefreshesExpired(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "refresh", req.RefreshToken)
			return &pkgapi.TokenResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				UserID:       "user-123",
				ExpiresIn:    900,
			}, nil
		},
	}
	store := memAuthStore()
	require.NoError(t, store.SaveAuthFunc(context.Background(), &storage.AuthData{
		Username:     "testuser",
		UserID:       "user-123",
		AccessToken:  "stale",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}))

	svc := NewService(apiMock, store, testLogger())

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)

	// The renewed pair was persisted.
	auth, err := svc.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-refresh", auth.RefreshToken)
}

func TestAccessTokenDeadRefreshToken(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			return nil, api.ErrUnauthorized
		},
	}
	store := memAuthStore()
	require.NoError(t, store.SaveAuthFunc(context.Background(), &storage.AuthData{
		Username:     "testuser",
		AccessToken:  "stale",
		RefreshToken: "revoked",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}))

	svc := NewService(apiMock, store, testLogger())

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// The dead session was removed.
	_, err = svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAccessTokenNoSession(t *testing.T) {
	svc := NewService(&api.ClientAPIMock{}, memAuthStore(), testLogger())

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
