package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func createTestUser(t *testing.T, s *Storage, id, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))

	return user
}

func TestCreateUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	got, err := s.GetUserByUsername(ctx, "aragorn")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Nil(t, got.LastLogin)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1", "aragorn")

	err := s.CreateUser(ctx, &models.User{
		ID:           "user-2",
		Username:     "aragorn",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})

	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestGetUserByID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aragorn", got.Username)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetUserByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), storage.ErrUserNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	loginTime := time.Now().UTC()
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginTime))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, loginTime.UnixNano(), got.LastLogin.UnixNano())

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "missing", loginTime), storage.ErrUserNotFound)
}
