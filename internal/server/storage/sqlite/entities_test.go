package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/server/storage"
)

func testEntity(id, ownerID, name string) *storage.Entity {
	data, _ := json.Marshal(map[string]any{"name": name})
	return &storage.Entity{
		ID:      id,
		OwnerID: ownerID,
		Type:    models.EntityTypeCharacter,
		Data:    data,
	}
}

func TestCreateAndGetEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	entity := testEntity("char-1", user.ID, "Aragorn")
	require.NoError(t, s.CreateEntity(ctx, entity))
	assert.False(t, entity.UpdatedAt.IsZero())
	assert.Equal(t, entity.CreatedAt, entity.UpdatedAt)

	got, err := s.GetEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ID, got.ID)
	assert.JSONEq(t, string(entity.Data), string(got.Data))
	assert.Equal(t, entity.UpdatedAt.UnixNano(), got.UpdatedAt.UnixNano())
}

func TestCreateEntityDuplicate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	require.NoError(t, s.CreateEntity(ctx, testEntity("char-1", user.ID, "Aragorn")))

	err := s.CreateEntity(ctx, testEntity("char-1", user.ID, "Strider"))

	assert.ErrorIs(t, err, storage.ErrEntityExists)
}

func TestGetEntityScopedToOwner(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "user-1", "aragorn")
	stranger := createTestUser(t, s, "user-2", "boromir")
	require.NoError(t, s.CreateEntity(ctx, testEntity("char-1", owner.ID, "Aragorn")))

	_, err := s.GetEntity(ctx, stranger.ID, models.EntityTypeCharacter, "char-1")

	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestListEntities(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	require.NoError(t, s.CreateEntity(ctx, testEntity("char-1", user.ID, "Aragorn")))
	require.NoError(t, s.CreateEntity(ctx, testEntity("char-2", user.ID, "Boromir")))

	party, _ := json.Marshal(map[string]any{"name": "Fellowship"})
	require.NoError(t, s.CreateEntity(ctx, &storage.Entity{
		ID:      "party-1",
		OwnerID: user.ID,
		Type:    models.EntityTypeParty,
		Data:    party,
	}))

	characters, err := s.ListEntities(ctx, user.ID, models.EntityTypeCharacter)
	require.NoError(t, err)
	assert.Len(t, characters, 2)

	parties, err := s.ListEntities(ctx, user.ID, models.EntityTypeParty)
	require.NoError(t, err)
	assert.Len(t, parties, 1)

	empty, err := s.ListEntities(ctx, "nobody", models.EntityTypeCharacter)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateEntityUnconditional(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	entity := testEntity("char-1", user.ID, "Aragorn")
	require.NoError(t, s.CreateEntity(ctx, entity))
	created := entity.UpdatedAt

	time.Sleep(2 * time.Millisecond)

	updated := testEntity("char-1", user.ID, "Strider")
	require.NoError(t, s.UpdateEntity(ctx, updated, time.Time{}))
	assert.True(t, updated.UpdatedAt.After(created))
	assert.Equal(t, created.UnixNano(), updated.CreatedAt.UnixNano())

	got, err := s.GetEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(updated.Data), string(got.Data))
}

func TestUpdateEntityPrecondition(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	entity := testEntity("char-1", user.ID, "Aragorn")
	require.NoError(t, s.CreateEntity(ctx, entity))
	baseline := entity.UpdatedAt

	time.Sleep(2 * time.Millisecond)

	// A matching baseline wins.
	first := testEntity("char-1", user.ID, "Strider")
	require.NoError(t, s.UpdateEntity(ctx, first, baseline))

	// A second write against the stale baseline loses.
	second := testEntity("char-1", user.ID, "Elessar")
	err := s.UpdateEntity(ctx, second, baseline)
	assert.ErrorIs(t, err, storage.ErrEntityModified)

	got, err := s.GetEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(first.Data), string(got.Data))
}

func TestUpdateEntityNotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")

	err := s.UpdateEntity(ctx, testEntity("missing", user.ID, "Ghost"), time.Time{})

	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestDeleteEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	entity := testEntity("char-1", user.ID, "Aragorn")
	require.NoError(t, s.CreateEntity(ctx, entity))

	require.NoError(t, s.DeleteEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1", time.Time{}))

	_, err := s.GetEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	err = s.DeleteEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1", time.Time{})
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestDeleteEntityPrecondition(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user-1", "aragorn")
	entity := testEntity("char-1", user.ID, "Aragorn")
	require.NoError(t, s.CreateEntity(ctx, entity))
	baseline := entity.UpdatedAt

	time.Sleep(2 * time.Millisecond)

	updated := testEntity("char-1", user.ID, "Strider")
	require.NoError(t, s.UpdateEntity(ctx, updated, baseline))

	err := s.DeleteEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1", baseline)
	assert.ErrorIs(t, err, storage.ErrEntityModified)

	_, err = s.GetEntity(ctx, user.ID, models.EntityTypeCharacter, "char-1")
	assert.NoError(t, err)
}
