package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

func testEntity(id string, entityType models.EntityType, status models.SyncStatus) *models.Entity {
	return &models.Entity{
		ID:             id,
		OwnerID:        "user-1",
		Type:           entityType,
		Data:           json.RawMessage(`{"name":"Test"}`),
		SyncStatus:     status,
		LocalUpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndGetEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("char-1", models.EntityTypeCharacter, models.SyncStatusPending)
	require.NoError(t, s.SaveEntity(ctx, entity))

	got, err := s.GetEntity(ctx, models.EntityTypeCharacter, "char-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ID, got.ID)
	assert.Equal(t, entity.Data, got.Data)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
}

func TestGetEntityNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetEntity(context.Background(), models.EntityTypeCharacter, "missing")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestSaveEntityUpsert(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("char-1", models.EntityTypeCharacter, models.SyncStatusPending)
	require.NoError(t, s.SaveEntity(ctx, entity))

	entity.SyncStatus = models.SyncStatusSynced
	entity.Data = json.RawMessage(`{"name":"Renamed"}`)
	require.NoError(t, s.SaveEntity(ctx, entity))

	got, err := s.GetEntity(ctx, models.EntityTypeCharacter, "char-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, json.RawMessage(`{"name":"Renamed"}`), got.Data)

	all, err := s.ListEntities(ctx, models.EntityTypeCharacter)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEntityTypesAreSeparate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Same ID in both buckets must not collide.
	require.NoError(t, s.SaveEntity(ctx, testEntity("id-1", models.EntityTypeCharacter, models.SyncStatusSynced)))
	require.NoError(t, s.SaveEntity(ctx, testEntity("id-1", models.EntityTypeParty, models.SyncStatusPending)))

	char, err := s.GetEntity(ctx, models.EntityTypeCharacter, "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, char.SyncStatus)

	party, err := s.GetEntity(ctx, models.EntityTypeParty, "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, party.SyncStatus)
}

func TestListEntitiesByStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("c1", models.EntityTypeCharacter, models.SyncStatusSynced)))
	require.NoError(t, s.SaveEntity(ctx, testEntity("c2", models.EntityTypeCharacter, models.SyncStatusPending)))
	require.NoError(t, s.SaveEntity(ctx, testEntity("c3", models.EntityTypeCharacter, models.SyncStatusPending)))
	require.NoError(t, s.SaveEntity(ctx, testEntity("c4", models.EntityTypeCharacter, models.SyncStatusConflict)))

	pending, err := s.ListEntitiesByStatus(ctx, models.EntityTypeCharacter, models.SyncStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	conflicted, err := s.ListEntitiesByStatus(ctx, models.EntityTypeCharacter, models.SyncStatusConflict)
	require.NoError(t, err)
	assert.Len(t, conflicted, 1)
	assert.Equal(t, "c4", conflicted[0].ID)
}

func TestDeleteEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("c1", models.EntityTypeCharacter, models.SyncStatusSynced)))
	require.NoError(t, s.DeleteEntity(ctx, models.EntityTypeCharacter, "c1"))

	_, err := s.GetEntity(ctx, models.EntityTypeCharacter, "c1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	// Deleting a missing entity is not an error.
	require.NoError(t, s.DeleteEntity(ctx, models.EntityTypeCharacter, "c1"))
}
