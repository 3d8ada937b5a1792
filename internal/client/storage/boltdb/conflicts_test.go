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

func testConflict(id, entityID string, detectedAt time.Time) *models.ConflictRecord {
	return &models.ConflictRecord{
		ID:             id,
		EntityID:       entityID,
		EntityType:     models.EntityTypeCharacter,
		LocalSnapshot:  json.RawMessage(`{"id":"` + entityID + `","data":{"name":"Local"}}`),
		ServerSnapshot: json.RawMessage(`{"id":"` + entityID + `","data":{"name":"Server"}}`),
		DetectedAt:     detectedAt,
	}
}

func TestSaveAndGetConflict(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	record := testConflict("cf-1", "char-1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, s.SaveConflict(ctx, record))

	got, err := s.GetConflict(ctx, "cf-1")
	require.NoError(t, err)
	assert.Equal(t, record.LocalSnapshot, got.LocalSnapshot)
	assert.Equal(t, record.ServerSnapshot, got.ServerSnapshot)
	assert.False(t, got.Resolved())

	_, err = s.GetConflict(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestConflictWithoutLocalSnapshot(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	record := testConflict("cf-1", "char-1", time.Now().UTC().Truncate(time.Second))
	record.LocalSnapshot = nil // deletion intent

	require.NoError(t, s.SaveConflict(ctx, record))

	// The JSON round-trip stores the absent snapshot as a literal null; the
	// record must still read as carrying no local version.
	got, err := s.GetConflict(ctx, "cf-1")
	require.NoError(t, err)
	assert.False(t, got.HasLocalSnapshot())
	assert.True(t, got.HasServerSnapshot())
}

func TestResolvedConflictsStayAsHistory(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.SaveConflict(ctx, testConflict("cf-1", "char-1", now)))
	require.NoError(t, s.SaveConflict(ctx, testConflict("cf-2", "char-2", now.Add(time.Second))))

	// Resolve the first one.
	record, err := s.GetConflict(ctx, "cf-1")
	require.NoError(t, err)
	resolvedAt := now.Add(time.Minute)
	record.ResolvedAt = &resolvedAt
	record.Resolution = models.ResolutionServer
	require.NoError(t, s.SaveConflict(ctx, record))

	unresolved, err := s.ListUnresolved(ctx)
	require.NoError(t, err)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "cf-2", unresolved[0].ID)

	all, err := s.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetUnresolvedByEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.SaveConflict(ctx, testConflict("cf-1", "char-1", now)))

	record, err := s.GetUnresolvedByEntity(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "cf-1", record.ID)

	_, err = s.GetUnresolvedByEntity(ctx, "char-2")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestListConflictsOldestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.SaveConflict(ctx, testConflict("cf-b", "char-b", now.Add(time.Hour))))
	require.NoError(t, s.SaveConflict(ctx, testConflict("cf-a", "char-a", now)))

	records, err := s.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cf-a", records[0].ID)
	assert.Equal(t, "cf-b", records[1].ID)
}
