package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityClone(t *testing.T) {
	synced := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	original := &Entity{
		ID:              "entity-1",
		OwnerID:         "user-1",
		Type:            EntityTypeCharacter,
		Data:            json.RawMessage(`{"name":"Brenna"}`),
		SyncStatus:      SyncStatusSynced,
		LocalUpdatedAt:  synced,
		ServerUpdatedAt: synced,
		LastSyncedAt:    &synced,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone.Data[2] = 'X'
	*clone.LastSyncedAt = clone.LastSyncedAt.Add(time.Hour)

	assert.Equal(t, json.RawMessage(`{"name":"Brenna"}`), original.Data)
	assert.Equal(t, synced, *original.LastSyncedAt)
}

func TestModifiedOnServerSince(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never synced", func(t *testing.T) {
		e := &Entity{SyncStatus: SyncStatusPending}
		assert.True(t, e.ModifiedOnServerSince(base))
		assert.False(t, e.ModifiedOnServerSince(time.Time{}))
	})

	t.Run("server newer than sync point", func(t *testing.T) {
		e := &Entity{LastSyncedAt: &base}
		assert.True(t, e.ModifiedOnServerSince(base.Add(time.Second)))
	})

	t.Run("server at or before sync point", func(t *testing.T) {
		e := &Entity{LastSyncedAt: &base}
		assert.False(t, e.ModifiedOnServerSince(base))
		assert.False(t, e.ModifiedOnServerSince(base.Add(-time.Minute)))
	})
}

func TestConflictRecordLifecycle(t *testing.T) {
	record := &ConflictRecord{
		ID:             "conflict-1",
		EntityID:       "entity-1",
		EntityType:     EntityTypeCharacter,
		LocalSnapshot:  json.RawMessage(`{"id":"entity-1","type":"character"}`),
		ServerSnapshot: json.RawMessage(`{"id":"entity-1","type":"character"}`),
		DetectedAt:     time.Now(),
	}

	assert.False(t, record.Resolved())
	assert.True(t, record.HasLocalSnapshot())
	assert.True(t, record.HasServerSnapshot())

	now := time.Now()
	record.ResolvedAt = &now
	record.Resolution = ResolutionServer
	assert.True(t, record.Resolved())
}

func TestConflictSnapshotPresence(t *testing.T) {
	record := &ConflictRecord{
		ID:             "conflict-1",
		EntityID:       "entity-1",
		EntityType:     EntityTypeCharacter,
		ServerSnapshot: json.RawMessage(`{"name":"Vex"}`),
	}

	// A deletion intent records no local snapshot.
	assert.False(t, record.HasLocalSnapshot())
	assert.True(t, record.HasServerSnapshot())

	// Backends that store records as JSON keep the absent snapshot as a
	// literal null; it must still read as absent.
	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded ConflictRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.HasLocalSnapshot())
	assert.True(t, decoded.HasServerSnapshot())
}

func TestActionAndResolutionValidity(t *testing.T) {
	assert.True(t, ActionCreate.Valid())
	assert.True(t, ActionUpdate.Valid())
	assert.True(t, ActionDelete.Valid())
	assert.False(t, Action("merge").Valid())

	assert.True(t, ResolutionLocal.Valid())
	assert.True(t, ResolutionServer.Valid())
	assert.False(t, Resolution("merged").Valid())

	assert.True(t, EntityTypeCharacter.Valid())
	assert.True(t, EntityTypeParty.Valid())
	assert.False(t, EntityType("npc").Valid())
}
