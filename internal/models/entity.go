package models

import (
	"encoding/json"
	"time"
)

// EntityType identifies the kind of synchronizable record.
type EntityType string

const (
	EntityTypeCharacter EntityType = "character"
	EntityTypeParty     EntityType = "party"
)

// EntityTypes lists every synchronizable type, in pull order.
var EntityTypes = []EntityType{EntityTypeCharacter, EntityTypeParty}

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	return t == EntityTypeCharacter || t == EntityTypeParty
}

// SyncStatus describes the relationship between the local copy of an entity
// and the authoritative server copy.
type SyncStatus string

const (
	// SyncStatusSynced means the local copy matches the last confirmed
	// server state and no local mutation is queued.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusPending means a local mutation is queued and has not yet
	// been acknowledged by the server.
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusConflict means a concurrent server change was detected
	// while a local mutation was still queued; resolution is required.
	SyncStatusConflict SyncStatus = "conflict"
)

// Entity is the envelope the sync engine moves between the local mirror and
// the server. Data holds the serialized domain record (Character or Party);
// the engine never looks inside it.
type Entity struct {
	LocalUpdatedAt  time.Time       `json:"local_updated_at"`  // last local mutation (client clock, informational)
	ServerUpdatedAt time.Time       `json:"server_updated_at"` // server-assigned update time of the last known server copy
	LastSyncedAt    *time.Time      `json:"last_synced_at"`    // server-assigned time of the last confirmed round-trip, nil before first sync
	ID              string          `json:"id"`                // client-assigned UUID
	OwnerID         string          `json:"owner_id"`
	Type            EntityType      `json:"type"`
	Data            json.RawMessage `json:"data"`
	SyncStatus      SyncStatus      `json:"sync_status"`
}

// Clone creates a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	data := make(json.RawMessage, len(e.Data))
	copy(data, e.Data)

	var lastSynced *time.Time
	if e.LastSyncedAt != nil {
		t := *e.LastSyncedAt
		lastSynced = &t
	}

	return &Entity{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Type:            e.Type,
		Data:            data,
		SyncStatus:      e.SyncStatus,
		LocalUpdatedAt:  e.LocalUpdatedAt,
		ServerUpdatedAt: e.ServerUpdatedAt,
		LastSyncedAt:    lastSynced,
	}
}

// ModifiedOnServerSince reports whether the server copy carrying
// serverUpdatedAt was written after this entity's last confirmed sync point.
// Both values originate from the server clock, so the comparison is immune to
// client/server clock skew. A nil LastSyncedAt means the entity has never
// completed a round-trip; any server timestamp counts as newer then.
func (e *Entity) ModifiedOnServerSince(serverUpdatedAt time.Time) bool {
	if e.LastSyncedAt == nil {
		return !serverUpdatedAt.IsZero()
	}
	return serverUpdatedAt.After(*e.LastSyncedAt)
}
