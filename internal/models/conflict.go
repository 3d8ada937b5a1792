package models

import (
	"encoding/json"
	"time"
)

// Resolution is the outcome chosen for a conflict record.
type Resolution string

const (
	// ResolutionLocal keeps the local snapshot and re-queues it for push.
	ResolutionLocal Resolution = "local"

	// ResolutionServer keeps the server snapshot and abandons the queued
	// local intent.
	ResolutionServer Resolution = "server"
)

// Valid reports whether r is a known resolution.
func (r Resolution) Valid() bool {
	return r == ResolutionLocal || r == ResolutionServer
}

// ConflictRecord is durable evidence that a queued local mutation and a
// server-side change to the same entity were found to be concurrent. Both
// snapshots are retained so no data is lost regardless of the resolution.
// Records are never deleted; resolved ones keep ResolvedAt and Resolution as
// audit history.
type ConflictRecord struct {
	DetectedAt     time.Time       `json:"detected_at"`
	ResolvedAt     *time.Time      `json:"resolved_at"` // nil while the conflict is open
	ID             string          `json:"id"`          // conflict record UUID
	EntityID       string          `json:"entity_id"`
	EntityType     EntityType      `json:"entity_type"`
	LocalSnapshot  json.RawMessage `json:"local_snapshot"`  // local entity state at detection time
	ServerSnapshot json.RawMessage `json:"server_snapshot"` // server entity state at detection time
	ServerUpdated  time.Time       `json:"server_updated_at"`
	Resolution     Resolution      `json:"resolution"` // empty while the conflict is open
}

// Resolved reports whether the conflict has been resolved.
func (c *ConflictRecord) Resolved() bool {
	return c.ResolvedAt != nil
}

// HasLocalSnapshot reports whether a local version was recorded. A conflict
// raised for a deletion intent carries none; a JSON round-trip through a
// backend may store the absent value as a literal null.
func (c *ConflictRecord) HasLocalSnapshot() bool {
	return snapshotPresent(c.LocalSnapshot)
}

// HasServerSnapshot reports whether a server version was recorded.
func (c *ConflictRecord) HasServerSnapshot() bool {
	return snapshotPresent(c.ServerSnapshot)
}

func snapshotPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
