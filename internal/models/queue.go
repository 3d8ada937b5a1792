package models

import (
	"encoding/json"
	"time"
)

// Action is the kind of mutation carried by a queue item.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// QueueItem is one pending mutation awaiting transmission to the server.
// At most one item exists per EntityID at any time: enqueuing a new operation
// for an entity replaces any prior queued operation for it (coalescing).
type QueueItem struct {
	Timestamp time.Time `json:"timestamp"` // enqueue time, replay order is ascending

	// BaseUpdatedAt is the server timestamp the client had last observed
	// for the entity when the intent was queued. Deletions carry it so the
	// server can still detect a concurrent edit after the mirror row is
	// gone; zero means no baseline (the server never saw the entity).
	BaseUpdatedAt time.Time `json:"base_updated_at"`

	ID         string          `json:"id"` // queue item UUID
	EntityID   string          `json:"entity_id"`
	EntityType EntityType      `json:"entity_type"`
	Action     Action          `json:"action"`
	Data       json.RawMessage `json:"data"`       // entity snapshot to transmit, empty for delete
	LastError  string          `json:"last_error"` // message of the most recent failed attempt
	RetryCount int             `json:"retry_count"`
}
