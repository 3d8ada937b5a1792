package api

import (
	"encoding/json"
	"time"
)

// EntityPayload is the wire form of one synchronizable entity. Data is the
// domain snapshot exactly as the client submitted it; UpdatedAt is assigned
// by the server on every accepted write and is the value clients must use as
// their sync baseline.
type EntityPayload struct {
	UpdatedAt  time.Time       `json:"updated_at"`
	CreatedAt  time.Time       `json:"created_at"`
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	EntityType string          `json:"entity_type"`
	Data       json.RawMessage `json:"data"`
}

// SaveEntityRequest creates or updates an entity.
//
// For updates, BaseUpdatedAt must carry the server timestamp the client last
// observed for this entity. The server rejects the write with 409 when its
// stored timestamp is newer, which is how concurrent edits surface. A zero
// BaseUpdatedAt makes the write unconditional (last write wins); the desktop
// client uses that mode.
type SaveEntityRequest struct {
	BaseUpdatedAt time.Time       `json:"base_updated_at,omitzero"`
	ID            string          `json:"id"` // client-assigned UUID on create
	Data          json.RawMessage `json:"data"`
}

// DeleteEntityRequest removes an entity, with the same precondition
// semantics as SaveEntityRequest.
type DeleteEntityRequest struct {
	BaseUpdatedAt time.Time `json:"base_updated_at,omitzero"`
}

// ListEntitiesResponse is the full owner-scoped set for one entity type.
type ListEntitiesResponse struct {
	Entities []EntityPayload `json:"entities"`
}

// ConflictResponse is the 409 body: the error envelope plus the server's
// current version of the entity so the client can record both sides.
type ConflictResponse struct {
	Error   string        `json:"error"`
	Message string        `json:"message,omitempty"`
	Current EntityPayload `json:"current"`
}
