package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/greyhelm/sheetsync/internal/models"
)

// Entity is one stored synchronizable record. The server treats Data as an
// opaque snapshot; UpdatedAt is assigned by the storage on every accepted
// write and is what clients use as their sync baseline.
type Entity struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	OwnerID   string
	Type      models.EntityType
	Data      json.RawMessage
}

// EntityStorage defines interface for entity persistence.
//
// Conditional writes implement the concurrent-edit check: when a non-zero
// baseUpdatedAt is older than the stored UpdatedAt, the write is rejected
// with ErrEntityModified and the caller reads the current row for the
// conflict response. A zero baseUpdatedAt makes the write unconditional.
type EntityStorage interface {
	// CreateEntity stores a new entity and assigns its timestamps
	// Returns ErrEntityExists if an entity with this type and ID exists
	CreateEntity(ctx context.Context, entity *Entity) error

	// GetEntity retrieves one entity owned by ownerID
	// Returns ErrEntityNotFound if it doesn't exist
	GetEntity(ctx context.Context, ownerID string, entityType models.EntityType, id string) (*Entity, error)

	// ListEntities retrieves all entities of one type owned by ownerID
	// Returns empty slice if no entities found
	ListEntities(ctx context.Context, ownerID string, entityType models.EntityType) ([]*Entity, error)

	// UpdateEntity replaces the stored snapshot and advances UpdatedAt
	// Returns ErrEntityNotFound or ErrEntityModified
	UpdateEntity(ctx context.Context, entity *Entity, baseUpdatedAt time.Time) error

	// DeleteEntity removes an entity, with the same precondition semantics
	// Returns ErrEntityNotFound or ErrEntityModified
	DeleteEntity(ctx context.Context, ownerID string, entityType models.EntityType, id string, baseUpdatedAt time.Time) error
}
