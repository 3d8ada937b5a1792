package storage

import (
	"context"

	"github.com/greyhelm/sheetsync/internal/models"
)

//go:generate moq -out mirror_mock.go . MirrorStorage

// MirrorStorage is the durable local copy of server-owned entities, each
// tagged with a sync status. It is written only by the sync engine and its
// save/delete entry points; readers may query it at any time.
type MirrorStorage interface {
	// SaveEntity stores or replaces an entity (atomic per-record upsert).
	SaveEntity(ctx context.Context, entity *models.Entity) error

	// GetEntity retrieves an entity by type and ID.
	// Returns ErrEntityNotFound if it doesn't exist.
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error)

	// ListEntities returns all local entities of the given type.
	ListEntities(ctx context.Context, entityType models.EntityType) ([]*models.Entity, error)

	// ListEntitiesByStatus returns entities of the given type with the
	// given sync status, answering "what is pending/conflicted" without a
	// full scan by the caller.
	ListEntitiesByStatus(ctx context.Context, entityType models.EntityType, status models.SyncStatus) ([]*models.Entity, error)

	// DeleteEntity removes the local copy. Deleting a missing entity is
	// not an error.
	DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error
}
