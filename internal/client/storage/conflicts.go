package storage

import (
	"context"

	"github.com/greyhelm/sheetsync/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStorage

// ConflictStorage is the durable record of detected conflicts awaiting (or
// retaining, once resolved) human resolution.
type ConflictStorage interface {
	// SaveConflict stores or replaces a conflict record.
	SaveConflict(ctx context.Context, record *models.ConflictRecord) error

	// GetConflict retrieves a record by ID.
	// Returns ErrConflictNotFound if it doesn't exist.
	GetConflict(ctx context.Context, id string) (*models.ConflictRecord, error)

	// GetUnresolvedByEntity returns the open conflict for an entity.
	// Returns ErrConflictNotFound if the entity has no open conflict.
	GetUnresolvedByEntity(ctx context.Context, entityID string) (*models.ConflictRecord, error)

	// ListUnresolved returns all open conflicts, oldest first.
	ListUnresolved(ctx context.Context) ([]*models.ConflictRecord, error)

	// ListConflicts returns every record including resolved history,
	// oldest first.
	ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error)
}
