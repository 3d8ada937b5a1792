package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/server/storage"
)

// CreateEntity stores a new entity and assigns its timestamps
func (s *Storage) CreateEntity(ctx context.Context, entity *storage.Entity) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO entities (id, entity_type, owner_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		string(entity.Type),
		entity.OwnerID,
		[]byte(entity.Data),
		nanoFromTime(now),
		nanoFromTime(now),
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrEntityExists
		}
		return fmt.Errorf("failed to insert entity: %w", err)
	}

	entity.CreatedAt = now
	entity.UpdatedAt = now

	return nil
}

// GetEntity retrieves one entity owned by ownerID
func (s *Storage) GetEntity(ctx context.Context, ownerID string, entityType models.EntityType, id string) (*storage.Entity, error) {
	query := `
		SELECT id, entity_type, owner_id, data, created_at, updated_at
		FROM entities
		WHERE entity_type = ? AND id = ? AND owner_id = ?
	`

	entity, err := scanEntity(s.db.QueryRowContext(ctx, query, string(entityType), id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return entity, nil
}

// ListEntities retrieves all entities of one type owned by ownerID
func (s *Storage) ListEntities(ctx context.Context, ownerID string, entityType models.EntityType) ([]*storage.Entity, error) {
	query := `
		SELECT id, entity_type, owner_id, data, created_at, updated_at
		FROM entities
		WHERE owner_id = ? AND entity_type = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, string(entityType))
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entities := []*storage.Entity{}

	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entities, nil
}

// UpdateEntity replaces the stored snapshot and advances UpdatedAt
func (s *Storage) UpdateEntity(ctx context.Context, entity *storage.Entity, baseUpdatedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var createdAt int64
	if err := s.checkPrecondition(ctx, tx, entity.OwnerID, entity.Type, entity.ID, baseUpdatedAt, &createdAt); err != nil {
		return err
	}

	now := time.Now().UTC()

	query := `
		UPDATE entities
		SET data = ?, updated_at = ?
		WHERE entity_type = ? AND id = ? AND owner_id = ?
	`

	if _, err := tx.ExecContext(ctx, query,
		[]byte(entity.Data),
		nanoFromTime(now),
		string(entity.Type),
		entity.ID,
		entity.OwnerID,
	); err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	entity.CreatedAt = timeFromNano(createdAt)
	entity.UpdatedAt = now

	return nil
}

// DeleteEntity removes an entity, with the same precondition semantics
func (s *Storage) DeleteEntity(ctx context.Context, ownerID string, entityType models.EntityType, id string, baseUpdatedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var createdAt int64
	if err := s.checkPrecondition(ctx, tx, ownerID, entityType, id, baseUpdatedAt, &createdAt); err != nil {
		return err
	}

	query := `DELETE FROM entities WHERE entity_type = ? AND id = ? AND owner_id = ?`

	if _, err := tx.ExecContext(ctx, query, string(entityType), id, ownerID); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// checkPrecondition loads the stored row inside tx and rejects the write
// when a non-zero baseUpdatedAt is older than the stored updated_at.
func (s *Storage) checkPrecondition(ctx context.Context, tx *sql.Tx, ownerID string, entityType models.EntityType, id string, baseUpdatedAt time.Time, createdAt *int64) error {
	query := `
		SELECT created_at, updated_at
		FROM entities
		WHERE entity_type = ? AND id = ? AND owner_id = ?
	`

	var storedUpdatedAt int64
	err := tx.QueryRowContext(ctx, query, string(entityType), id, ownerID).Scan(createdAt, &storedUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEntityNotFound
		}
		return fmt.Errorf("failed to get stored entity: %w", err)
	}

	if !baseUpdatedAt.IsZero() && storedUpdatedAt > nanoFromTime(baseUpdatedAt) {
		return storage.ErrEntityModified
	}

	return nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (*storage.Entity, error) {
	entity := &storage.Entity{}

	var entityType string
	var createdAt, updatedAt int64

	if err := row.Scan(
		&entity.ID,
		&entityType,
		&entity.OwnerID,
		&entity.Data,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	entity.Type = models.EntityType(entityType)
	entity.CreatedAt = timeFromNano(createdAt)
	entity.UpdatedAt = timeFromNano(updatedAt)

	return entity, nil
}
