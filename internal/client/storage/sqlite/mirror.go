package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

// SaveEntity stores or replaces an entity
func (s *Storage) SaveEntity(ctx context.Context, entity *models.Entity) error {
	query := `
		INSERT INTO entities (
			id, entity_type, owner_id, data, sync_status,
			local_updated_at, server_updated_at, last_synced_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, id) DO UPDATE SET
			owner_id = excluded.owner_id,
			data = excluded.data,
			sync_status = excluded.sync_status,
			local_updated_at = excluded.local_updated_at,
			server_updated_at = excluded.server_updated_at,
			last_synced_at = excluded.last_synced_at
	`

	var lastSynced *int64
	if entity.LastSyncedAt != nil {
		v := nanoFromTime(*entity.LastSyncedAt)
		lastSynced = &v
	}

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		string(entity.Type),
		entity.OwnerID,
		[]byte(entity.Data),
		string(entity.SyncStatus),
		nanoFromTime(entity.LocalUpdatedAt),
		nanoFromTime(entity.ServerUpdatedAt),
		lastSynced,
	)
	if err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity by type and ID
func (s *Storage) GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	query := `
		SELECT id, entity_type, owner_id, data, sync_status,
		       local_updated_at, server_updated_at, last_synced_at
		FROM entities
		WHERE entity_type = ? AND id = ?
	`

	entity, err := scanEntity(s.db.QueryRowContext(ctx, query, string(entityType), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return entity, nil
}

// ListEntities returns all local entities of the given type
func (s *Storage) ListEntities(ctx context.Context, entityType models.EntityType) ([]*models.Entity, error) {
	query := `
		SELECT id, entity_type, owner_id, data, sync_status,
		       local_updated_at, server_updated_at, last_synced_at
		FROM entities
		WHERE entity_type = ?
		ORDER BY id
	`

	return s.queryEntities(ctx, query, string(entityType))
}

// ListEntitiesByStatus returns entities filtered by sync status, served by
// the (entity_type, sync_status) index
func (s *Storage) ListEntitiesByStatus(ctx context.Context, entityType models.EntityType, status models.SyncStatus) ([]*models.Entity, error) {
	query := `
		SELECT id, entity_type, owner_id, data, sync_status,
		       local_updated_at, server_updated_at, last_synced_at
		FROM entities
		WHERE entity_type = ? AND sync_status = ?
		ORDER BY id
	`

	return s.queryEntities(ctx, query, string(entityType), string(status))
}

// DeleteEntity removes the local copy; deleting a missing entity is a no-op
func (s *Storage) DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error {
	query := `DELETE FROM entities WHERE entity_type = ? AND id = ?`

	if _, err := s.db.ExecContext(ctx, query, string(entityType), id); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

func (s *Storage) queryEntities(ctx context.Context, query string, args ...any) ([]*models.Entity, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entities []*models.Entity
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

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(row scanner) (*models.Entity, error) {
	entity := &models.Entity{}
	var (
		entityType, syncStatus      string
		localUpdated, serverUpdated int64
		lastSynced                  sql.NullInt64
	)

	err := row.Scan(
		&entity.ID,
		&entityType,
		&entity.OwnerID,
		&entity.Data,
		&syncStatus,
		&localUpdated,
		&serverUpdated,
		&lastSynced,
	)
	if err != nil {
		return nil, err
	}

	entity.Type = models.EntityType(entityType)
	entity.SyncStatus = models.SyncStatus(syncStatus)
	entity.LocalUpdatedAt = timeFromNano(localUpdated)
	entity.ServerUpdatedAt = timeFromNano(serverUpdated)
	if lastSynced.Valid {
		t := timeFromNano(lastSynced.Int64)
		entity.LastSyncedAt = &t
	}

	return entity, nil
}

// nanoFromTime maps the zero time to 0 so it survives the round trip
func nanoFromTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func timeFromNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
