package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

// SaveConflict stores or replaces a conflict record
func (s *Storage) SaveConflict(ctx context.Context, record *models.ConflictRecord) error {
	query := `
		INSERT INTO conflicts (
			id, entity_id, entity_type, local_snapshot, server_snapshot,
			server_updated_at, detected_at, resolved_at, resolution
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			local_snapshot = excluded.local_snapshot,
			server_snapshot = excluded.server_snapshot,
			server_updated_at = excluded.server_updated_at,
			resolved_at = excluded.resolved_at,
			resolution = excluded.resolution
	`

	var resolvedAt *int64
	if record.ResolvedAt != nil {
		v := nanoFromTime(*record.ResolvedAt)
		resolvedAt = &v
	}

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.EntityID,
		string(record.EntityType),
		[]byte(record.LocalSnapshot),
		[]byte(record.ServerSnapshot),
		nanoFromTime(record.ServerUpdated),
		nanoFromTime(record.DetectedAt),
		resolvedAt,
		string(record.Resolution),
	)
	if err != nil {
		return fmt.Errorf("failed to save conflict record: %w", err)
	}

	return nil
}

// GetConflict retrieves a conflict record by ID
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.ConflictRecord, error) {
	query := selectConflicts + ` WHERE id = ?`

	record, err := scanConflict(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict record: %w", err)
	}

	return record, nil
}

// GetUnresolvedByEntity returns the open conflict for an entity
func (s *Storage) GetUnresolvedByEntity(ctx context.Context, entityID string) (*models.ConflictRecord, error) {
	query := selectConflicts + ` WHERE entity_id = ? AND resolved_at IS NULL ORDER BY detected_at LIMIT 1`

	record, err := scanConflict(s.db.QueryRowContext(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict record: %w", err)
	}

	return record, nil
}

// ListUnresolved returns all open conflicts, oldest first
func (s *Storage) ListUnresolved(ctx context.Context) ([]*models.ConflictRecord, error) {
	return s.queryConflicts(ctx, selectConflicts+` WHERE resolved_at IS NULL ORDER BY detected_at ASC`)
}

// ListConflicts returns every record including resolved history, oldest first
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	return s.queryConflicts(ctx, selectConflicts+` ORDER BY detected_at ASC`)
}

const selectConflicts = `
	SELECT id, entity_id, entity_type, local_snapshot, server_snapshot,
	       server_updated_at, detected_at, resolved_at, resolution
	FROM conflicts
`

func (s *Storage) queryConflicts(ctx context.Context, query string, args ...any) ([]*models.ConflictRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*models.ConflictRecord
	for rows.Next() {
		record, err := scanConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflict record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func scanConflict(row scanner) (*models.ConflictRecord, error) {
	record := &models.ConflictRecord{}
	var (
		entityType, resolution    string
		serverUpdated, detectedAt int64
		resolvedAt                sql.NullInt64
	)

	err := row.Scan(
		&record.ID,
		&record.EntityID,
		&entityType,
		&record.LocalSnapshot,
		&record.ServerSnapshot,
		&serverUpdated,
		&detectedAt,
		&resolvedAt,
		&resolution,
	)
	if err != nil {
		return nil, err
	}

	record.EntityType = models.EntityType(entityType)
	record.Resolution = models.Resolution(resolution)
	record.ServerUpdated = timeFromNano(serverUpdated)
	record.DetectedAt = timeFromNano(detectedAt)
	if resolvedAt.Valid {
		t := timeFromNano(resolvedAt.Int64)
		record.ResolvedAt = &t
	}

	return record, nil
}
