package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

// Enqueue appends a queue item, coalescing with any prior item for the same
// entity. Delete and insert run inside one transaction.
func (s *Storage) Enqueue(ctx context.Context, item *models.QueueItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM queue_items WHERE entity_id = ?`, item.EntityID); err != nil {
		return fmt.Errorf("failed to remove coalesced item: %w", err)
	}

	query := `
		INSERT INTO queue_items (id, entity_id, entity_type, action, data, base_updated_at, timestamp, retry_count, last_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		item.ID,
		item.EntityID,
		string(item.EntityType),
		string(item.Action),
		[]byte(item.Data),
		nanoFromTime(item.BaseUpdatedAt),
		item.Timestamp.UnixNano(),
		item.RetryCount,
		item.LastError,
	)
	if err != nil {
		return fmt.Errorf("failed to insert queue item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit enqueue: %w", err)
	}

	return nil
}

// Pending returns retryable items sorted oldest first
func (s *Storage) Pending(ctx context.Context, maxRetries int) ([]*models.QueueItem, error) {
	query := `
		SELECT id, entity_id, entity_type, action, data, base_updated_at, timestamp, retry_count, last_error
		FROM queue_items
		WHERE retry_count < ?
		ORDER BY timestamp ASC
	`

	return s.queryItems(ctx, query, maxRetries)
}

// Failed returns items that exhausted the retry ceiling, oldest first
func (s *Storage) Failed(ctx context.Context, maxRetries int) ([]*models.QueueItem, error) {
	query := `
		SELECT id, entity_id, entity_type, action, data, base_updated_at, timestamp, retry_count, last_error
		FROM queue_items
		WHERE retry_count >= ?
		ORDER BY timestamp ASC
	`

	return s.queryItems(ctx, query, maxRetries)
}

// MarkFailed increments the retry count and records the error message
func (s *Storage) MarkFailed(ctx context.Context, id, message string) error {
	query := `UPDATE queue_items SET retry_count = retry_count + 1, last_error = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, message, id)
	if err != nil {
		return fmt.Errorf("failed to mark queue item failed: %w", err)
	}

	return requireRowAffected(result, storage.ErrQueueItemNotFound)
}

// ResetTries re-arms a failed item so it becomes pending again
func (s *Storage) ResetTries(ctx context.Context, id string) error {
	query := `UPDATE queue_items SET retry_count = 0, last_error = '' WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to reset queue item: %w", err)
	}

	return requireRowAffected(result, storage.ErrQueueItemNotFound)
}

// Dequeue removes an acknowledged item
func (s *Storage) Dequeue(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM queue_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to dequeue item: %w", err)
	}

	return requireRowAffected(result, storage.ErrQueueItemNotFound)
}

// GetByEntity returns the queued item for an entity
func (s *Storage) GetByEntity(ctx context.Context, entityID string) (*models.QueueItem, error) {
	query := `
		SELECT id, entity_id, entity_type, action, data, base_updated_at, timestamp, retry_count, last_error
		FROM queue_items
		WHERE entity_id = ?
	`

	item, err := scanQueueItem(s.db.QueryRowContext(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrQueueItemNotFound
		}
		return nil, fmt.Errorf("failed to get queue item: %w", err)
	}

	return item, nil
}

// RemoveByEntity drops any queued item for the entity; missing items are a no-op
func (s *Storage) RemoveByEntity(ctx context.Context, entityID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM queue_items WHERE entity_id = ?`, entityID); err != nil {
		return fmt.Errorf("failed to remove queue items: %w", err)
	}

	return nil
}

func (s *Storage) queryItems(ctx context.Context, query string, args ...any) ([]*models.QueueItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []*models.QueueItem
	for rows.Next() {
		item, err := scanQueueItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func scanQueueItem(row scanner) (*models.QueueItem, error) {
	item := &models.QueueItem{}
	var (
		entityType, action       string
		baseUpdatedAt, timestamp int64
	)

	err := row.Scan(
		&item.ID,
		&item.EntityID,
		&entityType,
		&action,
		&item.Data,
		&baseUpdatedAt,
		&timestamp,
		&item.RetryCount,
		&item.LastError,
	)
	if err != nil {
		return nil, err
	}

	item.EntityType = models.EntityType(entityType)
	item.Action = models.Action(action)
	item.BaseUpdatedAt = timeFromNano(baseUpdatedAt)
	item.Timestamp = timeFromNano(timestamp)

	return item, nil
}

func requireRowAffected(result sql.Result, missing error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return missing
	}
	return nil
}
