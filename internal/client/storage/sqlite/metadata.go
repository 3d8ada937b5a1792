package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	metaLastSyncTime  = "last_sync_time"
	metaLastSyncError = "last_sync_error"
)

// SaveLastSyncTime saves the completion time of the last successful sync run
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return s.setMeta(ctx, metaLastSyncTime, t.UTC().Format(time.RFC3339Nano))
}

// GetLastSyncTime retrieves the completion time of the last successful sync run
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	value, err := s.getMeta(ctx, metaLastSyncTime)
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last sync time: %w", err)
	}

	return t, nil
}

// SaveLastSyncError records the reduced error of the most recent sync run
func (s *Storage) SaveLastSyncError(ctx context.Context, message string) error {
	if message == "" {
		_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, metaLastSyncError)
		if err != nil {
			return fmt.Errorf("failed to clear last sync error: %w", err)
		}
		return nil
	}

	return s.setMeta(ctx, metaLastSyncError, message)
}

// GetLastSyncError retrieves the recorded error of the most recent sync run
func (s *Storage) GetLastSyncError(ctx context.Context) (string, error) {
	return s.getMeta(ctx, metaLastSyncError)
}

func (s *Storage) setMeta(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save metadata %q: %w", key, err)
	}

	return nil
}

func (s *Storage) getMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get metadata %q: %w", key, err)
	}

	return value, nil
}
