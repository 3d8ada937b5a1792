package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/greyhelm/sheetsync/internal/client/storage"
)

// SaveAuth stores authentication data, replacing any previous session
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	query := `
		INSERT INTO auth_session (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data
	`

	if _, err := s.db.ExecContext(ctx, query, data); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	return nil
}

// GetAuth retrieves the stored session
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM auth_session WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAuthNotFound
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	auth := &storage.AuthData{}
	if err := json.Unmarshal(data, auth); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth data: %w", err)
	}

	return auth, nil
}

// DeleteAuth removes the stored session
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM auth_session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	return nil
}

// IsAuthenticated checks whether a non-expired session exists
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	if auth.ExpiresAt > 0 && time.Now().Unix() >= auth.ExpiresAt {
		return false, nil
	}

	return auth.AccessToken != "", nil
}
