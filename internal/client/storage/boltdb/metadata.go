package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime  = "last_sync_time"
	keyLastSyncError = "last_sync_error"
)

// SaveLastSyncTime saves the completion time of the last successful sync run
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.Unix()))

		if err := bucket.Put([]byte(keyLastSyncTime), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// GetLastSyncTime retrieves the completion time of the last successful sync
// run. Returns the zero time if no sync has completed yet.
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastSyncTime))
		if buf == nil {
			// No sync yet.
			return nil
		}

		t = time.Unix(int64(binary.BigEndian.Uint64(buf)), 0)
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return t, nil
}

// SaveLastSyncError records the reduced error of the most recent sync run
func (s *Storage) SaveLastSyncError(ctx context.Context, message string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if message == "" {
			if err := bucket.Delete([]byte(keyLastSyncError)); err != nil {
				return fmt.Errorf("failed to clear last sync error: %w", err)
			}
			return nil
		}

		if err := bucket.Put([]byte(keyLastSyncError), []byte(message)); err != nil {
			return fmt.Errorf("failed to save last sync error: %w", err)
		}
		return nil
	})
}

// GetLastSyncError retrieves the recorded error of the most recent sync run
func (s *Storage) GetLastSyncError(ctx context.Context) (string, error) {
	var message string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if buf := bucket.Get([]byte(keyLastSyncError)); buf != nil {
			message = string(buf)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get last sync error: %w", err)
	}

	return message, nil
}
