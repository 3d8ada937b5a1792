package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

// SaveConflict stores or replaces a conflict record
func (s *Storage) SaveConflict(ctx context.Context, record *models.ConflictRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}
		if err := bucket.Put([]byte(record.ID), data); err != nil {
			return fmt.Errorf("failed to save conflict record: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetConflict retrieves a conflict record by ID
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.ConflictRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return storage.ErrConflictNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		record = &models.ConflictRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal conflict record: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetUnresolvedByEntity returns the open conflict for an entity
func (s *Storage) GetUnresolvedByEntity(ctx context.Context, entityID string) (*models.ConflictRecord, error) {
	records, err := s.listConflicts(func(r *models.ConflictRecord) bool {
		return !r.Resolved() && r.EntityID == entityID
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, storage.ErrConflictNotFound
	}
	return records[0], nil
}

// ListUnresolved returns all open conflicts, oldest first
func (s *Storage) ListUnresolved(ctx context.Context) ([]*models.ConflictRecord, error) {
	return s.listConflicts(func(r *models.ConflictRecord) bool { return !r.Resolved() })
}

// ListConflicts returns every record including resolved history, oldest first
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	return s.listConflicts(func(*models.ConflictRecord) bool { return true })
}

func (s *Storage) listConflicts(keep func(*models.ConflictRecord) bool) ([]*models.ConflictRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			var record models.ConflictRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal conflict record: %w", err)
			}
			if keep(&record) {
				records = append(records, &record)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DetectedAt.Before(records[j].DetectedAt)
	})

	return records, nil
}
