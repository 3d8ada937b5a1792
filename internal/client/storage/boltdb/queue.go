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

// Enqueue appends a queue item, coalescing with any prior item for the same
// entity. The removal of the old item and the put of the new one happen in
// one bbolt transaction, so the one-item-per-entity invariant holds even if
// the process dies mid-enqueue.
func (s *Storage) Enqueue(ctx context.Context, item *models.QueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal queue item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// Drop any existing item for this entity (coalescing).
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var existing models.QueueItem
			if err := json.Unmarshal(v, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			if existing.EntityID == item.EntityID {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, key := range stale {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to remove coalesced item: %w", err)
			}
		}

		if err := bucket.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return nil
}

// Pending returns retryable items sorted oldest first
func (s *Storage) Pending(ctx context.Context, maxRetries int) ([]*models.QueueItem, error) {
	return s.listQueue(func(item *models.QueueItem) bool {
		return item.RetryCount < maxRetries
	})
}

// Failed returns items that exhausted the retry ceiling, oldest first
func (s *Storage) Failed(ctx context.Context, maxRetries int) ([]*models.QueueItem, error) {
	return s.listQueue(func(item *models.QueueItem) bool {
		return item.RetryCount >= maxRetries
	})
}

func (s *Storage) listQueue(keep func(*models.QueueItem) bool) ([]*models.QueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			if keep(&item) {
				items = append(items, &item)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	// Causal replay order: oldest enqueue first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})

	return items, nil
}

// MarkFailed increments the retry count and records the error message
func (s *Storage) MarkFailed(ctx context.Context, id, message string) error {
	return s.updateItem(id, func(item *models.QueueItem) {
		item.RetryCount++
		item.LastError = message
	})
}

// ResetTries re-arms a failed item so it becomes pending again
func (s *Storage) ResetTries(ctx context.Context, id string) error {
	return s.updateItem(id, func(item *models.QueueItem) {
		item.RetryCount = 0
		item.LastError = ""
	})
}

func (s *Storage) updateItem(id string, mutate func(*models.QueueItem)) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrQueueItemNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrQueueItemNotFound
		}

		var item models.QueueItem
		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("failed to unmarshal queue item: %w", err)
		}

		mutate(&item)

		updated, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}
		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrQueueItemNotFound {
			return err
		}
		return fmt.Errorf("queue update transaction failed: %w", err)
	}

	return nil
}

// Dequeue removes an acknowledged item
func (s *Storage) Dequeue(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrQueueItemNotFound
		}
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrQueueItemNotFound
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete queue item: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrQueueItemNotFound {
			return err
		}
		return fmt.Errorf("dequeue transaction failed: %w", err)
	}

	return nil
}

// GetByEntity returns the queued item for an entity
func (s *Storage) GetByEntity(ctx context.Context, entityID string) (*models.QueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var found *models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			if item.EntityID == entityID {
				found = &item
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan queue: %w", err)
	}
	if found == nil {
		return nil, storage.ErrQueueItemNotFound
	}

	return found, nil
}

// RemoveByEntity drops any queued item for the entity; missing items are a no-op
func (s *Storage) RemoveByEntity(ctx context.Context, entityID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			if item.EntityID == entityID {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, key := range stale {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete queue item: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}
