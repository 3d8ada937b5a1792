package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

// SaveEntity stores or replaces an entity in its type's bucket
func (s *Storage) SaveEntity(ctx context.Context, entity *models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(entity.Type))
		if bucket == nil {
			return fmt.Errorf("entity bucket not found")
		}
		if err := bucket.Put([]byte(entity.ID), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity by type and ID
func (s *Storage) GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entity *models.Entity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(entityType))
		if bucket == nil {
			return storage.ErrEntityNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		entity = &models.Entity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListEntities returns all local entities of the given type
func (s *Storage) ListEntities(ctx context.Context, entityType models.EntityType) ([]*models.Entity, error) {
	return s.listEntities(entityType, func(*models.Entity) bool { return true })
}

// ListEntitiesByStatus returns entities of the given type filtered by sync status
func (s *Storage) ListEntitiesByStatus(ctx context.Context, entityType models.EntityType, status models.SyncStatus) ([]*models.Entity, error) {
	return s.listEntities(entityType, func(e *models.Entity) bool { return e.SyncStatus == status })
}

func (s *Storage) listEntities(entityType models.EntityType, keep func(*models.Entity) bool) ([]*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entities []*models.Entity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(entityType))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entity models.Entity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			if keep(&entity) {
				entities = append(entities, &entity)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, nil
}

// DeleteEntity removes the local copy; deleting a missing entity is a no-op
func (s *Storage) DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(entityType))
		if bucket == nil {
			return nil
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete entity: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}
