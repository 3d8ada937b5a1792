package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/greyhelm/sheetsync/internal/models"
)

var (
	// BoltDB bucket names
	bucketAuth       = []byte("auth")
	bucketMetadata   = []byte("metadata")
	bucketQueue      = []byte("queue")
	bucketConflicts  = []byte("conflicts")
	bucketCharacters = []byte("entities_character")
	bucketParties    = []byte("entities_party")
)

// Storage is the BoltDB-backed client store. One database file carries every
// client storage concern: mirror, queue, conflicts, metadata and auth.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist
func (s *Storage) initBuckets() error {
	buckets := [][]byte{
		bucketAuth,
		bucketMetadata,
		bucketQueue,
		bucketConflicts,
		bucketCharacters,
		bucketParties,
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// entityBucket maps an entity type to its mirror bucket
func entityBucket(entityType models.EntityType) []byte {
	if entityType == models.EntityTypeParty {
		return bucketParties
	}
	return bucketCharacters
}
