package storage

import (
	"context"

	"github.com/greyhelm/sheetsync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage is the ordered, durable log of pending mutations, keyed by
// entity and deduplicated so at most one item exists per entity.
type QueueStorage interface {
	// Enqueue atomically removes any existing item for the same entity and
	// appends item. Implementations must perform both steps in a single
	// transaction so the one-item-per-entity invariant survives a crash.
	Enqueue(ctx context.Context, item *models.QueueItem) error

	// Pending returns items with RetryCount < maxRetries, sorted ascending
	// by timestamp (oldest first).
	Pending(ctx context.Context, maxRetries int) ([]*models.QueueItem, error)

	// Failed returns items that exhausted the retry ceiling
	// (RetryCount >= maxRetries). They stay in the queue for inspection.
	Failed(ctx context.Context, maxRetries int) ([]*models.QueueItem, error)

	// MarkFailed increments the item's retry count and records the error
	// message. The item is not removed.
	// Returns ErrQueueItemNotFound if the item doesn't exist.
	MarkFailed(ctx context.Context, id, message string) error

	// ResetTries zeroes the retry count and clears the last error so a
	// failed item becomes pending again.
	// Returns ErrQueueItemNotFound if the item doesn't exist.
	ResetTries(ctx context.Context, id string) error

	// Dequeue removes an item after confirmed server acknowledgement. This
	// is the only path that retires a successful operation.
	Dequeue(ctx context.Context, id string) error

	// GetByEntity returns the queued item for an entity.
	// Returns ErrQueueItemNotFound if none is queued.
	GetByEntity(ctx context.Context, entityID string) (*models.QueueItem, error)

	// RemoveByEntity drops any queued item for the entity. Used when a
	// conflict resolution picks the server version. Removing a missing
	// item is not an error.
	RemoveByEntity(ctx context.Context, entityID string) error
}
