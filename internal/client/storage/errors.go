package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrEntityNotFound indicates that the entity is not in the local mirror
	ErrEntityNotFound = errors.New("entity not found")

	// ErrQueueItemNotFound indicates that no matching queue item exists
	ErrQueueItemNotFound = errors.New("queue item not found")

	// ErrConflictNotFound indicates that no matching conflict record exists
	ErrConflictNotFound = errors.New("conflict record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
