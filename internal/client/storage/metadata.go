package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage stores client-side sync bookkeeping so status stays
// queryable offline and across restarts.
type MetadataStorage interface {
	// SaveLastSyncTime saves the completion time of the last successful sync run.
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the completion time of the last successful
	// sync run. Returns the zero time if no sync has completed yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// SaveLastSyncError records the reduced error of the most recent sync
	// run; an empty string clears it.
	SaveLastSyncError(ctx context.Context, message string) error

	// GetLastSyncError retrieves the recorded error of the most recent
	// sync run, or "" if it succeeded.
	GetLastSyncError(ctx context.Context) (string, error)
}
