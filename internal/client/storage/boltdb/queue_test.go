package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
)

const maxRetries = 3

func testQueueItem(id, entityID string, action models.Action, ts time.Time) *models.QueueItem {
	return &models.QueueItem{
		ID:         id,
		EntityID:   entityID,
		EntityType: models.EntityTypeCharacter,
		Action:     action,
		Data:       json.RawMessage(`{"name":"Test"}`),
		Timestamp:  ts,
	}
}

func TestEnqueueCoalescing(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	first := testQueueItem("op-1", "char-1", models.ActionUpdate, now)
	first.Data = json.RawMessage(`{"name":"First"}`)
	require.NoError(t, s.Enqueue(ctx, first))

	second := testQueueItem("op-2", "char-1", models.ActionUpdate, now.Add(time.Second))
	second.Data = json.RawMessage(`{"name":"Second"}`)
	require.NoError(t, s.Enqueue(ctx, second))

	// Exactly one item remains, carrying the second operation's data.
	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "op-2", pending[0].ID)
	assert.Equal(t, json.RawMessage(`{"name":"Second"}`), pending[0].Data)
}

func TestEnqueueCoalescingDeleteAfterUpdate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Edit then delete while offline: only the delete survives.
	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionUpdate, now)))

	del := testQueueItem("op-2", "char-1", models.ActionDelete, now.Add(time.Second))
	del.Data = nil
	require.NoError(t, s.Enqueue(ctx, del))

	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.ActionDelete, pending[0].Action)
	assert.Empty(t, pending[0].Data)
}

func TestPendingOrderedOldestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Insert out of order across distinct entities.
	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-b", "char-b", models.ActionCreate, now.Add(2*time.Second))))
	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-a", "char-a", models.ActionCreate, now)))
	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-c", "char-c", models.ActionCreate, now.Add(4*time.Second))))

	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "op-a", pending[0].ID)
	assert.Equal(t, "op-b", pending[1].ID)
	assert.Equal(t, "op-c", pending[2].ID)
}

func TestMarkFailedAndRetryCeiling(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionUpdate, time.Now().UTC())))

	for i := 0; i < maxRetries; i++ {
		pending, err := s.Pending(ctx, maxRetries)
		require.NoError(t, err)
		require.Len(t, pending, 1, "attempt %d should still be pending", i)

		require.NoError(t, s.MarkFailed(ctx, "op-1", "connection refused"))
	}

	// Ceiling reached: excluded from pending, visible via Failed.
	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	assert.Empty(t, pending)

	failed, err := s.Failed(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, maxRetries, failed[0].RetryCount)
	assert.Equal(t, "connection refused", failed[0].LastError)
}

func TestResetTries(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionUpdate, time.Now().UTC())))
	for i := 0; i < maxRetries; i++ {
		require.NoError(t, s.MarkFailed(ctx, "op-1", "boom"))
	}

	require.NoError(t, s.ResetTries(ctx, "op-1"))

	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Zero(t, pending[0].RetryCount)
	assert.Empty(t, pending[0].LastError)
}

func TestMarkFailedNotFound(t *testing.T) {
	s := newTestStorage(t)

	err := s.MarkFailed(context.Background(), "missing", "boom")
	assert.ErrorIs(t, err, storage.ErrQueueItemNotFound)
}

func TestDequeue(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionCreate, time.Now().UTC())))
	require.NoError(t, s.Dequeue(ctx, "op-1"))

	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, s.Dequeue(ctx, "op-1"), storage.ErrQueueItemNotFound)
}

func TestGetByEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionUpdate, time.Now().UTC())))

	item, err := s.GetByEntity(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "op-1", item.ID)

	_, err = s.GetByEntity(ctx, "char-2")
	assert.ErrorIs(t, err, storage.ErrQueueItemNotFound)
}

func TestRemoveByEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-1", "char-1", models.ActionUpdate, now)))
	require.NoError(t, s.Enqueue(ctx, testQueueItem("op-2", "char-2", models.ActionUpdate, now)))

	require.NoError(t, s.RemoveByEntity(ctx, "char-1"))

	pending, err := s.Pending(ctx, maxRetries)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "op-2", pending[0].ID)

	// Removing an entity with nothing queued is a no-op.
	require.NoError(t, s.RemoveByEntity(ctx, "char-1"))
}
