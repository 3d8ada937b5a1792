// Package sync implements the offline-first synchronization engine.
//
// All user edits land in the local mirror immediately and enter a durable
// operation queue; the engine drains that queue to the server (push) and then
// reconciles the server's state back into the mirror (pull). Conflicts are
// detected by the server against the client's last-synced baseline and are
// recorded locally with both versions until the user resolves them.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/greyhelm/sheetsync/internal/client/api"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/pkg/api"
)

var (
	// ErrSyncInProgress means a sync run is already active; runs never overlap.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline means the server is unreachable and the run was not started.
	ErrOffline = errors.New("server unreachable")
)

// ConflictMode selects how concurrent edits are handled.
type ConflictMode string

const (
	// ConflictModeManual surfaces conflicts to the user for explicit
	// resolution. Mobile clients run in this mode.
	ConflictModeManual ConflictMode = "manual"

	// ConflictModeLastWriteWins pushes local changes unconditionally; the
	// last writer overwrites. Desktop clients run in this mode.
	ConflictModeLastWriteWins ConflictMode = "last_write_wins"
)

const (
	// DefaultInterval is the periodic sync cadence.
	DefaultInterval = 60 * time.Second

	// DefaultMaxRetries is how many times a queue item is retried before it
	// is parked as failed.
	DefaultMaxRetries = 3
)

// TokenSource supplies a valid access token for server calls.
// auth.Service implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Options configures an Engine.
type Options struct {
	Mode       ConflictMode
	Interval   time.Duration
	MaxRetries int
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ConflictModeManual
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	return o
}

// Result summarizes one sync run.
type Result struct {
	Pushed    int // queue items accepted by the server
	Pulled    int // entities created or updated from server state
	Conflicts int // conflicts detected during this run
	Failed    int // queue items at the retry ceiling after this run
}

// Engine is the synchronization engine. One engine serves one authenticated
// user; construct it after login.
type Engine struct {
	apiClient httpClient.ClientAPI
	mirror    storage.MirrorStorage
	queue     storage.QueueStorage
	conflicts storage.ConflictStorage
	metadata  storage.MetadataStorage
	tokens    TokenSource
	logger    *slog.Logger
	online    func() bool
	kick      chan struct{}
	opts      Options
	running   atomic.Bool
}

// NewEngine creates a sync engine.
func NewEngine(
	apiClient httpClient.ClientAPI,
	mirror storage.MirrorStorage,
	queue storage.QueueStorage,
	conflicts storage.ConflictStorage,
	metadata storage.MetadataStorage,
	tokens TokenSource,
	logger *slog.Logger,
	opts Options,
) *Engine {
	return &Engine{
		apiClient: apiClient,
		mirror:    mirror,
		queue:     queue,
		conflicts: conflicts,
		metadata:  metadata,
		tokens:    tokens,
		logger:    logger,
		kick:      make(chan struct{}, 1),
		opts:      opts.withDefaults(),
	}
}

// SetOnlineCheck installs a reachability probe consulted before each sync
// run, so an offline run fails fast instead of timing out per request. The
// connectivity monitor's Online method fits.
func (e *Engine) SetOnlineCheck(fn func() bool) {
	e.online = fn
}

// SaveOffline applies a local edit: the mirror is updated immediately and an
// intent is queued for the next sync run. At most one queue item exists per
// entity; a newer edit replaces the queued one, keeping the create action
// while the entity has never reached the server.
func (e *Engine) SaveOffline(ctx context.Context, entity *models.Entity) error {
	if !entity.Type.Valid() {
		return fmt.Errorf("unknown entity type %q", entity.Type)
	}

	action := models.ActionUpdate

	existing, err := e.mirror.GetEntity(ctx, entity.Type, entity.ID)
	switch {
	case errors.Is(err, storage.ErrEntityNotFound):
		action = models.ActionCreate
	case err != nil:
		return fmt.Errorf("failed to read mirror: %w", err)
	default:
		// Preserve server bookkeeping across the edit.
		entity.ServerUpdatedAt = existing.ServerUpdatedAt
		entity.LastSyncedAt = existing.LastSyncedAt

		queued, qErr := e.queue.GetByEntity(ctx, entity.ID)
		if qErr == nil && queued.Action == models.ActionCreate {
			// Still unknown to the server: the coalesced item stays a create.
			action = models.ActionCreate
		} else if qErr != nil && !errors.Is(qErr, storage.ErrQueueItemNotFound) {
			return fmt.Errorf("failed to read queue: %w", qErr)
		}
	}

	entity.SyncStatus = models.SyncStatusPending
	entity.LocalUpdatedAt = time.Now().UTC()

	if err := e.mirror.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}

	item := &models.QueueItem{
		ID:         uuid.New().String(),
		EntityID:   entity.ID,
		EntityType: entity.Type,
		Action:     action,
		Data:       entity.Data,
		Timestamp:  entity.LocalUpdatedAt,
	}
	if err := e.queue.Enqueue(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	return nil
}

// DeleteOffline removes an entity locally and queues the deletion. An entity
// the server never saw is dropped outright, queue item included.
func (e *Engine) DeleteOffline(ctx context.Context, entityType models.EntityType, id string) error {
	entity, err := e.mirror.GetEntity(ctx, entityType, id)
	if err != nil {
		return fmt.Errorf("failed to read mirror: %w", err)
	}

	// The mirror row is about to disappear, so the queued deletion must
	// carry the baseline itself or the server cannot detect a concurrent
	// edit of the entity being deleted.
	var baseline time.Time
	if entity.LastSyncedAt != nil {
		baseline = *entity.LastSyncedAt
	}

	if err := e.mirror.DeleteEntity(ctx, entityType, id); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	queued, err := e.queue.GetByEntity(ctx, id)
	if err == nil && queued.Action == models.ActionCreate {
		// Never pushed: nothing to tell the server.
		return e.queue.RemoveByEntity(ctx, id)
	}
	if err != nil && !errors.Is(err, storage.ErrQueueItemNotFound) {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	item := &models.QueueItem{
		ID:            uuid.New().String(),
		EntityID:      id,
		EntityType:    entityType,
		Action:        models.ActionDelete,
		BaseUpdatedAt: baseline,
		Timestamp:     time.Now().UTC(),
	}
	if err := e.queue.Enqueue(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue deletion: %w", err)
	}

	return nil
}

// Sync performs one full push-then-pull run. At most one run is active at a
// time; a second call returns ErrSyncInProgress.
func (e *Engine) Sync(ctx context.Context) (*Result, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer e.running.Store(false)

	result, err := e.syncLocked(ctx)

	// Record the outcome for offline status queries.
	if err != nil {
		if saveErr := e.metadata.SaveLastSyncError(ctx, err.Error()); saveErr != nil {
			e.logger.Warn("failed to record sync error", "error", saveErr)
		}
		return result, err
	}

	now := time.Now().UTC()
	if saveErr := e.metadata.SaveLastSyncTime(ctx, now); saveErr != nil {
		e.logger.Warn("failed to record sync time", "error", saveErr)
	}
	if saveErr := e.metadata.SaveLastSyncError(ctx, ""); saveErr != nil {
		e.logger.Warn("failed to clear sync error", "error", saveErr)
	}

	return result, nil
}

func (e *Engine) syncLocked(ctx context.Context) (*Result, error) {
	if e.online != nil && !e.online() {
		return nil, ErrOffline
	}

	e.logger.Info("starting sync run", "mode", e.opts.Mode)

	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	result := &Result{}

	if err := e.push(ctx, token, result); err != nil {
		return result, err
	}
	if err := e.pull(ctx, token, result); err != nil {
		return result, err
	}

	failed, err := e.queue.Failed(ctx, e.opts.MaxRetries)
	if err != nil {
		return result, fmt.Errorf("failed to count failed items: %w", err)
	}
	result.Failed = len(failed)

	e.logger.Info("sync run completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"conflicts", result.Conflicts,
		"failed", result.Failed)

	return result, nil
}

// push drains the operation queue oldest-first.
func (e *Engine) push(ctx context.Context, token string, result *Result) error {
	items, err := e.queue.Pending(ctx, e.opts.MaxRetries)
	if err != nil {
		return fmt.Errorf("failed to load pending queue: %w", err)
	}

	e.logger.Info("pushing local changes", "count", len(items))

	for _, item := range items {
		// Items for conflicted entities are held back until the user
		// resolves the conflict; resolution re-arms or clears them.
		if _, err := e.conflicts.GetUnresolvedByEntity(ctx, item.EntityID); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrConflictNotFound) {
			return fmt.Errorf("failed to check open conflicts: %w", err)
		}

		if err := e.pushItem(ctx, token, item, result); err != nil {
			// Auth failures poison every remaining item; abort the run.
			if errors.Is(err, httpClient.ErrUnauthorized) {
				return fmt.Errorf("push aborted: %w", err)
			}

			e.logger.Warn("queue item push failed",
				"item_id", item.ID,
				"entity_id", item.EntityID,
				"action", item.Action,
				"error", err)
			if markErr := e.queue.MarkFailed(ctx, item.ID, err.Error()); markErr != nil {
				return fmt.Errorf("failed to mark queue item: %w", markErr)
			}
		}
	}

	return nil
}

// pushItem sends one queued operation. A conflict response records the
// conflict and leaves the item queued until the user resolves it; any other
// error leaves it queued for retry.
func (e *Engine) pushItem(ctx context.Context, token string, item *models.QueueItem, result *Result) error {
	switch item.Action {
	case models.ActionCreate:
		return e.pushCreate(ctx, token, item, result)
	case models.ActionUpdate:
		return e.pushUpdate(ctx, token, item, result)
	case models.ActionDelete:
		return e.pushDelete(ctx, token, item, result)
	default:
		// Unknown actions are unrecoverable; drop the item.
		e.logger.Error("dropping queue item with unknown action", "item_id", item.ID, "action", item.Action)
		return e.queue.Dequeue(ctx, item.ID)
	}
}

func (e *Engine) pushCreate(ctx context.Context, token string, item *models.QueueItem, result *Result) error {
	payload, err := e.apiClient.CreateEntity(ctx, token, string(item.EntityType), api.SaveEntityRequest{
		ID:   item.EntityID,
		Data: item.Data,
	})
	if err != nil {
		var conflict *httpClient.ConflictError
		if errors.As(err, &conflict) {
			// The ID already exists server-side (another device created it).
			return e.recordPushConflict(ctx, item, conflict.Current, result)
		}
		return err
	}

	return e.confirmPush(ctx, item, payload, result)
}

func (e *Engine) pushUpdate(ctx context.Context, token string, item *models.QueueItem, result *Result) error {
	req := api.SaveEntityRequest{
		ID:   item.EntityID,
		Data: item.Data,
	}

	// Manual mode sends the last-synced baseline so the server can detect
	// concurrent edits. Last-write-wins omits it and always overwrites.
	if e.opts.Mode == ConflictModeManual {
		baseline, err := e.baseline(ctx, item)
		if err != nil {
			return err
		}
		req.BaseUpdatedAt = baseline
	}

	payload, err := e.apiClient.UpdateEntity(ctx, token, string(item.EntityType), item.EntityID, req)
	if err != nil {
		var conflict *httpClient.ConflictError
		if errors.As(err, &conflict) {
			return e.recordPushConflict(ctx, item, conflict.Current, result)
		}
		if errors.Is(err, httpClient.ErrNotFound) {
			// Deleted upstream while we edited it; the edit wins and the
			// entity comes back.
			e.logger.Info("entity deleted upstream, recreating", "entity_id", item.EntityID)
			return e.pushCreate(ctx, token, item, result)
		}
		return err
	}

	return e.confirmPush(ctx, item, payload, result)
}

func (e *Engine) pushDelete(ctx context.Context, token string, item *models.QueueItem, result *Result) error {
	req := api.DeleteEntityRequest{}
	if e.opts.Mode == ConflictModeManual {
		// The mirror row is already gone; the item carries the baseline
		// captured at DeleteOffline time.
		req.BaseUpdatedAt = item.BaseUpdatedAt
	}

	err := e.apiClient.DeleteEntity(ctx, token, string(item.EntityType), item.EntityID, req)
	if err != nil {
		var conflict *httpClient.ConflictError
		if errors.As(err, &conflict) {
			return e.recordPushConflict(ctx, item, conflict.Current, result)
		}
		if errors.Is(err, httpClient.ErrNotFound) {
			// Already gone; the intent is satisfied.
			err = nil
		}
	}
	if err != nil {
		return err
	}

	if err := e.queue.Dequeue(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to dequeue: %w", err)
	}
	result.Pushed++
	return nil
}

// baseline returns the server timestamp the client last observed for the
// item's entity, read from the mirror row. Zero means the server never
// confirmed this entity and the write goes out unconditionally.
func (e *Engine) baseline(ctx context.Context, item *models.QueueItem) (time.Time, error) {
	entity, err := e.mirror.GetEntity(ctx, item.EntityType, item.EntityID)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to read mirror: %w", err)
	}

	if entity.LastSyncedAt == nil {
		return time.Time{}, nil
	}
	return *entity.LastSyncedAt, nil
}

// confirmPush applies the server's accepted version to the mirror and
// removes the queue item.
func (e *Engine) confirmPush(ctx context.Context, item *models.QueueItem, payload *api.EntityPayload, result *Result) error {
	serverTime := payload.UpdatedAt

	entity, err := e.mirror.GetEntity(ctx, item.EntityType, item.EntityID)
	if err != nil && !errors.Is(err, storage.ErrEntityNotFound) {
		return fmt.Errorf("failed to read mirror: %w", err)
	}
	if err == nil {
		// Only flip to synced if no newer local edit arrived mid-run; the
		// queue item for such an edit is still pending.
		queued, qErr := e.queue.GetByEntity(ctx, item.EntityID)
		stillPending := qErr == nil && queued.ID != item.ID

		entity.ServerUpdatedAt = serverTime
		entity.LastSyncedAt = &serverTime
		if !stillPending {
			entity.SyncStatus = models.SyncStatusSynced
		}
		if err := e.mirror.SaveEntity(ctx, entity); err != nil {
			return fmt.Errorf("failed to update mirror: %w", err)
		}
	}

	if err := e.queue.Dequeue(ctx, item.ID); err != nil && !errors.Is(err, storage.ErrQueueItemNotFound) {
		return fmt.Errorf("failed to dequeue: %w", err)
	}
	result.Pushed++
	return nil
}

// recordPushConflict stores both versions of an entity whose write the
// server rejected. The queue item stays in place so the local intent is
// retried only after the user resolves the conflict.
func (e *Engine) recordPushConflict(ctx context.Context, item *models.QueueItem, current api.EntityPayload, result *Result) error {
	record := &models.ConflictRecord{
		ID:             uuid.New().String(),
		EntityID:       item.EntityID,
		EntityType:     item.EntityType,
		LocalSnapshot:  item.Data, // nil for a deletion intent
		ServerSnapshot: current.Data,
		ServerUpdated:  current.UpdatedAt,
		DetectedAt:     time.Now().UTC(),
	}

	// One open conflict per entity: a newer detection replaces the stale one.
	if existing, err := e.conflicts.GetUnresolvedByEntity(ctx, item.EntityID); err == nil {
		record.ID = existing.ID
	} else if !errors.Is(err, storage.ErrConflictNotFound) {
		return fmt.Errorf("failed to check open conflicts: %w", err)
	}

	if err := e.conflicts.SaveConflict(ctx, record); err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	// Flag the mirror row when it still exists (deletions already removed it).
	entity, err := e.mirror.GetEntity(ctx, item.EntityType, item.EntityID)
	if err == nil {
		entity.SyncStatus = models.SyncStatusConflict
		if err := e.mirror.SaveEntity(ctx, entity); err != nil {
			return fmt.Errorf("failed to flag conflict in mirror: %w", err)
		}
	} else if !errors.Is(err, storage.ErrEntityNotFound) {
		return fmt.Errorf("failed to read mirror: %w", err)
	}

	e.logger.Info("conflict detected",
		"entity_id", item.EntityID,
		"entity_type", item.EntityType,
		"server_updated", current.UpdatedAt)
	result.Conflicts++
	return nil
}

// pull fetches the full server state per entity type and reconciles it into
// the mirror.
func (e *Engine) pull(ctx context.Context, token string, result *Result) error {
	for _, entityType := range models.EntityTypes {
		payloads, err := e.apiClient.ListEntities(ctx, token, string(entityType))
		if err != nil {
			return fmt.Errorf("failed to list %s entities: %w", entityType, err)
		}

		e.logger.Info("pulling server state", "entity_type", entityType, "count", len(payloads))

		seen := make(map[string]struct{}, len(payloads))
		for i := range payloads {
			seen[payloads[i].ID] = struct{}{}
			if err := e.reconcile(ctx, entityType, &payloads[i], result); err != nil {
				return err
			}
		}

		if err := e.dropDeletedUpstream(ctx, entityType, seen); err != nil {
			return err
		}
	}

	return nil
}

// reconcile merges one server entity into the mirror.
func (e *Engine) reconcile(ctx context.Context, entityType models.EntityType, payload *api.EntityPayload, result *Result) error {
	local, err := e.mirror.GetEntity(ctx, entityType, payload.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("failed to read mirror: %w", err)
		}

		// New upstream entity. If a local deletion for this ID is still
		// queued, keep the row hidden; push will settle it.
		if _, qErr := e.queue.GetByEntity(ctx, payload.ID); qErr == nil {
			return nil
		} else if !errors.Is(qErr, storage.ErrQueueItemNotFound) {
			return fmt.Errorf("failed to read queue: %w", qErr)
		}

		if err := e.adoptServerVersion(ctx, entityType, payload); err != nil {
			return err
		}
		result.Pulled++
		return nil
	}

	switch local.SyncStatus {
	case models.SyncStatusSynced:
		if local.ModifiedOnServerSince(payload.UpdatedAt) {
			if err := e.adoptServerVersion(ctx, entityType, payload); err != nil {
				return err
			}
			result.Pulled++
		}
		return nil

	case models.SyncStatusConflict:
		// Already awaiting resolution; leave both recorded versions alone.
		return nil

	case models.SyncStatusPending:
		if !local.ModifiedOnServerSince(payload.UpdatedAt) {
			// Server is at our baseline; the pending edit will push cleanly.
			return nil
		}

		if e.opts.Mode == ConflictModeLastWriteWins {
			// Local pending edit overwrites on next push; ignore the server
			// version rather than surfacing a conflict.
			return nil
		}

		return e.recordPullConflict(ctx, local, payload, result)

	default:
		return fmt.Errorf("entity %s has unknown sync status %q", local.ID, local.SyncStatus)
	}
}

// adoptServerVersion overwrites the mirror row with the server's version.
func (e *Engine) adoptServerVersion(ctx context.Context, entityType models.EntityType, payload *api.EntityPayload) error {
	serverTime := payload.UpdatedAt
	entity := &models.Entity{
		ID:              payload.ID,
		OwnerID:         payload.OwnerID,
		Type:            entityType,
		Data:            payload.Data,
		SyncStatus:      models.SyncStatusSynced,
		LocalUpdatedAt:  serverTime,
		ServerUpdatedAt: serverTime,
		LastSyncedAt:    &serverTime,
	}

	if err := e.mirror.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to adopt server version: %w", err)
	}
	return nil
}

// recordPullConflict registers a conflict found during pull: the entity has
// a pending local edit and a newer server version.
func (e *Engine) recordPullConflict(ctx context.Context, local *models.Entity, payload *api.EntityPayload, result *Result) error {
	record := &models.ConflictRecord{
		ID:             uuid.New().String(),
		EntityID:       local.ID,
		EntityType:     local.Type,
		LocalSnapshot:  local.Data,
		ServerSnapshot: payload.Data,
		ServerUpdated:  payload.UpdatedAt,
		DetectedAt:     time.Now().UTC(),
	}

	if existing, err := e.conflicts.GetUnresolvedByEntity(ctx, local.ID); err == nil {
		record.ID = existing.ID
	} else if !errors.Is(err, storage.ErrConflictNotFound) {
		return fmt.Errorf("failed to check open conflicts: %w", err)
	}

	if err := e.conflicts.SaveConflict(ctx, record); err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	local.SyncStatus = models.SyncStatusConflict
	if err := e.mirror.SaveEntity(ctx, local); err != nil {
		return fmt.Errorf("failed to flag conflict in mirror: %w", err)
	}

	// The queued edit stays in place; the push phase holds it back until
	// the conflict is resolved.

	e.logger.Info("conflict detected during pull",
		"entity_id", local.ID,
		"entity_type", local.Type,
		"server_updated", payload.UpdatedAt)
	result.Conflicts++
	return nil
}

// dropDeletedUpstream removes synced mirror rows the server no longer lists.
func (e *Engine) dropDeletedUpstream(ctx context.Context, entityType models.EntityType, seen map[string]struct{}) error {
	locals, err := e.mirror.ListEntities(ctx, entityType)
	if err != nil {
		return fmt.Errorf("failed to list mirror: %w", err)
	}

	for _, local := range locals {
		if _, ok := seen[local.ID]; ok {
			continue
		}
		// Pending and conflicted rows stay: a pending create has not reached
		// the server yet, and conflicts are resolved explicitly.
		if local.SyncStatus != models.SyncStatusSynced {
			continue
		}

		e.logger.Info("entity deleted upstream", "entity_id", local.ID, "entity_type", entityType)
		if err := e.mirror.DeleteEntity(ctx, entityType, local.ID); err != nil {
			return fmt.Errorf("failed to drop deleted entity: %w", err)
		}
	}

	return nil
}

// ResolveConflict applies the user's choice for an open conflict.
//
// Choosing the local version re-arms the local edit against the server
// version recorded in the conflict; choosing the server version overwrites
// the mirror and discards any queued edit.
func (e *Engine) ResolveConflict(ctx context.Context, conflictID string, choice models.Resolution) error {
	record, err := e.conflicts.GetConflict(ctx, conflictID)
	if err != nil {
		return fmt.Errorf("failed to load conflict: %w", err)
	}
	if record.Resolved() {
		return fmt.Errorf("conflict %s is already resolved", conflictID)
	}

	switch choice {
	case models.ResolutionLocal:
		if err := e.resolveKeepLocal(ctx, record); err != nil {
			return err
		}
	case models.ResolutionServer:
		if err := e.resolveKeepServer(ctx, record); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown resolution %q", choice)
	}

	now := time.Now().UTC()
	record.ResolvedAt = &now
	record.Resolution = choice
	if err := e.conflicts.SaveConflict(ctx, record); err != nil {
		return fmt.Errorf("failed to record resolution: %w", err)
	}

	e.logger.Info("conflict resolved",
		"conflict_id", record.ID,
		"entity_id", record.EntityID,
		"resolution", choice)
	return nil
}

func (e *Engine) resolveKeepLocal(ctx context.Context, record *models.ConflictRecord) error {
	serverTime := record.ServerUpdated

	if !record.HasLocalSnapshot() {
		// The local intent was a deletion: re-arm it against the version the
		// conflict recorded.
		if err := e.mirror.DeleteEntity(ctx, record.EntityType, record.EntityID); err != nil &&
			!errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("failed to delete entity: %w", err)
		}

		return e.queue.Enqueue(ctx, &models.QueueItem{
			ID:            uuid.New().String(),
			EntityID:      record.EntityID,
			EntityType:    record.EntityType,
			Action:        models.ActionDelete,
			BaseUpdatedAt: record.ServerUpdated,
			Timestamp:     time.Now().UTC(),
		})
	}

	entity := &models.Entity{
		ID:              record.EntityID,
		Type:            record.EntityType,
		Data:            record.LocalSnapshot,
		SyncStatus:      models.SyncStatusPending,
		LocalUpdatedAt:  time.Now().UTC(),
		ServerUpdatedAt: serverTime,
		// Baseline against the conflicting server version so the re-push is
		// accepted unless the server moved again.
		LastSyncedAt: &serverTime,
	}
	if existing, err := e.mirror.GetEntity(ctx, record.EntityType, record.EntityID); err == nil {
		entity.OwnerID = existing.OwnerID
	}

	if err := e.mirror.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to restore local version: %w", err)
	}

	return e.queue.Enqueue(ctx, &models.QueueItem{
		ID:         uuid.New().String(),
		EntityID:   record.EntityID,
		EntityType: record.EntityType,
		Action:     models.ActionUpdate,
		Data:       record.LocalSnapshot,
		Timestamp:  entity.LocalUpdatedAt,
	})
}

func (e *Engine) resolveKeepServer(ctx context.Context, record *models.ConflictRecord) error {
	// Discard whatever local intent is still queued.
	if err := e.queue.RemoveByEntity(ctx, record.EntityID); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	serverTime := record.ServerUpdated

	if !record.HasServerSnapshot() {
		// Server side no longer has the entity; accept the deletion.
		if err := e.mirror.DeleteEntity(ctx, record.EntityType, record.EntityID); err != nil &&
			!errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("failed to delete entity: %w", err)
		}
		return nil
	}

	entity := &models.Entity{
		ID:              record.EntityID,
		Type:            record.EntityType,
		Data:            record.ServerSnapshot,
		SyncStatus:      models.SyncStatusSynced,
		LocalUpdatedAt:  serverTime,
		ServerUpdatedAt: serverTime,
		LastSyncedAt:    &serverTime,
	}
	if existing, err := e.mirror.GetEntity(ctx, record.EntityType, record.EntityID); err == nil {
		entity.OwnerID = existing.OwnerID
	}

	if err := e.mirror.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to adopt server version: %w", err)
	}
	return nil
}

// PendingCount reports how many queue items await the next sync run.
func (e *Engine) PendingCount(ctx context.Context) (int, error) {
	items, err := e.queue.Pending(ctx, e.opts.MaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending queue: %w", err)
	}
	return len(items), nil
}

// ConflictCount reports how many conflicts await resolution.
func (e *Engine) ConflictCount(ctx context.Context) (int, error) {
	records, err := e.conflicts.ListUnresolved(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list conflicts: %w", err)
	}
	return len(records), nil
}

// FailedItems returns queue items parked at the retry ceiling.
func (e *Engine) FailedItems(ctx context.Context) ([]*models.QueueItem, error) {
	return e.queue.Failed(ctx, e.opts.MaxRetries)
}

// RetryFailed re-arms every parked queue item for the next run.
func (e *Engine) RetryFailed(ctx context.Context) (int, error) {
	items, err := e.queue.Failed(ctx, e.opts.MaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to list failed items: %w", err)
	}

	for _, item := range items {
		if err := e.queue.ResetTries(ctx, item.ID); err != nil {
			return 0, fmt.Errorf("failed to reset item %s: %w", item.ID, err)
		}
	}
	return len(items), nil
}

// LastSyncedAt returns when the last successful sync run completed, or the
// zero time if none has.
func (e *Engine) LastSyncedAt(ctx context.Context) (time.Time, error) {
	return e.metadata.GetLastSyncTime(ctx)
}

// LastError returns the recorded error of the most recent sync run, or ""
// if it succeeded.
func (e *Engine) LastError(ctx context.Context) (string, error) {
	return e.metadata.GetLastSyncError(ctx)
}

// Kick requests an immediate sync from a running Run loop. It never blocks;
// the connectivity monitor calls it on reconnect.
func (e *Engine) Kick() {
	select {
	case e.kick <- struct{}{}:
	default:
	}
}

// Run syncs on a fixed interval and on Kick until ctx is cancelled. Run
// failures are logged, recorded in metadata and retried on the next tick.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-e.kick:
		}

		if _, err := e.Sync(ctx); err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				continue
			}
			e.logger.Warn("sync run failed", "error", err)
		}
	}
}
