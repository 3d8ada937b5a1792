package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/server/storage"
	"github.com/greyhelm/sheetsync/pkg/api"
)

// EntityHandler serves the owner-scoped entity CRUD the sync protocol runs
// on. Conditional writes surface concurrent edits as 409 responses carrying
// the server's current version.
type EntityHandler struct {
	logger  *slog.Logger
	storage storage.EntityStorage
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(logger *slog.Logger, entityStorage storage.EntityStorage) *EntityHandler {
	return &EntityHandler{
		logger:  logger,
		storage: entityStorage,
	}
}

// List handles GET /api/v1/entities/{type}
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	entities, err := h.storage.ListEntities(ctx, userID, entityType)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entities", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListEntitiesResponse{
		Entities: make([]api.EntityPayload, 0, len(entities)),
	}
	for _, entity := range entities {
		resp.Entities = append(resp.Entities, toPayload(entity))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get handles GET /api/v1/entities/{type}/{id}
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	entity, err := h.storage.GetEntity(ctx, userID, entityType, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			h.sendError(w, "entity not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get entity", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toPayload(entity), http.StatusOK)
}

// Create handles POST /api/v1/entities/{type}
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var req api.SaveEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		h.sendError(w, "entity id is required", http.StatusBadRequest)
		return
	}
	if len(req.Data) == 0 {
		h.sendError(w, "entity data is required", http.StatusBadRequest)
		return
	}

	entity := &storage.Entity{
		ID:      req.ID,
		OwnerID: userID,
		Type:    entityType,
		Data:    req.Data,
	}

	if err := h.storage.CreateEntity(ctx, entity); err != nil {
		if errors.Is(err, storage.ErrEntityExists) {
			// The row already exists, so the create is really a concurrent
			// edit; answer with the current version like any other conflict.
			h.sendConflict(ctx, w, userID, entityType, req.ID, "entity already exists")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create entity", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "entity created",
		slog.String("entity_type", string(entityType)),
		slog.String("entity_id", entity.ID),
		slog.String("owner_id", userID))

	h.sendJSON(w, toPayload(entity), http.StatusCreated)
}

// Update handles PUT /api/v1/entities/{type}/{id}
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req api.SaveEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Data) == 0 {
		h.sendError(w, "entity data is required", http.StatusBadRequest)
		return
	}

	entity := &storage.Entity{
		ID:      id,
		OwnerID: userID,
		Type:    entityType,
		Data:    req.Data,
	}

	if err := h.storage.UpdateEntity(ctx, entity, req.BaseUpdatedAt); err != nil {
		switch {
		case errors.Is(err, storage.ErrEntityNotFound):
			h.sendError(w, "entity not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrEntityModified):
			h.sendConflict(ctx, w, userID, entityType, id, "entity modified since base timestamp")
		default:
			h.logger.ErrorContext(ctx, "failed to update entity", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "entity updated",
		slog.String("entity_type", string(entityType)),
		slog.String("entity_id", id),
		slog.String("owner_id", userID))

	h.sendJSON(w, toPayload(entity), http.StatusOK)
}

// Delete handles DELETE /api/v1/entities/{type}/{id}
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req api.DeleteEntityRequest
	if r.Body != nil {
		// Body is optional; without it the delete is unconditional.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.storage.DeleteEntity(ctx, userID, entityType, id, req.BaseUpdatedAt); err != nil {
		switch {
		case errors.Is(err, storage.ErrEntityNotFound):
			h.sendError(w, "entity not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrEntityModified):
			h.sendConflict(ctx, w, userID, entityType, id, "entity modified since base timestamp")
		default:
			h.logger.ErrorContext(ctx, "failed to delete entity", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "entity deleted",
		slog.String("entity_type", string(entityType)),
		slog.String("entity_id", id),
		slog.String("owner_id", userID))

	w.WriteHeader(http.StatusNoContent)
}

// requestScope extracts the authenticated user and the validated entity type
// from the request, answering the error response itself when either is bad.
func (h *EntityHandler) requestScope(w http.ResponseWriter, r *http.Request) (string, models.EntityType, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	entityType := models.EntityType(r.PathValue("type"))
	if !entityType.Valid() {
		h.sendError(w, "unknown entity type", http.StatusBadRequest)
		return "", "", false
	}

	return userID, entityType, true
}

// sendConflict answers 409 with the server's current version of the entity.
func (h *EntityHandler) sendConflict(ctx context.Context, w http.ResponseWriter, userID string, entityType models.EntityType, id, message string) {
	resp := api.ConflictResponse{
		Error:   http.StatusText(http.StatusConflict),
		Message: message,
	}

	current, err := h.storage.GetEntity(ctx, userID, entityType, id)
	if err != nil {
		// The row vanished between the rejected write and this read; the
		// envelope still tells the client it lost the race.
		h.logger.WarnContext(ctx, "failed to load current entity for conflict response", slog.Any("error", err))
	} else {
		resp.Current = toPayload(current)
	}

	h.logger.InfoContext(ctx, "conflicting write rejected",
		slog.String("entity_type", string(entityType)),
		slog.String("entity_id", id),
		slog.String("owner_id", userID))

	h.sendJSON(w, resp, http.StatusConflict)
}

func toPayload(entity *storage.Entity) api.EntityPayload {
	return api.EntityPayload{
		ID:         entity.ID,
		OwnerID:    entity.OwnerID,
		EntityType: string(entity.Type),
		Data:       entity.Data,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

// sendJSON writes a JSON response
func (h *EntityHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func (h *EntityHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
