package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/server/storage"
	"github.com/greyhelm/sheetsync/internal/server/storage/sqlite"
	"github.com/greyhelm/sheetsync/pkg/api"
)

func newEntityHandler(t *testing.T) (*EntityHandler, *sqlite.Storage, string) {
	t.Helper()

	store := newTestStore(t)

	user := &models.User{
		ID:           "user-1",
		Username:     "aragorn",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.CreateUser(context.Background(), user))

	return NewEntityHandler(testLogger(), store), store, user.ID
}

// entityRequest builds an authenticated request with path values set the way
// the router would.
func entityRequest(t *testing.T, method, userID, entityType, id string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	path := "/api/v1/entities/" + entityType
	if id != "" {
		path += "/" + id
	}

	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
	req.SetPathValue("type", entityType)
	if id != "" {
		req.SetPathValue("id", id)
	}

	return req
}

func createEntityViaHandler(t *testing.T, h *EntityHandler, userID, id string, data map[string]any) api.EntityPayload {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Create(rec, entityRequest(t, http.MethodPost, userID, "character", "", api.SaveEntityRequest{
		ID:   id,
		Data: raw,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload api.EntityPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))

	return payload
}

func TestEntityCreateAndGet(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	created := createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})
	assert.Equal(t, "char-1", created.ID)
	assert.Equal(t, userID, created.OwnerID)
	assert.Equal(t, "character", created.EntityType)
	assert.False(t, created.UpdatedAt.IsZero())

	rec := httptest.NewRecorder()
	h.Get(rec, entityRequest(t, http.MethodGet, userID, "character", "char-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got api.EntityPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.JSONEq(t, string(created.Data), string(got.Data))
}

func TestEntityCreateValidation(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	rec := httptest.NewRecorder()
	h.Create(rec, entityRequest(t, http.MethodPost, userID, "character", "", api.SaveEntityRequest{
		Data: json.RawMessage(`{"name":"NoID"}`),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, entityRequest(t, http.MethodPost, userID, "spellbook", "", api.SaveEntityRequest{
		ID:   "spell-1",
		Data: json.RawMessage(`{}`),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown entity type")
}

func TestEntityCreateConflictOnExisting(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	rec := httptest.NewRecorder()
	h.Create(rec, entityRequest(t, http.MethodPost, userID, "character", "", api.SaveEntityRequest{
		ID:   "char-1",
		Data: json.RawMessage(`{"name":"Impostor"}`),
	}))

	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conflict))
	assert.Equal(t, "char-1", conflict.Current.ID)
	assert.JSONEq(t, `{"name":"Aragorn"}`, string(conflict.Current.Data))
}

func TestEntityList(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})
	createEntityViaHandler(t, h, userID, "char-2", map[string]any{"name": "Boromir"})

	rec := httptest.NewRecorder()
	h.List(rec, entityRequest(t, http.MethodGet, userID, "character", "", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ListEntitiesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Entities, 2)

	// Another user sees nothing.
	rec = httptest.NewRecorder()
	h.List(rec, entityRequest(t, http.MethodGet, "user-2", "character", "", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	resp = api.ListEntitiesResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Entities)
}

func TestEntityUpdateConditional(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	created := createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	time.Sleep(2 * time.Millisecond)

	// First writer carries the current baseline and wins.
	rec := httptest.NewRecorder()
	h.Update(rec, entityRequest(t, http.MethodPut, userID, "character", "char-1", api.SaveEntityRequest{
		BaseUpdatedAt: created.UpdatedAt,
		Data:          json.RawMessage(`{"name":"Strider"}`),
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated api.EntityPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// Second writer still carries the original baseline and loses.
	rec = httptest.NewRecorder()
	h.Update(rec, entityRequest(t, http.MethodPut, userID, "character", "char-1", api.SaveEntityRequest{
		BaseUpdatedAt: created.UpdatedAt,
		Data:          json.RawMessage(`{"name":"Elessar"}`),
	}))
	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conflict))
	assert.JSONEq(t, `{"name":"Strider"}`, string(conflict.Current.Data))
	assert.Equal(t, updated.UpdatedAt.UnixNano(), conflict.Current.UpdatedAt.UnixNano())
}

func TestEntityUpdateUnconditional(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	// Zero baseline means last write wins.
	rec := httptest.NewRecorder()
	h.Update(rec, entityRequest(t, http.MethodPut, userID, "character", "char-1", api.SaveEntityRequest{
		Data: json.RawMessage(`{"name":"Strider"}`),
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEntityUpdateNotFound(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	rec := httptest.NewRecorder()
	h.Update(rec, entityRequest(t, http.MethodPut, userID, "character", "missing", api.SaveEntityRequest{
		Data: json.RawMessage(`{"name":"Ghost"}`),
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntityDelete(t *testing.T) {
	h, store, userID := newEntityHandler(t)

	createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	rec := httptest.NewRecorder()
	h.Delete(rec, entityRequest(t, http.MethodDelete, userID, "character", "char-1", api.DeleteEntityRequest{}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := store.GetEntity(context.Background(), userID, models.EntityTypeCharacter, "char-1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	// A second delete reports not found; the client treats that as success.
	rec = httptest.NewRecorder()
	h.Delete(rec, entityRequest(t, http.MethodDelete, userID, "character", "char-1", api.DeleteEntityRequest{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntityDeleteConflict(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	created := createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	time.Sleep(2 * time.Millisecond)

	rec := httptest.NewRecorder()
	h.Update(rec, entityRequest(t, http.MethodPut, userID, "character", "char-1", api.SaveEntityRequest{
		Data: json.RawMessage(`{"name":"Strider"}`),
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Delete(rec, entityRequest(t, http.MethodDelete, userID, "character", "char-1", api.DeleteEntityRequest{
		BaseUpdatedAt: created.UpdatedAt,
	}))

	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conflict))
	assert.JSONEq(t, `{"name":"Strider"}`, string(conflict.Current.Data))
}

func TestEntityGetScopedToOwner(t *testing.T) {
	h, _, userID := newEntityHandler(t)

	createEntityViaHandler(t, h, userID, "char-1", map[string]any{"name": "Aragorn"})

	rec := httptest.NewRecorder()
	h.Get(rec, entityRequest(t, http.MethodGet, "user-2", "character", "char-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
