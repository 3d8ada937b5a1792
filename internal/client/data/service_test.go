package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhelm/sheetsync/internal/client/storage/boltdb"
	"github.com/greyhelm/sheetsync/internal/models"
)

// mirrorWriter drives the mirror directly; queue behavior is covered by the
// sync engine tests.
type mirrorWriter struct {
	store *boltdb.Storage
}

func (w *mirrorWriter) SaveOffline(ctx context.Context, entity *models.Entity) error {
	entity.SyncStatus = models.SyncStatusPending
	return w.store.SaveEntity(ctx, entity)
}

func (w *mirrorWriter) DeleteOffline(ctx context.Context, entityType models.EntityType, id string) error {
	return w.store.DeleteEntity(ctx, entityType, id)
}

func newTestService(t *testing.T) Service {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewService(&mirrorWriter{store: store}, store)
}

func testCharacterModel(name string) *models.Character {
	return &models.Character{
		Name:       name,
		Class:      "Ranger",
		Ancestry:   "Elf",
		Level:      3,
		HitPoints:  24,
		MaxHP:      30,
		Attributes: map[string]int{
			"str": 12,
			"dex": 18,
		},
	}
}

func TestCharacterLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	character := testCharacterModel("Vex")
	require.NoError(t, svc.AddCharacter(ctx, "user-1", character))
	require.NotEmpty(t, character.ID)

	record, err := svc.GetCharacter(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vex", record.Character.Name)
	assert.Equal(t, 18, record.Character.Attributes["dex"])
	assert.Equal(t, models.SyncStatusPending, record.SyncStatus)

	character.Level = 4
	character.Name = "Vex the Bold"
	require.NoError(t, svc.UpdateCharacter(ctx, character))

	record, err = svc.GetCharacter(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vex the Bold", record.Character.Name)
	assert.Equal(t, 4, record.Character.Level)

	records, err := svc.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, svc.DeleteCharacter(ctx, character.ID))

	_, err = svc.GetCharacter(ctx, character.ID)
	assert.Error(t, err)
}

func TestAddCharacterValidation(t *testing.T) {
	svc := newTestService(t)

	err := svc.AddCharacter(context.Background(), "user-1", &models.Character{Name: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character name")
}

func TestUpdateCharacterMissing(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateCharacter(context.Background(), &models.Character{ID: "missing", Name: "Ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get character")
}

func TestPartyLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	party := &models.Party{
		Name:        "The Broken Banner",
		Description: "Sellswords of the northern marches",
		MemberIDs:   []string{"char-1", "char-2"},
	}
	require.NoError(t, svc.AddParty(ctx, "user-1", party))
	require.NotEmpty(t, party.ID)

	record, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Broken Banner", record.Party.Name)
	assert.Equal(t, []string{"char-1", "char-2"}, record.Party.MemberIDs)

	party.MemberIDs = append(party.MemberIDs, "char-3")
	require.NoError(t, svc.UpdateParty(ctx, party))

	record, err = svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.Len(t, record.Party.MemberIDs, 3)

	parties, err := svc.ListParties(ctx)
	require.NoError(t, err)
	require.Len(t, parties, 1)

	require.NoError(t, svc.DeleteParty(ctx, party.ID))

	parties, err = svc.ListParties(ctx)
	require.NoError(t, err)
	assert.Empty(t, parties)
}
