package cookbook

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasse/household-suite/pkg/kvstore"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemory()
	store := NewStore(kv, slog.Default())
	require.NoError(t, store.Load())
	return store, kv
}

func TestLoadSeedsDefaultRecipe(t *testing.T) {
	store, _ := newTestStore(t)

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "default-buldak", all[0].ID)
	assert.NotEmpty(t, all[0].Ingredients)
}

func TestLoadNormalizesLegacyRecords(t *testing.T) {
	kv := kvstore.NewMemory()
	legacy := []map[string]any{
		{"id": "old-1", "title": "Old", "servings": 2},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set(StorageKey, data))

	store := NewStore(kv, slog.Default())
	require.NoError(t, store.Load())

	r, err := store.Get("old-1")
	require.NoError(t, err)
	assert.NotNil(t, r.Tags)
	assert.False(t, r.Favorite)
	assert.NotZero(t, r.Created)
}

func TestAddGetDelete(t *testing.T) {
	store, _ := newTestStore(t)

	r := Recipe{ID: NewID(), Title: "Toast", Servings: 1, Created: Now()}
	require.NoError(t, store.Add(r))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toast", got.Title)

	require.NoError(t, store.Delete(r.ID))
	_, err = store.Get(r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(r.ID), ErrNotFound)
}

func TestUpdate(t *testing.T) {
	store, _ := newTestStore(t)

	r := Recipe{ID: NewID(), Title: "Before", Servings: 1, Created: Now()}
	require.NoError(t, store.Add(r))

	r.Title = "After"
	require.NoError(t, store.Update(r))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)

	assert.ErrorIs(t, store.Update(Recipe{ID: "missing"}), ErrNotFound)
}

func TestToggleFavoriteIsIdempotentPair(t *testing.T) {
	store, _ := newTestStore(t)

	on, err := store.ToggleFavorite("default-buldak")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := store.ToggleFavorite("default-buldak")
	require.NoError(t, err)
	assert.False(t, off)

	_, err = store.ToggleFavorite("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTags(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Add(Recipe{
		ID: NewID(), Title: "A", Servings: 1,
		Tags: []string{"Zesty", "quick", ""},
	}))

	tags := store.Tags()
	assert.Contains(t, tags, "zesty")
	assert.Contains(t, tags, "quick")
	assert.NotContains(t, tags, "")
	assert.IsIncreasing(t, tags)
}

func TestBackupRoundTripAppends(t *testing.T) {
	store, _ := newTestStore(t)
	before := len(store.All())

	data, err := store.ExportBackup()
	require.NoError(t, err)

	added, err := store.ImportBackup(data)
	require.NoError(t, err)
	assert.Equal(t, before, added)
	assert.Len(t, store.All(), before*2)
}

func TestImportBackupAllowsLargeServings(t *testing.T) {
	store, _ := newTestStore(t)

	// Serving counts above the session stepper's range are still
	// valid recipe data.
	raw := `[{
		"id": "recipe-paella",
		"title": "Party Paella",
		"servings": 150,
		"ingredients": [{"items": [{"qty": "2kg", "raw": null, "name": "rice"}]}]
	}]`
	added, err := store.ImportBackup([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	got, err := store.Get("recipe-paella")
	require.NoError(t, err)
	assert.Equal(t, 150, got.Servings)
}

func TestImportBackupRejectsMalformedInput(t *testing.T) {
	store, _ := newTestStore(t)
	before := len(store.All())

	_, err := store.ImportBackup([]byte("{not json"))
	assert.Error(t, err)

	// Not an array of recipes.
	_, err = store.ImportBackup([]byte(`{"entries": []}`))
	assert.Error(t, err)

	// Missing required fields.
	_, err = store.ImportBackup([]byte(`[{"title": ""}]`))
	assert.Error(t, err)

	// No partial state change.
	assert.Len(t, store.All(), before)
}

func TestSaveFailureKeepsInMemoryChange(t *testing.T) {
	store, kv := newTestStore(t)
	kv.FailWrites = true

	r := Recipe{ID: NewID(), Title: "Doomed", Servings: 1, Created: Now()}
	err := store.Add(r)
	assert.Error(t, err)

	// The in-memory collection already reflects the change.
	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", got.Title)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	kv := kvstore.NewMemory()

	store := NewStore(kv, slog.Default())
	require.NoError(t, store.Load())
	r := Recipe{ID: NewID(), Title: "Persisted", Servings: 1, Created: Now()}
	require.NoError(t, store.Add(r))

	reopened := NewStore(kv, slog.Default())
	require.NoError(t, reopened.Load())
	got, err := reopened.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
}
