package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasse/household-suite/pkg/kvstore"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemory()
	s := NewStore(kv, nil)
	require.NoError(t, s.Load())
	return s, kv
}

func TestStorePeople(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddPerson("Ann"))
	require.NoError(t, s.AddPerson("Ben"))
	require.NoError(t, s.AddPerson("Ann")) // duplicate is a no-op
	assert.Equal(t, []string{"Ann", "Ben"}, s.People())
	assert.True(t, s.HasPerson("Ann"))
	assert.False(t, s.HasPerson("Cleo"))

	require.Error(t, s.AddPerson("   "))

	require.NoError(t, s.RemovePerson("Ann"))
	assert.Equal(t, []string{"Ben"}, s.People())
	require.NoError(t, s.RemovePerson("Ann")) // absent is a no-op
}

func TestStoreEntriesNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: now.Add(-time.Hour)}))
	require.NoError(t, s.AddEntry(Entry{ID: "e-2", Person: "Ben", Amount: 20, Datetime: now}))

	got := s.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "e-2", got[0].ID)
	assert.Equal(t, "e-1", got[1].ID)
}

func TestStoreAddEntryValidation(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now()

	assert.Error(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 0, Datetime: now}))
	assert.Error(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: -5, Datetime: now}))
	assert.Error(t, s.AddEntry(Entry{ID: "e-1", Person: "", Amount: 5, Datetime: now}))
	assert.Empty(t, s.Entries())
}

func TestStoreDeleteEntry(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: time.Now()}))

	require.NoError(t, s.DeleteEntry("e-1"))
	assert.Empty(t, s.Entries())
	assert.ErrorIs(t, s.DeleteEntry("e-1"), ErrNotFound)
}

func TestStoreClearKeepsPeople(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddPerson("Ann"))
	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: time.Now()}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Entries())
	assert.Equal(t, []string{"Ann"}, s.People())
}

func TestStorePersistence(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewStore(kv, nil)
	require.NoError(t, s.Load())
	require.NoError(t, s.AddPerson("Ann"))
	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: time.Now()}))

	reopened := NewStore(kv, nil)
	require.NoError(t, reopened.Load())
	assert.Equal(t, []string{"Ann"}, reopened.People())
	require.Len(t, reopened.Entries(), 1)
	assert.Equal(t, "e-1", reopened.Entries()[0].ID)
}

func TestStoreExportImportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Date(2025, time.March, 13, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.AddPerson("Ann"))
	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 12.5, Note: "groceries", Datetime: now}))

	raw, err := s.ExportBackup()
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "entries")
	assert.Contains(t, payload, "people")

	other, _ := newTestStore(t)
	require.NoError(t, other.AddPerson("Ben"))
	require.NoError(t, other.AddEntry(Entry{ID: "e-old", Person: "Ben", Amount: 1, Datetime: now}))

	// Import replaces the prior state wholesale.
	require.NoError(t, other.ImportBackup(raw))
	assert.Equal(t, []string{"Ann"}, other.People())
	require.Len(t, other.Entries(), 1)
	assert.Equal(t, "e-1", other.Entries()[0].ID)
}

func TestStoreImportSortsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	raw := []byte(`{
  "entries": [
    {"id": "e-old", "person": "Ann", "amount": 5, "note": "", "datetime": "2025-01-01T10:00:00Z"},
    {"id": "e-new", "person": "Ben", "amount": 7, "note": "", "datetime": "2025-03-01T10:00:00Z"}
  ],
  "people": ["Ann", "Ben"]
}`)
	require.NoError(t, s.ImportBackup(raw))
	got := s.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "e-new", got[0].ID)
	assert.Equal(t, "e-old", got[1].ID)
}

func TestStoreImportRejectsMalformed(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddPerson("Ann"))
	require.NoError(t, s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: time.Now()}))

	cases := []string{
		`not json`,
		`{"people": ["Ann"]}`, // entries missing
		`{"entries": [{"id": "e-2", "person": "", "amount": 3, "datetime": "2025-01-01T10:00:00Z"}], "people": []}`,
		`{"entries": [{"id": "e-2", "person": "Ben", "amount": -3, "datetime": "2025-01-01T10:00:00Z"}], "people": []}`,
	}
	for _, raw := range cases {
		assert.Error(t, s.ImportBackup([]byte(raw)), raw)
	}

	// State untouched after failed imports.
	assert.Equal(t, []string{"Ann"}, s.People())
	require.Len(t, s.Entries(), 1)
}

func TestStoreLoadEmptyBackend(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Entries())
	assert.Empty(t, s.People())
}

func TestStoreSaveFailureKeepsMemoryState(t *testing.T) {
	s, kv := newTestStore(t)
	kv.FailWrites = true

	err := s.AddEntry(Entry{ID: "e-1", Person: "Ann", Amount: 10, Datetime: time.Now()})
	assert.ErrorIs(t, err, kvstore.ErrWriteFailed)
	require.Len(t, s.Entries(), 1)
}
