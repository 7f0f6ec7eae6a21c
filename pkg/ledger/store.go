package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avasse/household-suite/pkg/kvstore"
)

// Storage keys for the persisted ledger state.
const (
	EntriesKey = "ledger_entries"
	PeopleKey  = "ledger_people"
)

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("entry not found")

var validate = validator.New()

// Store keeps the ledger in memory and persists it through a key-value
// backend. Entries are held newest-first.
type Store struct {
	kv  kvstore.Store
	log *slog.Logger

	entries []Entry
	people  []string
}

// NewStore wraps the given backend. Call Load before using the store.
func NewStore(kv kvstore.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, log: log}
}

// Load reads entries and people from the backend. Missing keys leave the
// store empty.
func (s *Store) Load() error {
	raw, ok, err := s.kv.Get(EntriesKey)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.entries); err != nil {
			return fmt.Errorf("failed to parse entries: %w", err)
		}
	}

	raw, ok, err = s.kv.Get(PeopleKey)
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.people); err != nil {
			return fmt.Errorf("failed to parse people: %w", err)
		}
	}

	s.log.Debug("ledger loaded", "entries", len(s.entries), "people", len(s.people))
	return nil
}

func (s *Store) saveEntries() error {
	raw, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.kv.Set(EntriesKey, raw); err != nil {
		s.log.Error("failed to persist entries", "error", err)
		return err
	}
	return nil
}

func (s *Store) savePeople() error {
	raw, err := json.MarshalIndent(s.people, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode people: %w", err)
	}
	if err := s.kv.Set(PeopleKey, raw); err != nil {
		s.log.Error("failed to persist people", "error", err)
		return err
	}
	return nil
}

// Entries returns a copy of all entries, newest-first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// People returns a copy of the registered people in insertion order.
func (s *Store) People() []string {
	out := make([]string, len(s.people))
	copy(out, s.people)
	return out
}

// HasPerson reports whether name is registered.
func (s *Store) HasPerson(name string) bool {
	for _, p := range s.people {
		if p == name {
			return true
		}
	}
	return false
}

// AddPerson registers a new person. Adding an existing name is a no-op.
func (s *Store) AddPerson(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("person name is required")
	}
	if s.HasPerson(name) {
		return nil
	}
	s.people = append(s.people, name)
	return s.savePeople()
}

// RemovePerson unregisters a person. Their entries are kept so that
// historical totals stay intact.
func (s *Store) RemovePerson(name string) error {
	for i, p := range s.people {
		if p == name {
			s.people = append(s.people[:i], s.people[i+1:]...)
			return s.savePeople()
		}
	}
	return nil
}

// AddEntry validates e and prepends it, keeping entries newest-first.
func (s *Store) AddEntry(e Entry) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	s.entries = append([]Entry{e}, s.entries...)
	return s.saveEntries()
}

// DeleteEntry removes the entry with the given id.
func (s *Store) DeleteEntry(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.saveEntries()
		}
	}
	return ErrNotFound
}

// Clear removes all entries but keeps the people list.
func (s *Store) Clear() error {
	s.entries = nil
	return s.saveEntries()
}

// ExportBackup serializes the full ledger state.
func (s *Store) ExportBackup() ([]byte, error) {
	b := Backup{Entries: s.entries, People: s.people}
	if b.Entries == nil {
		b.Entries = []Entry{}
	}
	if b.People == nil {
		b.People = []string{}
	}
	return json.MarshalIndent(b, "", "  ")
}

// ImportBackup replaces the ledger state with the decoded backup. The
// current state is untouched when the payload does not validate.
func (s *Store) ImportBackup(raw []byte) error {
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if b.Entries == nil {
		return errors.New("invalid backup file: missing entries")
	}
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}

	entries := make([]Entry, len(b.Entries))
	copy(entries, b.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Datetime.After(entries[j].Datetime)
	})

	people := b.People
	if people == nil {
		people = []string{}
	}

	s.entries = entries
	s.people = people
	if err := s.saveEntries(); err != nil {
		return err
	}
	return s.savePeople()
}
