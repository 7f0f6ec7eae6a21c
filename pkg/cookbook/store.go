package cookbook

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

// StorageKey holds the whole recipe collection as one JSON array.
const StorageKey = "cookbook_recipes"

// ErrNotFound is returned when no recipe has the requested ID.
var ErrNotFound = errors.New("recipe not found")

var validate = validator.New()

// Store owns the in-memory recipe collection and persists it through a
// kvstore.Store. Every mutation rewrites the whole collection; a
// failed write keeps the in-memory change and surfaces the error, so
// memory and disk can diverge until the next successful save.
type Store struct {
	kv      kvstore.Store
	log     *slog.Logger
	recipes []Recipe
}

// NewStore creates a store over the given persistence backend.
func NewStore(kv kvstore.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, log: log}
}

// Load reads the persisted collection. An empty store is seeded with
// the default recipe. Records from older versions are normalized:
// missing tags become empty, missing favorite false, missing created
// the current instant.
func (s *Store) Load() error {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	if !ok || len(data) == 0 {
		s.recipes = []Recipe{DefaultRecipe()}
		s.log.Debug("seeded empty store with default recipe")
		return s.save()
	}

	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return fmt.Errorf("failed to parse stored recipes: %w", err)
	}
	if len(recipes) == 0 {
		recipes = []Recipe{DefaultRecipe()}
	}

	for i := range recipes {
		if recipes[i].Tags == nil {
			recipes[i].Tags = []string{}
		}
		if recipes[i].Created == 0 {
			recipes[i].Created = Now()
		}
	}

	s.recipes = recipes
	s.log.Debug("loaded recipes", "count", len(s.recipes))
	return s.save()
}

// save rewrites the full collection under StorageKey.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize recipes: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	return nil
}

// All returns a copy of the collection in stored order.
func (s *Store) All() []Recipe {
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Get returns the recipe with the given ID.
func (s *Store) Get(id string) (Recipe, error) {
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return Recipe{}, ErrNotFound
}

// Add appends a recipe and persists the collection.
func (s *Store) Add(r Recipe) error {
	s.recipes = append(s.recipes, r)
	s.log.Info("recipe added", "id", r.ID, "title", r.Title)
	return s.save()
}

// Update replaces the recipe with the same ID.
func (s *Store) Update(r Recipe) error {
	for i := range s.recipes {
		if s.recipes[i].ID == r.ID {
			s.recipes[i] = r
			s.log.Info("recipe updated", "id", r.ID, "title", r.Title)
			return s.save()
		}
	}
	return ErrNotFound
}

// Delete removes the recipe with the given ID.
func (s *Store) Delete(id string) error {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			s.log.Info("recipe deleted", "id", id)
			return s.save()
		}
	}
	return ErrNotFound
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes[i].Favorite = !s.recipes[i].Favorite
			return s.recipes[i].Favorite, s.save()
		}
	}
	return false, ErrNotFound
}

// Tags returns the distinct lowercase tags across the collection,
// sorted alphabetically.
func (s *Store) Tags() []string {
	seen := make(map[string]bool)
	for _, r := range s.recipes {
		for _, t := range r.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				seen[t] = true
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ExportBackup serializes the full collection as indented JSON.
func (s *Store) ExportBackup() ([]byte, error) {
	data, err := json.MarshalIndent(s.recipes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// ImportBackup appends the recipes from a backup file to the existing
// collection and returns how many were added. Malformed input aborts
// with no state change.
func (s *Store) ImportBackup(data []byte) (int, error) {
	var imported []Recipe
	if err := json.Unmarshal(data, &imported); err != nil {
		return 0, fmt.Errorf("invalid backup file: %w", err)
	}
	for i, r := range imported {
		if err := validate.Struct(r); err != nil {
			return 0, fmt.Errorf("invalid recipe at index %d: %w", i, err)
		}
	}

	s.recipes = append(s.recipes, imported...)
	s.log.Info("backup imported", "added", len(imported))
	return len(imported), s.save()
}
