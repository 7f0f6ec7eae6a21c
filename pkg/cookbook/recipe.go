// Package cookbook holds the recipe collection: record types, the
// persistent store, the filter/sort pipeline, and cooking-session
// state.
package cookbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/avasse/household-suite/pkg/quantity"
)

// Recipe is a single recipe record. JSON field names follow the backup
// format written by earlier exports, so existing backup files import
// unchanged.
type Recipe struct {
	ID           string            `json:"id" validate:"required"`
	Title        string            `json:"title" validate:"required"`
	Description  string            `json:"description"`
	Tags         []string          `json:"tags"`
	PrepTime     string            `json:"prep_time"`
	CookTime     string            `json:"cook_time"`
	TotalTime    string            `json:"total_time"`
	Servings     int               `json:"servings" validate:"min=1"`
	Favorite     bool              `json:"favorite"`
	Created      int64             `json:"created"` // Unix milliseconds
	Ingredients  []IngredientGroup `json:"ingredients" validate:"min=1"`
	Instructions []InstructionStep `json:"instructions"`
}

// IngredientGroup is an ordered list of ingredient lines under an
// optional label. An empty label denotes the default, unnamed group.
type IngredientGroup struct {
	Label string           `json:"group,omitempty"`
	Items []IngredientLine `json:"items"`
}

// IngredientLine pairs the display quantity text with its parsed form.
// Raw is nil when the quantity text was a placeholder ("-", "to
// taste"); scaling is then a no-op and the placeholder renders as-is.
type IngredientLine struct {
	Qty  string             `json:"qty"`
	Raw  *quantity.Quantity `json:"raw"`
	Name string             `json:"name"`
}

// InstructionStep is a single numbered step. Title may be empty for an
// untitled step.
type InstructionStep struct {
	Title string `json:"title"`
	Body  string `json:"text"`
}

// NewID returns a fresh recipe ID.
func NewID() string {
	return "recipe-" + uuid.NewString()
}

// Now returns the current instant in the Created field's unit.
func Now() int64 {
	return time.Now().UnixMilli()
}
