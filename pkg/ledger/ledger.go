// Package ledger implements the shared-expense tracker: a roster of
// people, their expense entries, period-windowed aggregation, and the
// two-sided balance derivation.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single expense record. JSON field names follow the backup
// format written by earlier exports.
type Entry struct {
	ID       string    `json:"id" validate:"required"`
	Person   string    `json:"person" validate:"required"`
	Amount   float64   `json:"amount" validate:"gt=0"`
	Note     string    `json:"note"`
	Datetime time.Time `json:"datetime" validate:"required"`
}

// Backup is the export/import payload: the whole collection plus the
// roster.
type Backup struct {
	Entries []Entry  `json:"entries" validate:"dive"`
	People  []string `json:"people"`
}

// NewEntryID returns a fresh entry ID.
func NewEntryID() string {
	return "e-" + uuid.NewString()
}
