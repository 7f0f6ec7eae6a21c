package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/format"
	"github.com/avasse/household-suite/pkg/ledger"
)

var (
	addPerson string
	addAmount float64
	addNote   string
	addWhen   string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Long: `Record an expense for a person on the roster. The timestamp
defaults to now; --when accepts RFC 3339 or "2006-01-02 15:04".

Example:
  split-ledger add --person Ann --amount 12.50 --note groceries
  split-ledger add --person Ben --amount 40 --when "2025-03-01 18:30"`,
	Run: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addPerson, "person", "", "Who paid (required)")
	addCmd.Flags().Float64Var(&addAmount, "amount", 0, "Amount paid, must be positive (required)")
	addCmd.Flags().StringVar(&addNote, "note", "", "What the expense was for")
	addCmd.Flags().StringVar(&addWhen, "when", "", "Timestamp (default now)")

	addCmd.MarkFlagRequired("person")
	addCmd.MarkFlagRequired("amount")
}

func runAdd(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	if !store.HasPerson(addPerson) {
		exitOnError(fmt.Errorf("%q is not on the roster, add them first", addPerson), "unknown person")
	}

	when := time.Now()
	if addWhen != "" {
		var err error
		when, err = parseWhen(addWhen)
		exitOnError(err, "invalid --when value")
	}

	entry := ledger.Entry{
		ID:       ledger.NewEntryID(),
		Person:   addPerson,
		Amount:   addAmount,
		Note:     addNote,
		Datetime: when,
	}
	exitOnError(store.AddEntry(entry), "failed to record expense")
	fmt.Printf("Recorded %s by %s (%s)\n", format.Currency(entry.Amount, cfg.Currency), entry.Person, entry.ID)
}

func parseWhen(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
