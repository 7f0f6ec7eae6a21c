package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/format"
	"github.com/avasse/household-suite/pkg/ledger"
)

var (
	listPeriod string
	listSearch string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, newest first",
	Long: `List expenses within a period window, optionally filtered by
a search over person and note.

Example:
  split-ledger list
  split-ledger list --period week --search groceries`,
	Run: runList,
}

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete one expense entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		exitOnError(store.DeleteEntry(args[0]), "failed to delete entry")
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	listCmd.Flags().StringVar(&listPeriod, "period", "all", "Window: all, today, week, month, ytd")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Match against person and note")
}

func runList(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	period := parsePeriod(listPeriod)
	now := time.Now()
	entries := ledger.FilterEntries(store.Entries(), period, listSearch, now)
	if len(entries) == 0 {
		fmt.Println("No expenses found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tPERSON\tAMOUNT\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, format.RelativeDate(e.Datetime, now), e.Person,
			format.Currency(e.Amount, cfg.Currency), e.Note)
	}
	w.Flush()
}
