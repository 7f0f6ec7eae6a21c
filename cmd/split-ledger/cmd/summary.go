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

var summaryPeriod string

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-person totals and the settlement hint",
	Long: `Show each person's total within the period window, with a hint
on who owes whom. The hint compares only the highest and lowest
contributor; a household of two settles exactly, a larger one gets a
rough pointer.

Example:
  split-ledger summary
  split-ledger summary --period month`,
	Run: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryPeriod, "period", "all", "Window: all, today, week, month, ytd")
}

func runSummary(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	period := parsePeriod(summaryPeriod)
	totals := ledger.Aggregate(store.Entries(), period, store.People(), time.Now())
	if len(totals) == 0 {
		fmt.Println("No people yet. Add one with: split-ledger person add <name>")
		return
	}
	balances := ledger.Balances(totals)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERSON\tTOTAL\tENTRIES\tBALANCE")
	for _, name := range ledger.SortedNames(totals) {
		t := totals[name]
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			name, format.Currency(t.Amount, cfg.Currency), t.Count,
			balanceBadge(balances[name], cfg.Currency))
	}
	w.Flush()
}

func balanceBadge(b ledger.Balance, currency string) string {
	switch b.State {
	case ledger.BalanceOwed:
		return fmt.Sprintf("is owed %s", format.Currency(b.Diff, currency))
	case ledger.BalanceOwes:
		return fmt.Sprintf("owes %s", format.Currency(b.Diff, currency))
	default:
		return "even"
	}
}
