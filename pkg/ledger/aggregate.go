package ledger

import (
	"sort"
	"strings"
	"time"
)

// balanceEpsilon absorbs floating-point noise when comparing per-person
// totals.
const balanceEpsilon = 0.01

// Total is one person's aggregate within a period window.
type Total struct {
	Amount float64
	Count  int
}

// BalanceState labels a person relative to the group's extremes.
type BalanceState string

const (
	BalanceEven BalanceState = "even"
	BalanceOwed BalanceState = "owed"
	BalanceOwes BalanceState = "owes"
)

// Balance is the two-sided settlement hint for one person. Diff is the
// max-min spread, meaningful only when State is not BalanceEven.
type Balance struct {
	State BalanceState
	Diff  float64
}

// Aggregate groups entries by contributor within the period window.
// Every known person appears in the result, with a zero total if they
// contributed nothing; entries from unknown contributors still
// accumulate under their name.
func Aggregate(entries []Entry, p Period, people []string, now time.Time) map[string]Total {
	totals := make(map[string]Total, len(people))
	for _, name := range people {
		totals[name] = Total{}
	}

	for _, e := range FilterByPeriod(entries, p, now) {
		t := totals[e.Person]
		t.Amount += e.Amount
		t.Count++
		totals[e.Person] = t
	}

	return totals
}

// Balances derives the two-sided balance from per-person totals: the
// person(s) at the maximum are owed the max-min spread, the person(s)
// at the minimum owe it, everyone else is even. A spread within
// balanceEpsilon makes everyone even. This is deliberately not an
// N-way settlement; the tool targets a small household.
func Balances(totals map[string]Total) map[string]Balance {
	balances := make(map[string]Balance, len(totals))
	if len(totals) == 0 {
		return balances
	}

	first := true
	var max, min float64
	for _, t := range totals {
		if first {
			max, min = t.Amount, t.Amount
			first = false
			continue
		}
		if t.Amount > max {
			max = t.Amount
		}
		if t.Amount < min {
			min = t.Amount
		}
	}

	diff := max - min
	for name, t := range totals {
		b := Balance{State: BalanceEven}
		if diff > balanceEpsilon {
			switch t.Amount {
			case max:
				b = Balance{State: BalanceOwed, Diff: diff}
			case min:
				b = Balance{State: BalanceOwes, Diff: diff}
			}
		}
		balances[name] = b
	}
	return balances
}

// FilterEntries applies the period window and a case-insensitive
// search over contributor and note, then orders newest first. The
// source slice is never mutated.
func FilterEntries(entries []Entry, p Period, search string, now time.Time) []Entry {
	filtered := FilterByPeriod(entries, p, now)

	search = strings.ToLower(strings.TrimSpace(search))
	if search != "" {
		kept := filtered[:0]
		for _, e := range filtered {
			if strings.Contains(strings.ToLower(e.Person), search) ||
				strings.Contains(strings.ToLower(e.Note), search) {
				kept = append(kept, e)
			}
		}
		filtered = kept
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Datetime.After(filtered[j].Datetime)
	})
	return filtered
}

// SortedNames returns the totals' keys in alphabetical order, for
// stable display.
func SortedNames(totals map[string]Total) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
