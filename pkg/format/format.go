// Package format renders amounts and timestamps for terminal output.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders amount with the symbol for the given ISO 4217 code.
// Unknown codes fall back to a plain "12.34 XYZ" rendering.
func Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// RelativeDate renders t relative to now: same calendar day as "Today",
// the day before as "Yesterday", everything else as an absolute date.
func RelativeDate(t, now time.Time) string {
	clock := t.Format("15:04")
	switch {
	case sameDay(t, now):
		return "Today at " + clock
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday at " + clock
	default:
		return t.Format("Jan 2, 2006 at 15:04")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
