package ledger

import "time"

// Period selects a time window over entries, anchored at a
// caller-supplied instant.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week" // week starts Monday
	PeriodMonth Period = "month"
	PeriodYTD   Period = "ytd"
)

// Valid reports whether p names a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth, PeriodYTD:
		return true
	}
	return false
}

// Start returns the window's inclusive start for the given instant.
// ok is false for PeriodAll (and unknown periods), which have no
// cutoff.
func (p Period) Start(now time.Time) (cutoff time.Time, ok bool) {
	switch p {
	case PeriodToday:
		return startOfDay(now), true
	case PeriodWeek:
		day := startOfDay(now)
		back := (int(day.Weekday()) + 6) % 7 // Monday start
		return day.AddDate(0, 0, -back), true
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case PeriodYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// FilterByPeriod returns the entries inside the window: everything
// strictly before the cutoff is excluded. The source slice is never
// mutated.
func FilterByPeriod(entries []Entry, p Period, now time.Time) []Entry {
	cutoff, ok := p.Start(now)
	if !ok {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Datetime.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
