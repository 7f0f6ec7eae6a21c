// Package quantity parses and scales human-style ingredient amounts.
package quantity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(\w*)$`)
	scalarRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.*)$`)
)

// Quantity is a parsed ingredient amount. For a range like "30-45g",
// Value holds the arithmetic mean of the bounds and Original keeps the
// raw literal so the bounds can be re-rendered individually after
// scaling. A Quantity is immutable once parsed; scaling produces a new
// rendered string and never mutates the receiver.
type Quantity struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	IsRange  bool    `json:"isRange,omitempty"`
	Original string  `json:"original,omitempty"`
}

// Parse interprets a quantity literal such as "250 g", "1.5" or
// "30-45g". Text without a numeric prefix ("to taste", "-", "a pinch")
// returns nil: the amount is simply not scalable, which is not an
// error.
func Parse(text string) *Quantity {
	text = strings.TrimSpace(text)

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		high, _ := strconv.ParseFloat(m[2], 64)
		return &Quantity{
			Value:    (low + high) / 2,
			Unit:     m[3],
			IsRange:  true,
			Original: text,
		}
	}

	if m := scalarRe.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		return &Quantity{Value: value, Unit: strings.TrimSpace(m[2])}
	}

	return nil
}

// Format renders the quantity scaled by multiplier. Scalars round
// half-away-from-zero at one decimal place and drop a trailing ".0".
// Ranges scale each original bound independently, so doubling "30-45g"
// yields "60-90g" rather than a collapsed "75g". A nil quantity
// renders as the "-" placeholder.
func (q *Quantity) Format(multiplier float64) string {
	if q == nil {
		return "-"
	}

	if q.IsRange {
		if m := rangeRe.FindStringSubmatch(q.Original); m != nil {
			low, _ := strconv.ParseFloat(m[1], 64)
			high, _ := strconv.ParseFloat(m[2], 64)
			return fmt.Sprintf("%s-%s%s",
				formatValue(round1(low*multiplier)),
				formatValue(round1(high*multiplier)),
				m[3])
		}
	}

	rendered := formatValue(round1(q.Value * multiplier))
	if q.Unit != "" {
		return rendered + q.Unit
	}
	return rendered
}

// round1 rounds half away from zero at one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatValue renders a rounded value without a trailing ".0".
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
