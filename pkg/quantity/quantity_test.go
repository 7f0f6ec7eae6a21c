package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Quantity
	}{
		{"integer with unit", "250g", &Quantity{Value: 250, Unit: "g"}},
		{"integer with spaced unit", "250 g", &Quantity{Value: 250, Unit: "g"}},
		{"decimal", "1.5", &Quantity{Value: 1.5, Unit: ""}},
		{"word unit", "1 packet", &Quantity{Value: 1, Unit: "packet"}},
		{"multi-word unit", "2 heaping tbsp", &Quantity{Value: 2, Unit: "heaping tbsp"}},
		{"range", "30-45g", &Quantity{Value: 37.5, Unit: "g", IsRange: true, Original: "30-45g"}},
		{"range with spaces", "30 - 45 g", &Quantity{Value: 37.5, Unit: "g", IsRange: true, Original: "30 - 45 g"}},
		{"decimal range", "1.5-2.5", &Quantity{Value: 2, Unit: "", IsRange: true, Original: "1.5-2.5"}},
		{"placeholder dash", "-", nil},
		{"descriptive text", "to taste", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		multiplier float64
		expected   string
	}{
		{"double grams", "250g", 2, "500g"},
		{"halve grams", "250g", 0.5, "125g"},
		{"identity", "250g", 1, "250g"},
		{"double range", "30-45g", 2, "60-90g"},
		{"halve range", "30-45g", 0.5, "15-22.5g"},
		{"range identity", "30-45g", 1, "30-45g"},
		{"fractional result", "1 packet", 1.5, "1.5packet"},
		{"no unit", "3", 2, "6"},
		{"rounding to one decimal", "1", 0.33, "0.3"},
		{"rounds half up", "1", 0.25, "0.3"},
		{"drops trailing zero", "4", 0.5, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Parse(tt.input)
			require.NotNil(t, q)
			assert.Equal(t, tt.expected, q.Format(tt.multiplier))
		})
	}
}

func TestFormatNil(t *testing.T) {
	var q *Quantity
	assert.Equal(t, "-", q.Format(2))
}

func TestFormatDoesNotMutate(t *testing.T) {
	q := Parse("30-45g")
	require.NotNil(t, q)
	before := *q
	q.Format(3)
	assert.Equal(t, before, *q)
}
