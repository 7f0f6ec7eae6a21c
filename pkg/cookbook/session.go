package cookbook

import (
	"fmt"
)

// Servings bounds for a session. Values outside the range are ignored
// rather than clamped, matching the stepper behavior.
const (
	MinServings = 1
	MaxServings = 100
)

// Session tracks the transient state of viewing or cooking one recipe:
// the servings adjustment and, while cooking mode is on, which
// ingredients and steps have been checked off. It holds no reference
// back into the store; the recipe snapshot is copied in.
type Session struct {
	Recipe       Recipe
	BaseServings int
	Servings     int
	CookingMode  bool
	checkedItems map[string]bool
	checkedSteps map[int]bool
}

// NewSession starts a session over a recipe snapshot at its base
// servings.
func NewSession(r Recipe) *Session {
	base := r.Servings
	if base < MinServings {
		base = MinServings
	}
	return &Session{
		Recipe:       r,
		BaseServings: base,
		Servings:     base,
		checkedItems: make(map[string]bool),
		checkedSteps: make(map[int]bool),
	}
}

// AdjustServings shifts the serving count by delta, ignoring moves
// outside [MinServings, MaxServings].
func (s *Session) AdjustServings(delta int) {
	s.SetServings(s.Servings + delta)
}

// SetServings sets the serving count, ignoring values outside the
// allowed range.
func (s *Session) SetServings(n int) {
	if n >= MinServings && n <= MaxServings {
		s.Servings = n
	}
}

// Multiplier is the scale factor applied to ingredient quantities.
func (s *Session) Multiplier() float64 {
	return float64(s.Servings) / float64(s.BaseServings)
}

// MultiplierBadge renders the "×" badge, empty at exactly 1.
func (s *Session) MultiplierBadge() string {
	m := s.Multiplier()
	if m == 1 {
		return ""
	}
	return fmt.Sprintf("%.2f×", m)
}

// SetCookingMode switches cooking mode. Turning it off keeps the
// checked sets so progress survives a brief toggle.
func (s *Session) SetCookingMode(on bool) {
	s.CookingMode = on
}

// ToggleIngredient flips the checkmark on one ingredient line. A no-op
// outside cooking mode.
func (s *Session) ToggleIngredient(group, item int) {
	if !s.CookingMode {
		return
	}
	key := ingredientKey(group, item)
	if s.checkedItems[key] {
		delete(s.checkedItems, key)
	} else {
		s.checkedItems[key] = true
	}
}

// ToggleStep flips the checkmark on one instruction step. A no-op
// outside cooking mode.
func (s *Session) ToggleStep(index int) {
	if !s.CookingMode {
		return
	}
	if s.checkedSteps[index] {
		delete(s.checkedSteps, index)
	} else {
		s.checkedSteps[index] = true
	}
}

// IngredientChecked reports whether an ingredient line is checked off.
func (s *Session) IngredientChecked(group, item int) bool {
	return s.checkedItems[ingredientKey(group, item)]
}

// StepChecked reports whether an instruction step is checked off.
func (s *Session) StepChecked(index int) bool {
	return s.checkedSteps[index]
}

// CheckedCount returns the number of checked ingredients and steps.
func (s *Session) CheckedCount() (ingredients, steps int) {
	return len(s.checkedItems), len(s.checkedSteps)
}

func ingredientKey(group, item int) string {
	return fmt.Sprintf("%d-%d", group, item)
}
