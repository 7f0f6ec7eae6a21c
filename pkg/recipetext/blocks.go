package recipetext

import (
	"regexp"
	"strings"

	"github.com/avasse/household-suite/pkg/cookbook"
)

// groupHeaderRe matches the "===<label>===" group headers used in the
// edit-form ingredient block (no section name, just a label).
var groupHeaderRe = regexp.MustCompile(`^===(.+?)===$`)

// ParseIngredientBlock parses the edit-form ingredient text: plain
// "<qty> | <name>" lines, with "===<label>===" headers opening a new
// labeled group. Groups without any ingredient lines are dropped.
func ParseIngredientBlock(text string) []cookbook.IngredientGroup {
	var groups []cookbook.IngredientGroup
	current := cookbook.IngredientGroup{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := groupHeaderRe.FindStringSubmatch(line); m != nil {
			if len(current.Items) > 0 {
				groups = append(groups, current)
			}
			current = cookbook.IngredientGroup{Label: strings.TrimSpace(m[1])}
			continue
		}

		if strings.Contains(line, "|") {
			current.Items = append(current.Items, ParseIngredientLine(line))
		}
	}
	if len(current.Items) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// ParseInstructionBlock parses the edit-form instruction text: one
// step per non-empty line, with the same optional "<title>:" prefix
// rule as the interchange format (no leading numbers required).
func ParseInstructionBlock(text string) []cookbook.InstructionStep {
	var steps []cookbook.InstructionStep
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		steps = append(steps, splitTitledStep(line))
	}
	return steps
}

// FormatIngredientBlock renders ingredient groups in the edit-form
// shape, the inverse of ParseIngredientBlock.
func FormatIngredientBlock(groups []cookbook.IngredientGroup) string {
	var sb strings.Builder
	for _, group := range groups {
		if group.Label != "" {
			sb.WriteString("===" + group.Label + "===\n")
		}
		for _, item := range group.Items {
			sb.WriteString(item.Qty + " | " + item.Name + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatInstructionBlock renders steps in the edit-form shape, the
// inverse of ParseInstructionBlock.
func FormatInstructionBlock(steps []cookbook.InstructionStep) string {
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		if step.Title != "" {
			lines = append(lines, step.Title+": "+step.Body)
		} else {
			lines = append(lines, step.Body)
		}
	}
	return strings.Join(lines, "\n")
}
