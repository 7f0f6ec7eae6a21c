// Package recipetext implements the ===SECTION=== recipe text format:
// a line-oriented interchange format with a RECIPE field block,
// repeatable INGREDIENTS blocks (optionally labeled), and a numbered
// INSTRUCTIONS block terminated by ===END===.
//
// Decoding is deliberately permissive: malformed input never fails,
// it degrades to empty or default fields. Strict acceptance (reject an
// empty title or a recipe with no ingredients) is the caller's choice,
// via DecodeResult.
package recipetext

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/quantity"
)

// Field names recognized in the ===RECIPE=== block.
var recipeFields = []string{
	"title", "description", "tags",
	"prep_time", "cook_time", "total_time", "servings",
}

var (
	// Section markers are matched case-insensitively; an optional
	// ":<label>" suffix names an ingredient group.
	sectionRe = regexp.MustCompile(`(?mi)^===([A-Za-z]+)(?::([^=]*))?===[ \t]*$`)

	instructionRe = regexp.MustCompile(`^\d+\.\s*`)
	leadingIntRe  = regexp.MustCompile(`^\d+`)
)

// titleSeparatorLimit bounds how far into a cleaned instruction line a
// colon still counts as a title separator.
const titleSeparatorLimit = 50

// DecodeResult carries the decoded recipe plus enough structure for a
// caller to distinguish "field absent" from "field present but empty".
type DecodeResult struct {
	Recipe cookbook.Recipe

	// RecipeSection reports whether a ===RECIPE=== block was found.
	RecipeSection bool

	// Fields maps a recipe field name to whether it appeared in the
	// RECIPE block, even with an empty value.
	Fields map[string]bool
}

// Importable applies the strict acceptance rule used on import: the
// recipe must have a title and at least one ingredient group.
func (r *DecodeResult) Importable() bool {
	return r.Recipe.Title != "" && len(r.Recipe.Ingredients) > 0
}

// Missing returns the recipe fields that did not appear in the RECIPE
// block, in alphabetical order. Without a RECIPE block every field is
// missing.
func (r *DecodeResult) Missing() []string {
	missing := []string{}
	for _, field := range recipeFields {
		if !r.Fields[field] {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

// section is one ===NAME=== block with its body text.
type section struct {
	name  string // uppercased
	label string
	body  string
}

// splitSections locates every marker and slices the text between
// consecutive markers into section bodies.
func splitSections(text string) []section {
	matches := sectionRe.FindAllStringSubmatchIndex(text, -1)
	sections := make([]section, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		name := strings.ToUpper(text[m[2]:m[3]])
		label := ""
		if m[4] >= 0 {
			label = strings.TrimSpace(text[m[4]:m[5]])
		}
		sections = append(sections, section{
			name:  name,
			label: label,
			body:  text[m[1]:end],
		})
	}
	return sections
}

// Decode parses recipe text. It never fails: missing sections leave
// their fields at defaults (empty title, servings 1), unparseable
// lines are dropped. A fresh ID and creation time are assigned.
func Decode(text string) *DecodeResult {
	result := &DecodeResult{
		Recipe: cookbook.Recipe{
			ID:       cookbook.NewID(),
			Tags:     []string{},
			Servings: 1,
			Created:  cookbook.Now(),
		},
		Fields: make(map[string]bool),
	}

	sawInstructions := false
	for _, sec := range splitSections(text) {
		switch sec.name {
		case "RECIPE":
			if !result.RecipeSection {
				result.RecipeSection = true
				decodeFields(sec.body, result)
			}
		case "INGREDIENTS":
			group := cookbook.IngredientGroup{Label: sec.label, Items: []cookbook.IngredientLine{}}
			for _, line := range strings.Split(strings.TrimSpace(sec.body), "\n") {
				if !strings.Contains(line, "|") {
					continue
				}
				group.Items = append(group.Items, ParseIngredientLine(line))
			}
			result.Recipe.Ingredients = append(result.Recipe.Ingredients, group)
		case "INSTRUCTIONS":
			if sawInstructions {
				continue
			}
			sawInstructions = true
			for _, line := range strings.Split(strings.TrimSpace(sec.body), "\n") {
				line = strings.TrimSpace(line)
				if !instructionRe.MatchString(line) {
					continue
				}
				cleaned := instructionRe.ReplaceAllString(line, "")
				result.Recipe.Instructions = append(result.Recipe.Instructions, splitTitledStep(cleaned))
			}
		}
	}

	return result
}

// decodeFields extracts the "<field>: <value>" lines of the RECIPE
// block.
func decodeFields(body string, result *DecodeResult) {
	values := make(map[string]string)
	for _, field := range recipeFields {
		re := regexp.MustCompile(fmt.Sprintf(`(?mi)^%s:[ \t]*(.*)$`, field))
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		result.Fields[field] = true
		values[field] = strings.TrimSpace(m[1])
	}

	r := &result.Recipe
	r.Title = values["title"]
	if r.Title == "" {
		r.Title = "Untitled Recipe"
	}
	r.Description = values["description"]
	r.Tags = SplitTags(values["tags"])
	r.PrepTime = values["prep_time"]
	r.CookTime = values["cook_time"]
	r.TotalTime = values["total_time"]
	if m := leadingIntRe.FindString(values["servings"]); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			r.Servings = n
		}
	}
}

// SplitTags splits a comma-separated tag list: trimmed, lowercased,
// empties dropped.
func SplitTags(text string) []string {
	tags := []string{}
	for _, t := range strings.Split(text, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseIngredientLine splits "<quantity text> | <name>" on the first
// "|". A quantity of "-" (or any text without a numeric prefix) leaves
// the parsed quantity nil.
func ParseIngredientLine(line string) cookbook.IngredientLine {
	parts := strings.SplitN(line, "|", 2)
	qty := strings.TrimSpace(parts[0])
	if qty == "" {
		qty = "-"
	}
	name := ""
	if len(parts) > 1 {
		name = strings.TrimSpace(parts[1])
	}

	var raw *quantity.Quantity
	if qty != "-" {
		raw = quantity.Parse(qty)
	}
	return cookbook.IngredientLine{Qty: qty, Raw: raw, Name: name}
}

// splitTitledStep splits an instruction line into title and body. Only
// a colon within the first titleSeparatorLimit characters counts as a
// separator; otherwise the whole line is an untitled body.
func splitTitledStep(line string) cookbook.InstructionStep {
	idx := strings.Index(line, ":")
	if idx > 0 && idx < titleSeparatorLimit {
		return cookbook.InstructionStep{
			Title: strings.TrimSpace(line[:idx]),
			Body:  strings.TrimSpace(line[idx+1:]),
		}
	}
	return cookbook.InstructionStep{Body: strings.TrimSpace(line)}
}

// Encode renders a recipe in the interchange format. Decode(Encode(r))
// reproduces r's semantic content; whitespace is not guaranteed to
// round-trip.
func Encode(r cookbook.Recipe) string {
	var sb strings.Builder

	sb.WriteString("===RECIPE===\n")
	fmt.Fprintf(&sb, "title: %s\n", r.Title)
	fmt.Fprintf(&sb, "description: %s\n", r.Description)
	fmt.Fprintf(&sb, "tags: %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintf(&sb, "prep_time: %s\n", r.PrepTime)
	fmt.Fprintf(&sb, "cook_time: %s\n", r.CookTime)
	fmt.Fprintf(&sb, "total_time: %s\n", r.TotalTime)
	fmt.Fprintf(&sb, "servings: %d\n", r.Servings)
	sb.WriteString("\n")

	for _, group := range r.Ingredients {
		if group.Label != "" {
			fmt.Fprintf(&sb, "===INGREDIENTS:%s===\n", group.Label)
		} else {
			sb.WriteString("===INGREDIENTS===\n")
		}
		for _, item := range group.Items {
			fmt.Fprintf(&sb, "%s | %s\n", item.Qty, item.Name)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("===INSTRUCTIONS===\n")
	for i, step := range r.Instructions {
		if step.Title != "" {
			fmt.Fprintf(&sb, "%d. %s: %s\n", i+1, step.Title, step.Body)
		} else {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step.Body)
		}
	}
	sb.WriteString("===END===")

	return sb.String()
}
