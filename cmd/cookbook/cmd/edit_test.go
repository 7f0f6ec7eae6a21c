package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/recipetext"
)

func TestEditFormRendersCurrentValues(t *testing.T) {
	r := cookbook.Recipe{
		ID:       "recipe-1",
		Title:    "Toast",
		Tags:     []string{"quick", "breakfast"},
		PrepTime: "2 minutes",
		Servings: 2,
		Ingredients: []cookbook.IngredientGroup{
			{Items: []cookbook.IngredientLine{{Qty: "2", Name: "bread slices"}}},
			{Label: "Topping", Items: []cookbook.IngredientLine{{Qty: "15g", Name: "butter"}}},
		},
		Instructions: []cookbook.InstructionStep{
			{Title: "Brown", Body: "Toast the bread until golden."},
			{Body: "Butter while hot."},
		},
	}

	form := editForm(r)
	assert.Contains(t, form, "title: Toast\n")
	assert.Contains(t, form, "tags: quick, breakfast\n")
	assert.Contains(t, form, "prep: 2 minutes\n")
	assert.Contains(t, form, "servings: 2\n")
	assert.Contains(t, form, "2 | bread slices")
	assert.Contains(t, form, "===Topping===\n15g | butter")
	assert.Contains(t, form, "Brown: Toast the bread until golden.")
	assert.Contains(t, form, "Butter while hot.")
}

func TestEditFormBlocksFeedBackIn(t *testing.T) {
	groups := []cookbook.IngredientGroup{
		{Items: []cookbook.IngredientLine{{Qty: "1", Raw: nil, Name: "egg"}}},
		{Label: "Sauce", Items: []cookbook.IngredientLine{{Qty: "15g", Raw: nil, Name: "mayonnaise"}}},
	}
	steps := []cookbook.InstructionStep{
		{Title: "Whisk", Body: "Beat the egg."},
		{Body: "Fold in the mayonnaise."},
	}

	// The printed blocks parse back to the same structure, ignoring
	// the re-parsed quantity.
	reGroups := recipetext.ParseIngredientBlock(recipetext.FormatIngredientBlock(groups))
	if assert.Len(t, reGroups, 2) {
		assert.Equal(t, "Sauce", reGroups[1].Label)
		assert.Equal(t, "mayonnaise", reGroups[1].Items[0].Name)
	}
	assert.Equal(t, steps, recipetext.ParseInstructionBlock(recipetext.FormatInstructionBlock(steps)))
}

func TestNormalizeServings(t *testing.T) {
	assert.Equal(t, 1, normalizeServings(0))
	assert.Equal(t, 1, normalizeServings(-3))
	assert.Equal(t, 1, normalizeServings(1))
	assert.Equal(t, 4, normalizeServings(4))
}
