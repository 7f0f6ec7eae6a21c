package recipetext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasse/household-suite/pkg/cookbook"
)

const sampleText = `===RECIPE===
title: Creamy Ramen
description: A quick weeknight bowl.
tags: Quick, dinner, , KOREAN
prep_time: 5 minutes
cook_time: 5 minutes
total_time: 10 minutes
servings: 2

===INGREDIENTS===
1 packet | ramen noodles
30-45g | starchy noodle water

===INGREDIENTS:Garnishes===
- | sliced green onions

===INSTRUCTIONS===
1. Boil: Cook the noodles for 5 minutes.
2. Stir everything together and serve.
===END===`

func TestDecode(t *testing.T) {
	result := Decode(sampleText)
	r := result.Recipe

	assert.True(t, result.RecipeSection)
	assert.Equal(t, "Creamy Ramen", r.Title)
	assert.Equal(t, "A quick weeknight bowl.", r.Description)
	assert.Equal(t, []string{"quick", "dinner", "korean"}, r.Tags)
	assert.Equal(t, "5 minutes", r.PrepTime)
	assert.Equal(t, "10 minutes", r.TotalTime)
	assert.Equal(t, 2, r.Servings)
	assert.True(t, strings.HasPrefix(r.ID, "recipe-"))
	assert.NotZero(t, r.Created)

	require.Len(t, r.Ingredients, 2)
	assert.Empty(t, r.Ingredients[0].Label)
	require.Len(t, r.Ingredients[0].Items, 2)
	assert.Equal(t, "1 packet", r.Ingredients[0].Items[0].Qty)
	assert.Equal(t, "ramen noodles", r.Ingredients[0].Items[0].Name)
	require.NotNil(t, r.Ingredients[0].Items[1].Raw)
	assert.True(t, r.Ingredients[0].Items[1].Raw.IsRange)

	assert.Equal(t, "Garnishes", r.Ingredients[1].Label)
	require.Len(t, r.Ingredients[1].Items, 1)
	assert.Nil(t, r.Ingredients[1].Items[0].Raw)

	require.Len(t, r.Instructions, 2)
	assert.Equal(t, "Boil", r.Instructions[0].Title)
	assert.Equal(t, "Cook the noodles for 5 minutes.", r.Instructions[0].Body)
	assert.Empty(t, r.Instructions[1].Title)
	assert.Equal(t, "Stir everything together and serve.", r.Instructions[1].Body)

	assert.True(t, result.Importable())
}

func TestDecodeMissingRecipeSection(t *testing.T) {
	result := Decode("===INGREDIENTS===\n1 | flour\n===END===")

	assert.False(t, result.RecipeSection)
	assert.Empty(t, result.Recipe.Title)
	assert.Equal(t, 1, result.Recipe.Servings)
	require.Len(t, result.Recipe.Ingredients, 1)
	assert.False(t, result.Importable())
}

func TestDecodeFieldAbsentVersusEmpty(t *testing.T) {
	result := Decode("===RECIPE===\ntitle: Bread\ndescription:\n===END===")

	assert.True(t, result.Fields["title"])
	assert.True(t, result.Fields["description"])
	assert.False(t, result.Fields["tags"])
	assert.Empty(t, result.Recipe.Description)
}

func TestDecodeMissingFieldsReported(t *testing.T) {
	result := Decode("===RECIPE===\ntitle: X\n===INGREDIENTS===\n1 | egg\n===END===")

	assert.Equal(t,
		[]string{"cook_time", "description", "prep_time", "servings", "tags", "total_time"},
		result.Missing())

	full := Decode(sampleText)
	assert.Empty(t, full.Missing())

	// No RECIPE block: everything is missing.
	bare := Decode("===INGREDIENTS===\n1 | egg\n===END===")
	assert.Len(t, bare.Missing(), 7)
}

func TestDecodeUntitledFallback(t *testing.T) {
	result := Decode("===RECIPE===\nservings: 3\n===END===")

	assert.Equal(t, "Untitled Recipe", result.Recipe.Title)
	assert.Equal(t, 3, result.Recipe.Servings)
	assert.False(t, result.Importable())
}

func TestDecodeCaseInsensitiveMarkers(t *testing.T) {
	result := Decode("===recipe===\ntitle: Soup\n===ingredients===\n1l | stock\n===end===")

	assert.Equal(t, "Soup", result.Recipe.Title)
	require.Len(t, result.Recipe.Ingredients, 1)
}

func TestDecodeDropsMalformedLines(t *testing.T) {
	text := `===RECIPE===
title: Sparse
===INGREDIENTS===
no separator here
2 | eggs
===INSTRUCTIONS===
not a numbered line
1. Whisk the eggs.
===END===`
	result := Decode(text)

	require.Len(t, result.Recipe.Ingredients, 1)
	assert.Len(t, result.Recipe.Ingredients[0].Items, 1)
	require.Len(t, result.Recipe.Instructions, 1)
	assert.Equal(t, "Whisk the eggs.", result.Recipe.Instructions[0].Body)
}

func TestDecodeLateColonIsNotTitle(t *testing.T) {
	long := strings.Repeat("a", 60)
	result := Decode("===RECIPE===\ntitle: X\n===INSTRUCTIONS===\n1. " + long + ": tail\n===END===")

	require.Len(t, result.Recipe.Instructions, 1)
	assert.Empty(t, result.Recipe.Instructions[0].Title)
	assert.Equal(t, long+": tail", result.Recipe.Instructions[0].Body)
}

func TestDecodeNeverFailsOnGarbage(t *testing.T) {
	for _, text := range []string{"", "===END===", "random text\nwith lines", "===INGREDIENTS:==="} {
		result := Decode(text)
		require.NotNil(t, result)
		assert.False(t, result.Importable())
	}
}

func TestRoundTrip(t *testing.T) {
	original := Decode(sampleText).Recipe
	decoded := Decode(Encode(original)).Recipe

	assert.Equal(t, original.Title, decoded.Title)
	assert.Equal(t, original.Description, decoded.Description)
	assert.Equal(t, original.Tags, decoded.Tags)
	assert.Equal(t, original.PrepTime, decoded.PrepTime)
	assert.Equal(t, original.CookTime, decoded.CookTime)
	assert.Equal(t, original.TotalTime, decoded.TotalTime)
	assert.Equal(t, original.Servings, decoded.Servings)

	require.Len(t, decoded.Ingredients, len(original.Ingredients))
	for i, group := range original.Ingredients {
		assert.Equal(t, group.Label, decoded.Ingredients[i].Label)
		require.Len(t, decoded.Ingredients[i].Items, len(group.Items))
		for j, item := range group.Items {
			assert.Equal(t, item.Qty, decoded.Ingredients[i].Items[j].Qty)
			assert.Equal(t, item.Name, decoded.Ingredients[i].Items[j].Name)
		}
	}

	assert.Equal(t, original.Instructions, decoded.Instructions)
}

func TestParseIngredientBlock(t *testing.T) {
	text := `1 packet | noodles
15g | mayonnaise

===Garnishes===
- | green onions
not an ingredient line
===Empty Group===
`
	groups := ParseIngredientBlock(text)

	require.Len(t, groups, 2)
	assert.Empty(t, groups[0].Label)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Garnishes", groups[1].Label)
	assert.Len(t, groups[1].Items, 1)
}

func TestParseInstructionBlock(t *testing.T) {
	steps := ParseInstructionBlock("Boil: Cook for 5 minutes.\n\nServe immediately.\n")

	require.Len(t, steps, 2)
	assert.Equal(t, cookbook.InstructionStep{Title: "Boil", Body: "Cook for 5 minutes."}, steps[0])
	assert.Equal(t, cookbook.InstructionStep{Body: "Serve immediately."}, steps[1])
}

func TestBlockFormattersRoundTrip(t *testing.T) {
	groups := ParseIngredientBlock("1 | flour\n===Topping===\n2 | sugar")
	assert.Equal(t, groups, ParseIngredientBlock(FormatIngredientBlock(groups)))

	steps := ParseInstructionBlock("Mix: Combine everything.\nBake for an hour.")
	assert.Equal(t, steps, ParseInstructionBlock(FormatInstructionBlock(steps)))
}
