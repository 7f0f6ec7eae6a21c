package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/recipetext"
)

var (
	addTitle        string
	addDescription  string
	addTags         string
	addPrep         string
	addCook         string
	addTotal        string
	addServings     int
	addIngredients  string
	addInstructions string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recipe from flags and block files",
	Long: `Create a recipe. Ingredients come from a block file: one
"qty | name" line per ingredient, with optional ===Group=== headers.
Instructions come from a plain text file, one step per line; a short
"Title: text" prefix becomes the step title.

Example:
  cookbook add --title "Miso Soup" --servings 2 \
    --ingredients-file ingredients.txt --instructions-file steps.txt`,
	Run: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Recipe title (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Short description")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	addCmd.Flags().StringVar(&addPrep, "prep", "", "Prep time, e.g. \"10 min\"")
	addCmd.Flags().StringVar(&addCook, "cook", "", "Cook time")
	addCmd.Flags().StringVar(&addTotal, "total", "", "Total time")
	addCmd.Flags().IntVar(&addServings, "servings", 2, "Base serving count")
	addCmd.Flags().StringVar(&addIngredients, "ingredients-file", "", "Ingredient block file (required)")
	addCmd.Flags().StringVar(&addInstructions, "instructions-file", "", "Instruction file")

	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("ingredients-file")
}

func runAdd(cmd *cobra.Command, args []string) {
	store, _, kv := openStore()
	defer kv.Close()

	ingredients := readIngredientFile(addIngredients)
	if len(ingredients) == 0 {
		exitOnError(fmt.Errorf("no ingredient lines in %s", addIngredients), "invalid ingredients")
	}

	var instructions []cookbook.InstructionStep
	if addInstructions != "" {
		raw, err := os.ReadFile(addInstructions)
		exitOnError(err, "failed to read instructions file")
		instructions = recipetext.ParseInstructionBlock(string(raw))
	}

	recipe := cookbook.Recipe{
		ID:           cookbook.NewID(),
		Title:        addTitle,
		Description:  addDescription,
		Tags:         recipetext.SplitTags(addTags),
		PrepTime:     addPrep,
		CookTime:     addCook,
		TotalTime:    addTotal,
		Servings:     normalizeServings(addServings),
		Created:      cookbook.Now(),
		Ingredients:  ingredients,
		Instructions: instructions,
	}

	exitOnError(store.Add(recipe), "failed to add recipe")
	fmt.Printf("Added %q (%s)\n", recipe.Title, recipe.ID)
}

func readIngredientFile(path string) []cookbook.IngredientGroup {
	raw, err := os.ReadFile(path)
	exitOnError(err, "failed to read ingredients file")
	return recipetext.ParseIngredientBlock(string(raw))
}
