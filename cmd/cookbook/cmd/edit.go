package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/recipetext"
)

var (
	editTitle        string
	editDescription  string
	editTags         string
	editPrep         string
	editCook         string
	editTotal        string
	editServings     int
	editIngredients  string
	editInstructions string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit <recipe-id>",
	Short: "Update fields of an existing recipe",
	Long: `Update a recipe. Only the flags given are changed; everything
else keeps its current value. File flags use the same block formats as
"cookbook add". With no flags at all, the current values are printed
in those same formats, ready to save, edit, and feed back in.

Example:
  cookbook edit recipe-1234
  cookbook edit recipe-1234 --servings 4 --tags "korean, spicy"
  cookbook edit recipe-1234 --ingredients-file ingredients.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "Recipe title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "Short description")
	editCmd.Flags().StringVar(&editTags, "tags", "", "Comma-separated tags (replaces the old set)")
	editCmd.Flags().StringVar(&editPrep, "prep", "", "Prep time")
	editCmd.Flags().StringVar(&editCook, "cook", "", "Cook time")
	editCmd.Flags().StringVar(&editTotal, "total", "", "Total time")
	editCmd.Flags().IntVar(&editServings, "servings", 0, "Base serving count")
	editCmd.Flags().StringVar(&editIngredients, "ingredients-file", "", "Ingredient block file (replaces all groups)")
	editCmd.Flags().StringVar(&editInstructions, "instructions-file", "", "Instruction file (replaces all steps)")
}

func runEdit(cmd *cobra.Command, args []string) {
	store, _, kv := openStore()
	defer kv.Close()

	recipe, err := store.Get(args[0])
	exitOnError(err, "failed to look up recipe")

	flags := cmd.Flags()
	edited := false
	for _, name := range editFlagNames {
		if flags.Changed(name) {
			edited = true
			break
		}
	}
	if !edited {
		fmt.Print(editForm(recipe))
		return
	}
	if flags.Changed("title") {
		recipe.Title = editTitle
	}
	if flags.Changed("description") {
		recipe.Description = editDescription
	}
	if flags.Changed("tags") {
		recipe.Tags = recipetext.SplitTags(editTags)
	}
	if flags.Changed("prep") {
		recipe.PrepTime = editPrep
	}
	if flags.Changed("cook") {
		recipe.CookTime = editCook
	}
	if flags.Changed("total") {
		recipe.TotalTime = editTotal
	}
	if flags.Changed("servings") {
		recipe.Servings = normalizeServings(editServings)
	}
	if flags.Changed("ingredients-file") {
		groups := readIngredientFile(editIngredients)
		if len(groups) == 0 {
			exitOnError(fmt.Errorf("no ingredient lines in %s", editIngredients), "invalid ingredients")
		}
		recipe.Ingredients = groups
	}
	if flags.Changed("instructions-file") {
		raw, err := os.ReadFile(editInstructions)
		exitOnError(err, "failed to read instructions file")
		recipe.Instructions = recipetext.ParseInstructionBlock(string(raw))
	}

	exitOnError(store.Update(recipe), "failed to update recipe")
	fmt.Printf("Updated %q (%s)\n", recipe.Title, recipe.ID)
}

// editFlagNames are the flags that mutate the recipe; inherited flags
// like --debug don't count as an edit.
var editFlagNames = []string{
	"title", "description", "tags", "prep", "cook", "total",
	"servings", "ingredients-file", "instructions-file",
}

// editForm renders a recipe's current values in the shapes the edit
// flags accept: the field values, then the ingredient and instruction
// blocks as the file flags expect them.
func editForm(r cookbook.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "title: %s\n", r.Title)
	fmt.Fprintf(&sb, "description: %s\n", r.Description)
	fmt.Fprintf(&sb, "tags: %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintf(&sb, "prep: %s\n", r.PrepTime)
	fmt.Fprintf(&sb, "cook: %s\n", r.CookTime)
	fmt.Fprintf(&sb, "total: %s\n", r.TotalTime)
	fmt.Fprintf(&sb, "servings: %d\n", r.Servings)
	sb.WriteString("\n# --ingredients-file\n")
	sb.WriteString(recipetext.FormatIngredientBlock(r.Ingredients))
	sb.WriteString("\n\n# --instructions-file\n")
	sb.WriteString(recipetext.FormatInstructionBlock(r.Instructions))
	sb.WriteString("\n")
	return sb.String()
}

// normalizeServings keeps stored serving counts positive; anything
// else falls back to a single serving.
func normalizeServings(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
