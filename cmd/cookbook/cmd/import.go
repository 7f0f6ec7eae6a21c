package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/recipetext"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a recipe from shareable text",
	Long: `Import a recipe from the ===SECTION=== text format produced
by "cookbook export". Pass "-" to read from stdin. Missing sections
fall back to sensible defaults; the import is rejected only when the
text yields no title or no ingredients.

Example:
  cookbook import recipe.txt
  pbpaste | cookbook import -`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	var raw []byte
	var err error
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	exitOnError(err, "failed to read recipe text")

	result := recipetext.Decode(string(raw))
	if !result.Importable() {
		exitOnError(fmt.Errorf("text has no usable title or ingredients"), "not a recipe")
	}

	store, _, kv := openStore()
	defer kv.Close()

	recipe := result.Recipe
	recipe.ID = cookbook.NewID()
	recipe.Created = cookbook.Now()

	exitOnError(store.Add(recipe), "failed to add recipe")
	fmt.Printf("Imported %q (%s)\n", recipe.Title, recipe.ID)

	if missing := missingFields(result); len(missing) > 0 {
		fmt.Printf("Note: no %s in the source text, used defaults\n", strings.Join(missing, ", "))
	}
}

func missingFields(result *recipetext.DecodeResult) []string {
	if !result.RecipeSection {
		return []string{"RECIPE section"}
	}
	return result.Missing()
}
