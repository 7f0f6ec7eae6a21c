package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/recipetext"
)

var exportOut string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <recipe-id>",
	Short: "Export a recipe as shareable text",
	Long: `Export one recipe in the ===SECTION=== text format, suitable
for sharing and for re-import with "cookbook import". Writes to stdout
unless --out is given.

Example:
  cookbook export default-buldak
  cookbook export default-buldak --out buldak.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) {
	store, _, kv := openStore()
	defer kv.Close()

	recipe, err := store.Get(args[0])
	exitOnError(err, "failed to look up recipe")

	text := recipetext.Encode(recipe)
	if exportOut == "" {
		fmt.Println(text)
		return
	}
	exitOnError(os.WriteFile(exportOut, []byte(text+"\n"), 0644), "failed to write export file")
	fmt.Printf("Exported %q to %s\n", recipe.Title, exportOut)
}
