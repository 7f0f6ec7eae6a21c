package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
)

var (
	listSearch    string
	listTag       string
	listFavorites bool
	listSort      string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	Long: `List recipes, optionally filtered and sorted.

Example:
  cookbook list
  cookbook list --search noodles --favorites
  cookbook list --tag korean --sort time-asc`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Match against title, tags, and ingredient names")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Keep only recipes carrying this tag")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Keep only favorites")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order: name-asc, name-desc, date-desc, date-asc, time-asc")
}

func runList(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	sortKey := listSort
	if sortKey == "" {
		sortKey = cfg.DefaultSort
	}

	recipes := cookbook.Filter(store.All(), cookbook.Query{
		Search:        listSearch,
		Tag:           listTag,
		FavoritesOnly: listFavorites,
		Sort:          cookbook.SortKey(sortKey),
	})

	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSERVINGS\tTOTAL\tTAGS")
	for _, r := range recipes {
		title := r.Title
		if r.Favorite {
			title = "★ " + title
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.ID, title, r.Servings, r.TotalTime, strings.Join(r.Tags, ", "))
	}
	w.Flush()
}
