package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <recipe-id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		exitOnError(store.Delete(args[0]), "failed to delete recipe")
		fmt.Printf("Deleted %s\n", args[0])
	},
}

// favoriteCmd represents the favorite command.
var favoriteCmd = &cobra.Command{
	Use:   "favorite <recipe-id>",
	Short: "Toggle a recipe's favorite mark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		fav, err := store.ToggleFavorite(args[0])
		exitOnError(err, "failed to toggle favorite")
		if fav {
			fmt.Printf("%s is now a favorite\n", args[0])
		} else {
			fmt.Printf("%s is no longer a favorite\n", args[0])
		}
	},
}

// tagsCmd represents the tags command.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags in use",
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		tags := store.Tags()
		if len(tags) == 0 {
			fmt.Println("No tags in use.")
			return
		}
		for _, tag := range tags {
			fmt.Println(tag)
		}
	},
}
