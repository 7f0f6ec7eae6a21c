package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// personCmd groups the roster subcommands.
var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage the people sharing expenses",
}

var personAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a person to the roster",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		exitOnError(store.AddPerson(args[0]), "failed to add person")
		fmt.Printf("Added %s\n", args[0])
	},
}

var personRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a person from the roster",
	Long: `Remove a person from the roster. Their past entries are kept
so historical totals stay intact.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		exitOnError(store.RemovePerson(args[0]), "failed to remove person")
		fmt.Printf("Removed %s\n", args[0])
	},
}

var personListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	Run: func(cmd *cobra.Command, args []string) {
		store, _, kv := openStore()
		defer kv.Close()

		people := store.People()
		if len(people) == 0 {
			fmt.Println("No people yet. Add one with: split-ledger person add <name>")
			return
		}
		for _, name := range people {
			fmt.Println(name)
		}
	},
}

func init() {
	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personRemoveCmd)
	personCmd.AddCommand(personListCmd)
}
