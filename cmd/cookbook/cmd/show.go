package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
)

var showServings int

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show one recipe, optionally scaled",
	Long: `Show a recipe with its ingredients and instructions.

With --servings, quantities are scaled from the recipe's base serving
count and the multiplier is shown next to the title.

Example:
  cookbook show default-buldak
  cookbook show default-buldak --servings 4`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&showServings, "servings", 0, "Scale quantities to this serving count")
}

func runShow(cmd *cobra.Command, args []string) {
	store, _, kv := openStore()
	defer kv.Close()

	recipe, err := store.Get(args[0])
	exitOnError(err, "failed to look up recipe")

	session := cookbook.NewSession(recipe)
	if showServings > 0 {
		session.SetServings(showServings)
	}

	title := recipe.Title
	if badge := session.MultiplierBadge(); badge != "" {
		title = fmt.Sprintf("%s  (%s)", title, badge)
	}
	fmt.Println(title)
	if recipe.Favorite {
		fmt.Println("★ favorite")
	}
	if len(recipe.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(recipe.Tags, ", "))
	}
	if recipe.Description != "" {
		fmt.Println(recipe.Description)
	}
	fmt.Printf("Servings: %d", session.Servings)
	if session.Servings != recipe.Servings {
		fmt.Printf(" (base %d)", recipe.Servings)
	}
	fmt.Println()
	printTimes(recipe)

	multiplier := session.Multiplier()
	fmt.Println("\nIngredients:")
	for _, g := range recipe.Ingredients {
		if g.Label != "" {
			fmt.Printf("  [%s]\n", g.Label)
		}
		for _, item := range g.Items {
			qty := item.Qty
			if item.Raw != nil {
				qty = item.Raw.Format(multiplier)
			}
			if qty == "" {
				qty = "-"
			}
			fmt.Printf("  %s  %s\n", qty, item.Name)
		}
	}

	if len(recipe.Instructions) > 0 {
		fmt.Println("\nInstructions:")
		for i, step := range recipe.Instructions {
			if step.Title != "" {
				fmt.Printf("  %d. %s: %s\n", i+1, step.Title, step.Body)
			} else {
				fmt.Printf("  %d. %s\n", i+1, step.Body)
			}
		}
	}
}

func printTimes(r cookbook.Recipe) {
	if r.PrepTime != "" {
		fmt.Printf("Prep: %s\n", r.PrepTime)
	}
	if r.CookTime != "" {
		fmt.Printf("Cook: %s\n", r.CookTime)
	}
	if r.TotalTime != "" {
		fmt.Printf("Total: %s\n", r.TotalTime)
	}
}
