package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/cookbook"
)

// cookCmd represents the cook command.
var cookCmd = &cobra.Command{
	Use:   "cook <recipe-id>",
	Short: "Interactive cooking session",
	Long: `Walk through a recipe interactively. Servings can be adjusted
at any time; checking off ingredients and steps requires cooking mode.
Check marks survive leaving and re-entering cooking mode.

Commands inside the session:
  +, -          adjust servings by one
  set <n>       set servings
  mode          toggle cooking mode
  i <g> <n>     check/uncheck ingredient n of group g (1-based)
  s <n>         check/uncheck step n (1-based)
  show          redraw the recipe
  quit          leave the session`,
	Args: cobra.ExactArgs(1),
	Run:  runCook,
}

func runCook(cmd *cobra.Command, args []string) {
	store, _, kv := openStore()
	defer kv.Close()

	recipe, err := store.Get(args[0])
	exitOnError(err, "failed to look up recipe")

	session := cookbook.NewSession(recipe)
	renderSession(session)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "+":
			session.AdjustServings(1)
		case "-":
			session.AdjustServings(-1)
		case "set":
			if len(fields) == 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					session.SetServings(n)
				}
			}
		case "mode":
			session.SetCookingMode(!session.CookingMode)
			if session.CookingMode {
				fmt.Println("Cooking mode on")
			} else {
				fmt.Println("Cooking mode off")
			}
			continue
		case "i":
			if !session.CookingMode {
				fmt.Println("Enter cooking mode first (type: mode)")
				continue
			}
			if len(fields) == 3 {
				g, gerr := strconv.Atoi(fields[1])
				n, nerr := strconv.Atoi(fields[2])
				if gerr == nil && nerr == nil {
					session.ToggleIngredient(g-1, n-1)
				}
			}
		case "s":
			if !session.CookingMode {
				fmt.Println("Enter cooking mode first (type: mode)")
				continue
			}
			if len(fields) == 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					session.ToggleStep(n - 1)
				}
			}
		case "show":
		case "quit", "q", "exit":
			return
		default:
			fmt.Printf("Unknown command %q\n", fields[0])
			continue
		}
		renderSession(session)
	}
}

func renderSession(s *cookbook.Session) {
	title := s.Recipe.Title
	if badge := s.MultiplierBadge(); badge != "" {
		title = fmt.Sprintf("%s  (%s)", title, badge)
	}
	fmt.Printf("\n%s — %d servings\n", title, s.Servings)

	multiplier := s.Multiplier()
	for gi, g := range s.Recipe.Ingredients {
		if g.Label != "" {
			fmt.Printf("[%s]\n", g.Label)
		}
		for ii, item := range g.Items {
			qty := item.Qty
			if item.Raw != nil {
				qty = item.Raw.Format(multiplier)
			}
			if qty == "" {
				qty = "-"
			}
			fmt.Printf("  %s %d.%d %s  %s\n", checkbox(s.IngredientChecked(gi, ii)), gi+1, ii+1, qty, item.Name)
		}
	}

	if len(s.Recipe.Instructions) > 0 {
		fmt.Println()
		for i, step := range s.Recipe.Instructions {
			text := step.Body
			if step.Title != "" {
				text = step.Title + ": " + text
			}
			fmt.Printf("  %s %d. %s\n", checkbox(s.StepChecked(i)), i+1, text)
		}
	}

	ingredients, steps := s.CheckedCount()
	if s.CookingMode {
		fmt.Printf("Cooking mode: %d ingredients, %d steps done\n", ingredients, steps)
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
