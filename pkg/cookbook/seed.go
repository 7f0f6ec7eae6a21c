package cookbook

import "github.com/avasse/household-suite/pkg/quantity"

// DefaultRecipe returns the recipe seeded into an empty collection so
// a first run has something to show.
func DefaultRecipe() Recipe {
	return Recipe{
		ID:          "default-buldak",
		Title:       "The Ultimate Creamy Buldak Ramen",
		Description: "This recipe transforms the classic fiery Samyang Buldak Ramen into a rich, carbonara-style dish. By creating an emulsified sauce with Kewpie mayonnaise and an egg yolk, you can tame the intense heat while enhancing the flavor, resulting in a luxuriously silky and addictive meal.",
		Tags:        []string{"quick", "dinner", "korean", "spicy", "comfort-food"},
		PrepTime:    "5 minutes",
		CookTime:    "5 minutes",
		TotalTime:   "10 minutes",
		Servings:    1,
		Created:     Now(),
		Ingredients: []IngredientGroup{
			{
				Items: []IngredientLine{
					{Qty: "1 packet", Raw: quantity.Parse("1 packet"), Name: "Samyang Buldak Ramen (any flavor)"},
					{Qty: "1 large", Raw: quantity.Parse("1 large"), Name: "egg yolk"},
					{Qty: "15g", Raw: quantity.Parse("15g"), Name: "Kewpie mayonnaise (about 1 tbsp)"},
					{Qty: "5g", Raw: quantity.Parse("5g"), Name: "toasted sesame oil (about 1 tsp)"},
					{Qty: "30-45g", Raw: quantity.Parse("30-45g"), Name: "boiling noodle water (about 2-3 tbsp)"},
				},
			},
			{
				Label: "Optional Garnishes",
				Items: []IngredientLine{
					{Qty: "-", Name: "Toasted seaweed snacks (Nori)"},
					{Qty: "-", Name: "Furikake seasoning"},
					{Qty: "-", Name: "A soft-boiled or fried egg"},
					{Qty: "-", Name: "Sliced green onions"},
					{Qty: "-", Name: "Steamed vegetables (like bok choy or mushrooms)"},
				},
			},
		},
		Instructions: []InstructionStep{
			{Title: "Prepare the Sauce Base", Body: "In a medium, heat-proof serving bowl, combine the egg yolk, Kewpie mayonnaise, toasted sesame oil, and the entire contents of the Buldak liquid sauce and powder/flake packets. Whisk everything together until smooth and well combined."},
			{Title: "Cook the Noodles", Body: "Bring a small pot of water to a rolling boil. Add the block of noodles and cook for 5 minutes, or until they reach your desired tenderness."},
			{Title: "Temper the Sauce", Body: "Just before draining the noodles, carefully scoop out approximately 45g (3 tbsp) of the starchy, boiling noodle water. While whisking the sauce mixture constantly, slowly drizzle the hot water into the bowl. This is the most crucial step: adding the hot water slowly while stirring prevents the egg yolk from scrambling and creates a silky, creamy emulsion."},
			{Title: "Combine and Serve", Body: "Immediately drain the cooked noodles thoroughly. Add the hot noodles directly into the bowl with the prepared sauce. Mix vigorously until the noodles are evenly coated in the creamy sauce."},
			{Title: "Garnish and Enjoy", Body: "Top with your favorite garnishes like crumbled seaweed snacks, a sprinkle of furikake, or a perfectly cooked egg. Serve immediately and enjoy the incredible flavor."},
		},
	}
}
