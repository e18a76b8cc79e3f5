package seed

// DefaultCatalog returns the built-in moods and recipes.
func DefaultCatalog() Catalog {
	return Catalog{
		Moods: []string{"happy", "sad", "stressed", "tired", "excited", "relaxed"},
		Recipes: []RecipeSeed{
			{
				Title:        "Lemon Ricotta Pancakes",
				Description:  "Fluffy pancakes brightened with lemon zest.",
				Tags:         []string{"breakfast", "sweet"},
				Instructions: "Whisk ricotta, eggs and zest. Fold in flour and milk. Cook on a buttered griddle until golden.",
				Moods:        []string{"happy", "excited"},
			},
			{
				Title:        "Creamy Tomato Soup",
				Description:  "A smooth soup for grey days.",
				Tags:         []string{"soup", "vegetarian", "comfort"},
				Instructions: "Soften onion and garlic, add tomatoes and stock, simmer 20 minutes, blend with cream.",
				Moods:        []string{"sad", "tired"},
			},
			{
				Title:        "Mac and Cheese",
				Description:  "Baked macaroni in a sharp cheddar sauce.",
				Tags:         []string{"pasta", "comfort"},
				Instructions: "Cook macaroni. Make a roux, whisk in milk and cheddar, combine and bake until bubbling.",
				Moods:        []string{"sad", "stressed"},
			},
			{
				Title:        "Chamomile Honey Oats",
				Description:  "Warm oats steeped with chamomile.",
				Tags:         []string{"breakfast", "calming"},
				Instructions: "Steep chamomile in hot milk, strain, cook oats in the milk and finish with honey.",
				Moods:        []string{"stressed", "relaxed"},
			},
			{
				Title:        "Ten Minute Egg Fried Rice",
				Description:  "Quick fried rice from leftovers.",
				Tags:         []string{"quick", "rice"},
				Instructions: "Fry cold rice in a hot wok, push aside, scramble eggs, toss with soy sauce and scallions.",
				Moods:        []string{"tired"},
			},
			{
				Title:        "Spicy Fish Tacos",
				Description:  "Crisp fish with chipotle slaw.",
				Tags:         []string{"mexican", "spicy"},
				Instructions: "Season and pan-fry fish, mix cabbage with chipotle mayo, assemble in warm tortillas.",
				Moods:        []string{"excited", "happy"},
			},
			{
				Title:        "Caprese Salad",
				Description:  "Tomato, mozzarella and basil.",
				Tags:         []string{"salad", "vegetarian", "no-cook"},
				Instructions: "Slice tomatoes and mozzarella, layer with basil, dress with olive oil and salt.",
				Moods:        []string{"relaxed", "happy"},
			},
		},
	}
}
