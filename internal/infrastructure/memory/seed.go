package memory

import "github.com/lionscafe/storefront/internal/core/domain"

const imageBase = "https://images.unsplash.com/"
const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"

// seedMenu is the reference menu loaded into every new store.
func seedMenu() map[string]*domain.MenuItem {
	items := []*domain.MenuItem{
		{
			ID:          "1",
			Name:        "Artisan Croissants",
			Description: "Buttery, flaky pastries baked fresh daily",
			Price:       domain.MustMoney("4.50"),
			Category:    domain.CategoryBakery,
			ImageURL:    imageBase + "photo-1555507036-ab794f4421e3" + imageParams,
			Available:   true,
			Ingredients: []string{"flour", "butter", "yeast", "eggs"},
			Allergens:   []string{"gluten", "eggs", "dairy"},
		},
		{
			ID:          "2",
			Name:        "Signature Latte",
			Description: "Single-origin espresso with artistic foam",
			Price:       domain.MustMoney("5.25"),
			Category:    domain.CategoryCoffee,
			ImageURL:    imageBase + "photo-1509042239860-f550ce710b93" + imageParams,
			Available:   true,
			Ingredients: []string{"espresso", "milk"},
			Allergens:   []string{"dairy"},
		},
		{
			ID:          "3",
			Name:        "Sourdough Loaf",
			Description: "Traditional wild yeast fermentation",
			Price:       domain.MustMoney("8.00"),
			Category:    domain.CategoryBakery,
			ImageURL:    imageBase + "photo-1549931319-a545dcf3bc73" + imageParams,
			Available:   true,
			Ingredients: []string{"flour", "water", "salt", "sourdough starter"},
			Allergens:   []string{"gluten"},
		},
		{
			ID:          "4",
			Name:        "Gourmet Sandwich",
			Description: "Fresh ingredients on artisan bread",
			Price:       domain.MustMoney("12.50"),
			Category:    domain.CategoryMeals,
			ImageURL:    imageBase + "photo-1553909489-cd47e0ef937f" + imageParams,
			Available:   true,
			Ingredients: []string{"bread", "turkey", "cheese", "lettuce", "tomato"},
			Allergens:   []string{"gluten", "dairy"},
		},
		{
			ID:          "5",
			Name:        "French Pastries",
			Description: "Delicate macarons and éclairs",
			Price:       domain.MustMoney("6.75"),
			Category:    domain.CategoryBakery,
			ImageURL:    imageBase + "photo-1578985545062-69928b1d9587" + imageParams,
			Available:   true,
			Ingredients: []string{"almond flour", "eggs", "sugar", "cream"},
			Allergens:   []string{"eggs", "dairy", "nuts"},
		},
		{
			ID:          "6",
			Name:        "Premium Tea",
			Description: "Curated selection of fine teas",
			Price:       domain.MustMoney("4.25"),
			Category:    domain.CategoryBeverages,
			ImageURL:    imageBase + "photo-1556679343-c7306c1976bc" + imageParams,
			Available:   true,
			Ingredients: []string{"tea leaves", "water"},
			Allergens:   []string{},
		},
	}

	out := make(map[string]*domain.MenuItem, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out
}
