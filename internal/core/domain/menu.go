package domain

// Menu categories.
const (
	CategoryBakery    = "bakery"
	CategoryCoffee    = "coffee"
	CategoryBeverages = "beverages"
	CategoryMeals     = "meals"
)

// MenuItem is a sellable product.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Money    `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Available   bool     `json:"available"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *Money
	Category    *string
	ImageURL    *string
	Available   *bool
	Ingredients []string
	Allergens   []string
}

// Apply merges the patch into item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Available != nil {
		item.Available = *p.Available
	}
	if p.Ingredients != nil {
		item.Ingredients = append([]string(nil), p.Ingredients...)
	}
	if p.Allergens != nil {
		item.Allergens = append([]string(nil), p.Allergens...)
	}
}

// ValidCategory reports whether c is one of the menu categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryBakery, CategoryCoffee, CategoryBeverages, CategoryMeals:
		return true
	}
	return false
}
