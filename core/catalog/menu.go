package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// coffee builds a coffee Item, deriving category, prep time and description
// from the recipe the way the menu board describes drinks.
func coffee(name string, water, regMilk, oatMilk, almondMilk, beans, sugar int64, price string) Item {
	ingredients := map[string]int64{}
	add := func(k string, v int64) {
		if v > 0 {
			ingredients[k] = v
		}
	}
	add("Water", water)
	add("Regular Milk", regMilk)
	add("Oat Milk", oatMilk)
	add("Almond Milk", almondMilk)
	add("Coffee Beans", beans)
	add("Sugar", sugar)

	category := coffeeCategory(name)
	return Item{
		ID:          ItemID(name),
		Name:        name,
		Kind:        KindCoffee,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		Ingredients: ingredients,
		PrepSeconds: coffeePrepSeconds(name, regMilk+oatMilk+almondMilk, beans),
		Description: coffeeDescription(category),
	}
}

func coffeeCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "latte"):
		return "latte"
	case strings.Contains(lower, "cappuccino"):
		return "cappuccino"
	case strings.Contains(lower, "expresso"):
		return "espresso"
	default:
		return "specialty"
	}
}

func coffeePrepSeconds(name string, milk, beans int64) int {
	secs := 30
	if milk > 0 {
		secs += 45
	}
	if beans > 20 {
		secs += 30
	}
	if strings.Contains(strings.ToLower(name), "large") {
		secs += 15
	}
	return secs
}

func coffeeDescription(category string) string {
	switch category {
	case "latte":
		return "Smooth espresso with steamed milk and a light foam layer"
	case "cappuccino":
		return "Rich espresso topped with thick, creamy foam"
	case "espresso":
		return "Pure, concentrated coffee shot with rich crema"
	default:
		return "Our signature coffee creation"
	}
}

func bakery(name, category, price string, prepSeconds int, description string) Item {
	return Item{
		ID:          ItemID(name),
		Name:        name,
		Kind:        KindFood,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		Ingredients: map[string]int64{name: 1},
		PrepSeconds: prepSeconds,
		Description: description,
	}
}

// DefaultCoffeeMenu returns the standard drink list.
func DefaultCoffeeMenu() []Item {
	return []Item{
		coffee("medium regularmilk hot latte", 160, 110, 0, 0, 14, 2, "4.50"),
		coffee("medium oatmilk hot latte", 160, 0, 110, 0, 14, 2, "4.70"),
		coffee("medium almondmilk hot latte", 160, 0, 0, 110, 14, 2, "4.70"),
		coffee("medium regularmilk ice latte", 170, 80, 0, 0, 14, 2, "4.50"),
		coffee("medium oatmilk ice latte", 170, 0, 80, 0, 14, 2, "4.70"),
		coffee("medium almondmilk ice latte", 170, 0, 0, 80, 14, 2, "4.70"),
		coffee("large regularmilk hot latte", 200, 150, 0, 0, 24, 3, "5.50"),
		coffee("large oatmilk hot latte", 200, 0, 150, 0, 24, 3, "5.70"),
		coffee("large almondmilk hot latte", 200, 0, 0, 150, 24, 3, "5.70"),
		coffee("large regularmilk ice latte", 210, 110, 0, 0, 24, 3, "5.50"),
		coffee("large oatmilk ice latte", 210, 0, 110, 0, 24, 3, "5.70"),
		coffee("large almondmilk ice latte", 210, 0, 0, 110, 24, 3, "5.70"),
		coffee("medium hot expresso", 50, 0, 0, 0, 24, 2, "4.70"),
		coffee("large hot expresso", 50, 0, 0, 0, 24, 3, "5.70"),
		coffee("medium regularmilk hot cappuccino", 200, 50, 0, 0, 18, 2, "4.70"),
		coffee("medium oatmilk hot cappuccino", 200, 0, 50, 0, 18, 2, "4.90"),
		coffee("medium almondmilk hot cappuccino", 200, 0, 0, 50, 18, 2, "4.90"),
		coffee("medium regularmilk ice cappuccino", 210, 50, 0, 0, 18, 2, "4.70"),
		coffee("medium oatmilk ice cappuccino", 210, 0, 50, 0, 18, 2, "4.90"),
		coffee("medium almondmilk ice cappuccino", 210, 0, 0, 50, 18, 2, "4.90"),
		coffee("large regularmilk hot cappuccino", 250, 70, 0, 0, 24, 3, "5.70"),
		coffee("large oatmilk hot cappuccino", 250, 0, 70, 0, 24, 3, "5.90"),
		coffee("large almondmilk hot cappuccino", 250, 0, 0, 70, 24, 3, "5.90"),
		coffee("large regularmilk ice cappuccino", 260, 50, 0, 0, 24, 3, "5.70"),
		coffee("large oatmilk ice cappuccino", 260, 0, 50, 0, 24, 3, "5.90"),
		coffee("large almondmilk ice cappuccino", 260, 0, 0, 50, 24, 3, "5.90"),
	}
}

// DefaultBakeryMenu returns the standard pastry case.
func DefaultBakeryMenu() []Item {
	items := []Item{
		bakery("Plain Bagel", "bagels", "3.00", 60, "Freshly baked bagel, toasted to perfection. Simple and satisfying."),
		bakery("Strawberry Cake", "desserts", "4.00", 30, "Moist vanilla cake layered with fresh strawberry filling and cream."),
		bakery("Sesameseed Bagel", "bagels", "3.50", 60, "Traditional bagel topped with toasted sesame seeds for extra flavor."),
		bakery("Honey Bun", "pastries", "4.00", 45, "Sweet, soft pastry glazed with golden honey. A morning favorite."),
		bakery("Cinnamon Roll", "pastries", "3.70", 90, "Warm, spiral pastry with cinnamon sugar filling and sweet glaze."),
		bakery("Croissant", "pastries", "3.00", 75, "Buttery, flaky French pastry with golden, crispy layers."),
	}
	// A cinnamon roll order plates two rolls.
	items[4].Ingredients = map[string]int64{"Cinnamon Roll": 2}
	return items
}
