package inventory

import "github.com/shopspring/decimal"

func ingredient(name string, max, threshold int64, unit, pricePerUnit string) IngredientConfig {
	return IngredientConfig{
		Name:         name,
		MaxCapacity:  max,
		LowThreshold: threshold,
		InitialStock: max,
		Unit:         unit,
		PricePerUnit: decimal.RequireFromString(pricePerUnit),
	}
}

// DefaultConfig is the stock economy the shop opens with. Every ingredient
// starts at capacity.
func DefaultConfig() Config {
	return Config{
		Ingredients: []IngredientConfig{
			ingredient("Water", 100000000, 1000000, "ml", "0.001"),
			ingredient("Oat Milk", 700, 100, "ml", "0.008"),
			ingredient("Regular Milk", 800, 100, "ml", "0.006"),
			ingredient("Almond Milk", 700, 100, "ml", "0.009"),
			ingredient("Sugar", 100, 20, "g", "0.05"),
			ingredient("Coffee Beans", 100, 20, "g", "0.15"),
			ingredient("Plain Bagel", 4, 1, "units", "1.50"),
			ingredient("Strawberry Cake", 3, 1, "units", "2.00"),
			ingredient("Sesameseed Bagel", 4, 1, "units", "1.75"),
			ingredient("Honey Bun", 2, 1, "units", "2.50"),
			ingredient("Cinnamon Roll", 2, 1, "units", "2.25"),
			ingredient("Croissant", 4, 1, "units", "1.50"),
		},
	}
}
