// Package catalog owns the menu: every coffee and bakery item the shop can
// sell, with its price and the recipe the ledger deducts when it is sold.
// The catalog is fixed at construction and read-only afterwards.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindCoffee Kind = "coffee"
	KindFood   Kind = "food"
)

func ParseKind(v string) (Kind, error) {
	switch v {
	case string(KindCoffee):
		return KindCoffee, nil
	case string(KindFood):
		return KindFood, nil
	default:
		return "", errInvalidKind
	}
}

// Item is a value object. One sellable menu entry.
type Item struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Kind        Kind             `json:"kind"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Ingredients map[string]int64 `json:"ingredients"`
	PrepSeconds int              `json:"prepSeconds"`
	Description string           `json:"description"`
}

// ItemID derives the web-friendly identifier from an item name.
func ItemID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
