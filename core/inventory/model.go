// Package inventory is the single source of truth for ingredient stock. It
// owns quantities, capacities and thresholds, prices refills, and applies
// deductions for fulfilled orders. All quantities hold the invariant
// 0 <= CurrentStock <= MaxCapacity.
package inventory

import (
	"github.com/shopspring/decimal"
)

// IngredientConfig is one row of the shop economy: capacity, threshold and
// unit price for a single ingredient. The economy is configuration handed to
// the ledger at construction, never mutated at runtime.
type IngredientConfig struct {
	Name         string          `json:"name"         yaml:"name"`
	MaxCapacity  int64           `json:"maxCapacity"  yaml:"maxCapacity"`
	LowThreshold int64           `json:"lowThreshold" yaml:"lowThreshold"`
	InitialStock int64           `json:"initialStock" yaml:"initialStock"`
	Unit         string          `json:"unit"         yaml:"unit"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" yaml:"pricePerUnit"`
}

// Config is the full economy table for a ledger.
type Config struct {
	Ingredients []IngredientConfig `json:"ingredients" yaml:"ingredients"`
}

// Ingredient is an entity. Current stock for one named ingredient.
type Ingredient struct {
	Name         string          `json:"name"`
	CurrentStock int64           `json:"currentStock"`
	MaxCapacity  int64           `json:"maxCapacity"`
	LowThreshold int64           `json:"lowThreshold"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// StockStatus is derived from stock levels on every read, never stored.
type StockStatus string

const (
	StatusOut     StockStatus = "out"
	StatusLow     StockStatus = "low"
	StatusWarning StockStatus = "warning"
	StatusGood    StockStatus = "good"
)

// StatusOf derives the stock status for an ingredient: out at zero, low at
// or under the threshold, warning under 30% of capacity, good otherwise.
func StatusOf(ing Ingredient) StockStatus {
	switch {
	case ing.CurrentStock <= 0:
		return StatusOut
	case ing.CurrentStock <= ing.LowThreshold:
		return StatusLow
	case float64(ing.CurrentStock)/float64(ing.MaxCapacity) < 0.30:
		return StatusWarning
	default:
		return StatusGood
	}
}

// IngredientStats is the dashboard view of one ingredient.
type IngredientStats struct {
	Current      int64           `json:"current"`
	Max          int64           `json:"max"`
	Percentage   float64         `json:"percentage"`
	Status       StockStatus     `json:"status"`
	LowThreshold int64           `json:"lowThreshold"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	RefillCost   decimal.Decimal `json:"refillCost"`
}

type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
)

// Alert flags an ingredient needing attention.
type Alert struct {
	Item       string          `json:"item"`
	Level      AlertLevel      `json:"level"`
	Message    string          `json:"message"`
	Action     string          `json:"action"`
	RefillCost decimal.Decimal `json:"cost"`
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyLow      Urgency = "low"
)

// LowStockItem is an entry on the restock worklist.
type LowStockItem struct {
	Item       string          `json:"item"`
	Current    int64           `json:"current"`
	Threshold  int64           `json:"threshold"`
	Max        int64           `json:"max"`
	Urgency    Urgency         `json:"urgency"`
	RefillCost decimal.Decimal `json:"refillCost"`
	Unit       string          `json:"unit"`
}

type Priority string

const (
	PriorityHigh Priority = "high"
	PriorityLow  Priority = "low"
)

// ShoppingItem is one purchasable refill on the shopping list.
type ShoppingItem struct {
	Item       string          `json:"item"`
	Current    int64           `json:"current"`
	Max        int64           `json:"max"`
	Needed     int64           `json:"needed"`
	Cost       decimal.Decimal `json:"cost"`
	Affordable bool            `json:"affordable"`
	Priority   Priority        `json:"priority"`
	Unit       string          `json:"unit"`
	Percentage float64         `json:"percentage"`
}

// Availability is the outcome of a pre-order stock check. Fails closed: any
// ingredient short of the requirement, unknown names included, lands in
// Missing and clears OK.
type Availability struct {
	OK      bool     `json:"ok"`
	Missing []string `json:"missing,omitempty"`
}

// PurchaseResult is the outcome of a refill purchase.
type PurchaseResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	MoneySpent     decimal.Decimal `json:"moneySpent"`
	MoneyRemaining decimal.Decimal `json:"moneyRemaining"`
	Item           string          `json:"item,omitempty"`
	AmountAdded    int64           `json:"amountAdded,omitempty"`
	NewStock       int64           `json:"newInventory,omitempty"`
}

// PurchaseEvent is published after a successful refill purchase.
type PurchaseEvent struct {
	Item           string          `json:"item"`
	Cost           decimal.Decimal `json:"cost"`
	NewInventory   int64           `json:"newInventory"`
	MoneyRemaining decimal.Decimal `json:"moneyRemaining"`
}
