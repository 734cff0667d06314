package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core"
)

// RefillCost prices a full refill for the ingredient: the quantity missing
// from capacity times the unit price, rounded to cents. Zero when already
// at capacity.
func RefillCost(ing Ingredient) decimal.Decimal {
	needed := ing.MaxCapacity - ing.CurrentStock
	if needed <= 0 {
		return decimal.Zero
	}
	return ing.PricePerUnit.Mul(decimal.NewFromInt(needed)).Round(2)
}

// AffordCheck is the outcome of pricing a refill against the player's money.
// When OK is false, Reason carries core.ErrAlreadyAtCapacity or
// core.ErrInsufficientFunds.
type AffordCheck struct {
	OK     bool
	Cost   decimal.Decimal
	Needed int64
	Reason error
}

// CanAfford checks whether the player can buy a full refill of the
// ingredient. Cost is populated whenever the ingredient is below capacity,
// even on an InsufficientFunds outcome, so callers can surface the price.
func CanAfford(ing Ingredient, playerMoney decimal.Decimal) AffordCheck {
	needed := ing.MaxCapacity - ing.CurrentStock
	if needed <= 0 {
		return AffordCheck{Reason: core.ErrAlreadyAtCapacity}
	}

	cost := RefillCost(ing)
	if playerMoney.LessThan(cost) {
		return AffordCheck{Cost: cost, Needed: needed, Reason: core.ErrInsufficientFunds}
	}

	return AffordCheck{OK: true, Cost: cost, Needed: needed}
}
