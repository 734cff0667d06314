// Package core holds the error kinds shared across the engine. Every one of
// these is a recoverable, caller-facing outcome. Handlers map them to 4xx
// responses; nothing here is fatal to the process.
package core

import "errors"

var (
	// ErrItemNotFound indicates an order identifier resolved to no menu item.
	ErrItemNotFound = errors.New("core: item not found")

	// ErrInvalidItem indicates an ingredient name unknown to the ledger.
	ErrInvalidItem = errors.New("core: invalid item")

	// ErrInvalidOrderType indicates an order type other than coffee or food.
	ErrInvalidOrderType = errors.New("core: invalid order type")

	// ErrAlreadyAtCapacity indicates a refill purchase for a full ingredient.
	ErrAlreadyAtCapacity = errors.New("core: already at maximum capacity")

	// ErrInsufficientFunds indicates the player cannot cover a refill cost.
	ErrInsufficientFunds = errors.New("core: insufficient funds")

	// ErrInsufficientInventory indicates stock cannot cover a recipe.
	ErrInsufficientInventory = errors.New("core: insufficient inventory")

	// ErrPaymentFailed indicates a cash or card payment was declined.
	ErrPaymentFailed = errors.New("core: payment failed")
)
