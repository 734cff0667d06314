package order

import (
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/payment"
)

// Request is one customer order: what they want and how they pay.
type Request struct {
	Type           string          `json:"type"`
	ItemID         string          `json:"itemId"`
	PaymentMethod  payment.Method  `json:"paymentMethod"`
	PaymentDetails payment.Details `json:"paymentDetails"`
}

// Result is a fulfilled order. InventoryUpdated reports whether stock
// deduction was initiated; individual ingredients may still be skipped if
// stock moved between the availability check and the deduction.
type Result struct {
	Success          bool           `json:"success"`
	Item             catalog.Item   `json:"item"`
	Payment          payment.Result `json:"payment"`
	InventoryUpdated bool           `json:"inventoryUpdated"`
}

// Event is published after an order completes.
type Event struct {
	Kind             catalog.Kind   `json:"kind"`
	Item             string         `json:"item"`
	Price            string         `json:"price"`
	TransactionID    string         `json:"transactionId"`
	InventoryUpdated bool           `json:"inventoryUpdated"`
	PaymentMethod    payment.Method `json:"paymentMethod"`
}
