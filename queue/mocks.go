package queue

import (
	"context"

	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/order"
	"github.com/brewsim/coffeeshop/test"
)

// MockEventQueue stands in for the broker when rabbitmq.mock is set.
type MockEventQueue struct {
	NotifyInventoryFunc func(ctx context.Context, stats map[string]inventory.IngredientStats) error
	NotifyPurchaseFunc  func(ctx context.Context, event inventory.PurchaseEvent) error
	NotifyOrderFunc     func(ctx context.Context, event order.Event) error
	test.CallWatcher
}

func NewMockEventQueue() *MockEventQueue {
	return &MockEventQueue{
		NotifyInventoryFunc: func(ctx context.Context, stats map[string]inventory.IngredientStats) error {
			return nil
		},
		NotifyPurchaseFunc: func(ctx context.Context, event inventory.PurchaseEvent) error {
			return nil
		},
		NotifyOrderFunc: func(ctx context.Context, event order.Event) error {
			return nil
		},
		CallWatcher: *test.NewCallWatcher(),
	}
}

func (m *MockEventQueue) NotifyInventory(ctx context.Context, stats map[string]inventory.IngredientStats) error {
	m.AddCall(ctx, stats)
	return m.NotifyInventoryFunc(ctx, stats)
}

func (m *MockEventQueue) NotifyPurchase(ctx context.Context, event inventory.PurchaseEvent) error {
	m.AddCall(ctx, event)
	return m.NotifyPurchaseFunc(ctx, event)
}

func (m *MockEventQueue) NotifyOrder(ctx context.Context, event order.Event) error {
	m.AddCall(ctx, event)
	return m.NotifyOrderFunc(ctx, event)
}
