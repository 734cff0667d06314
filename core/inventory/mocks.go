package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

type MockInventoryService struct {
	CheckAvailabilityFunc    func(requirements map[string]int64) Availability
	DeductFunc               func(ctx context.Context, requirements map[string]int64, orderKind, productName string)
	GetStatsFunc             func() map[string]IngredientStats
	GetAlertsFunc            func() []Alert
	GetLowStockItemsFunc     func() []LowStockItem
	PurchaseFunc             func(ctx context.Context, item string, playerMoney decimal.Decimal) PurchaseResult
	ShoppingListFunc         func(playerMoney decimal.Decimal) []ShoppingItem
	SubscribeInventoryFunc   func(ch chan<- map[string]IngredientStats) (id SubscriptionID)
	UnsubscribeInventoryFunc func(id SubscriptionID)
}

func NewMockInventoryService() *MockInventoryService {
	return &MockInventoryService{
		CheckAvailabilityFunc: func(requirements map[string]int64) Availability {
			return Availability{OK: true}
		},
		DeductFunc:           func(ctx context.Context, requirements map[string]int64, orderKind, productName string) {},
		GetStatsFunc:         func() map[string]IngredientStats { return map[string]IngredientStats{} },
		GetAlertsFunc:        func() []Alert { return []Alert{} },
		GetLowStockItemsFunc: func() []LowStockItem { return []LowStockItem{} },
		PurchaseFunc: func(ctx context.Context, item string, playerMoney decimal.Decimal) PurchaseResult {
			return PurchaseResult{Success: true}
		},
		ShoppingListFunc:         func(playerMoney decimal.Decimal) []ShoppingItem { return []ShoppingItem{} },
		SubscribeInventoryFunc:   func(ch chan<- map[string]IngredientStats) (id SubscriptionID) { return "" },
		UnsubscribeInventoryFunc: func(id SubscriptionID) {},
	}
}

func (m *MockInventoryService) CheckAvailability(requirements map[string]int64) Availability {
	return m.CheckAvailabilityFunc(requirements)
}

func (m *MockInventoryService) Deduct(ctx context.Context, requirements map[string]int64, orderKind, productName string) {
	m.DeductFunc(ctx, requirements, orderKind, productName)
}

func (m *MockInventoryService) GetStats() map[string]IngredientStats {
	return m.GetStatsFunc()
}

func (m *MockInventoryService) GetAlerts() []Alert {
	return m.GetAlertsFunc()
}

func (m *MockInventoryService) GetLowStockItems() []LowStockItem {
	return m.GetLowStockItemsFunc()
}

func (m *MockInventoryService) Purchase(ctx context.Context, item string, playerMoney decimal.Decimal) PurchaseResult {
	return m.PurchaseFunc(ctx, item, playerMoney)
}

func (m *MockInventoryService) ShoppingList(playerMoney decimal.Decimal) []ShoppingItem {
	return m.ShoppingListFunc(playerMoney)
}

func (m *MockInventoryService) SubscribeInventory(ch chan<- map[string]IngredientStats) (id SubscriptionID) {
	return m.SubscribeInventoryFunc(ch)
}

func (m *MockInventoryService) UnsubscribeInventory(id SubscriptionID) {
	m.UnsubscribeInventoryFunc(id)
}

// MockRecorder counts history appends.
type MockRecorder struct {
	mu        sync.Mutex
	callCount map[string]int

	RecordUsageFunc    func(item string, quantity int64, orderKind, product string, remaining int64)
	RecordPurchaseFunc func(item string, amountAdded int64, cost decimal.Decimal, newStock int64)
	RecordRestockFunc  func(item string, requested, actual int64, method string, cost decimal.Decimal, newStock int64)
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		callCount:          make(map[string]int),
		RecordUsageFunc:    func(item string, quantity int64, orderKind, product string, remaining int64) {},
		RecordPurchaseFunc: func(item string, amountAdded int64, cost decimal.Decimal, newStock int64) {},
		RecordRestockFunc:  func(item string, requested, actual int64, method string, cost decimal.Decimal, newStock int64) {},
	}
}

func (m *MockRecorder) RecordUsage(item string, quantity int64, orderKind, product string, remaining int64) {
	m.incr("RecordUsage")
	m.RecordUsageFunc(item, quantity, orderKind, product, remaining)
}

func (m *MockRecorder) RecordPurchase(item string, amountAdded int64, cost decimal.Decimal, newStock int64) {
	m.incr("RecordPurchase")
	m.RecordPurchaseFunc(item, amountAdded, cost, newStock)
}

func (m *MockRecorder) RecordRestock(item string, requested, actual int64, method string, cost decimal.Decimal, newStock int64) {
	m.incr("RecordRestock")
	m.RecordRestockFunc(item, requested, actual, method, cost, newStock)
}

func (m *MockRecorder) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockRecorder) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}

// MockNotifier counts event publications.
type MockNotifier struct {
	mu        sync.Mutex
	callCount map[string]int

	NotifyInventoryFunc func(ctx context.Context, stats map[string]IngredientStats) error
	NotifyPurchaseFunc  func(ctx context.Context, event PurchaseEvent) error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		callCount:           make(map[string]int),
		NotifyInventoryFunc: func(ctx context.Context, stats map[string]IngredientStats) error { return nil },
		NotifyPurchaseFunc:  func(ctx context.Context, event PurchaseEvent) error { return nil },
	}
}

func (m *MockNotifier) NotifyInventory(ctx context.Context, stats map[string]IngredientStats) error {
	m.incr("NotifyInventory")
	return m.NotifyInventoryFunc(ctx, stats)
}

func (m *MockNotifier) NotifyPurchase(ctx context.Context, event PurchaseEvent) error {
	m.incr("NotifyPurchase")
	return m.NotifyPurchaseFunc(ctx, event)
}

func (m *MockNotifier) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockNotifier) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}
