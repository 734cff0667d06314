package order

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/payment"
)

type MockOrderService struct {
	FulfillFunc func(ctx context.Context, req Request) (Result, error)
}

func NewMockOrderService() *MockOrderService {
	return &MockOrderService{
		FulfillFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{Success: true}, nil
		},
	}
}

func (m *MockOrderService) Fulfill(ctx context.Context, req Request) (Result, error) {
	return m.FulfillFunc(ctx, req)
}

// MockResolver serves a fixed item lookup and counts calls.
type MockResolver struct {
	mu        sync.Mutex
	callCount map[string]int

	ResolveFunc func(kind catalog.Kind, id string) (catalog.Item, error)
}

func NewMockResolver() *MockResolver {
	return &MockResolver{
		callCount: make(map[string]int),
		ResolveFunc: func(kind catalog.Kind, id string) (catalog.Item, error) {
			return catalog.Item{ID: id, Kind: kind}, nil
		},
	}
}

func (m *MockResolver) Resolve(kind catalog.Kind, id string) (catalog.Item, error) {
	m.incr("Resolve")
	return m.ResolveFunc(kind, id)
}

func (m *MockResolver) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockResolver) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}

// MockInventory stubs the ledger slice fulfillment depends on.
type MockInventory struct {
	mu        sync.Mutex
	callCount map[string]int

	CheckAvailabilityFunc func(requirements map[string]int64) inventory.Availability
	DeductFunc            func(ctx context.Context, requirements map[string]int64, orderKind, productName string)
}

func NewMockInventory() *MockInventory {
	return &MockInventory{
		callCount: make(map[string]int),
		CheckAvailabilityFunc: func(requirements map[string]int64) inventory.Availability {
			return inventory.Availability{OK: true}
		},
		DeductFunc: func(ctx context.Context, requirements map[string]int64, orderKind, productName string) {},
	}
}

func (m *MockInventory) CheckAvailability(requirements map[string]int64) inventory.Availability {
	m.incr("CheckAvailability")
	return m.CheckAvailabilityFunc(requirements)
}

func (m *MockInventory) Deduct(ctx context.Context, requirements map[string]int64, orderKind, productName string) {
	m.incr("Deduct")
	m.DeductFunc(ctx, requirements, orderKind, productName)
}

func (m *MockInventory) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockInventory) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}

// MockPayments stubs the payment processor.
type MockPayments struct {
	mu        sync.Mutex
	callCount map[string]int

	ProcessPaymentFunc func(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result
}

func NewMockPayments() *MockPayments {
	return &MockPayments{
		callCount: make(map[string]int),
		ProcessPaymentFunc: func(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result {
			return payment.Result{Success: true}
		},
	}
}

func (m *MockPayments) ProcessPayment(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result {
	m.incr("ProcessPayment")
	return m.ProcessPaymentFunc(ctx, method, amountDue, details)
}

func (m *MockPayments) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockPayments) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}

// MockOrderNotifier counts order event publications.
type MockOrderNotifier struct {
	mu        sync.Mutex
	callCount map[string]int

	NotifyOrderFunc func(ctx context.Context, event Event) error
}

func NewMockOrderNotifier() *MockOrderNotifier {
	return &MockOrderNotifier{
		callCount:       make(map[string]int),
		NotifyOrderFunc: func(ctx context.Context, event Event) error { return nil },
	}
}

func (m *MockOrderNotifier) NotifyOrder(ctx context.Context, event Event) error {
	m.incr("NotifyOrder")
	return m.NotifyOrderFunc(ctx, event)
}

func (m *MockOrderNotifier) incr(f string) {
	m.mu.Lock()
	m.callCount[f]++
	m.mu.Unlock()
}

func (m *MockOrderNotifier) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}
