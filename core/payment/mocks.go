package payment

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/analytics"
)

type MockPaymentService struct {
	ProcessPaymentFunc     func(ctx context.Context, method Method, amountDue decimal.Decimal, details Details) Result
	AddTipFunc             func(ctx context.Context, amount decimal.Decimal, source string) bool
	EarningsSummaryFunc    func() EarningsSummary
	PaymentAnalyticsFunc   func() Analytics
	PerformanceMetricsFunc func() PerformanceMetrics
	SetShiftTargetFunc     func(target decimal.Decimal)
	ResetShiftFunc         func()
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{
		ProcessPaymentFunc: func(ctx context.Context, method Method, amountDue decimal.Decimal, details Details) Result {
			return Result{Success: true}
		},
		AddTipFunc:             func(ctx context.Context, amount decimal.Decimal, source string) bool { return true },
		EarningsSummaryFunc:    func() EarningsSummary { return EarningsSummary{} },
		PaymentAnalyticsFunc:   func() Analytics { return Analytics{} },
		PerformanceMetricsFunc: func() PerformanceMetrics { return PerformanceMetrics{} },
		SetShiftTargetFunc:     func(target decimal.Decimal) {},
		ResetShiftFunc:         func() {},
	}
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, method Method, amountDue decimal.Decimal, details Details) Result {
	return m.ProcessPaymentFunc(ctx, method, amountDue, details)
}

func (m *MockPaymentService) AddTip(ctx context.Context, amount decimal.Decimal, source string) bool {
	return m.AddTipFunc(ctx, amount, source)
}

func (m *MockPaymentService) EarningsSummary() EarningsSummary {
	return m.EarningsSummaryFunc()
}

func (m *MockPaymentService) PaymentAnalytics() Analytics {
	return m.PaymentAnalyticsFunc()
}

func (m *MockPaymentService) PerformanceMetrics() PerformanceMetrics {
	return m.PerformanceMetricsFunc()
}

func (m *MockPaymentService) SetShiftTarget(target decimal.Decimal) {
	m.SetShiftTargetFunc(target)
}

func (m *MockPaymentService) ResetShift() {
	m.ResetShiftFunc()
}

// MockTransactionRecorder keeps transactions in memory and counts appends.
type MockTransactionRecorder struct {
	mu           sync.Mutex
	callCount    map[string]int
	transactions []analytics.Transaction
}

func NewMockTransactionRecorder() *MockTransactionRecorder {
	return &MockTransactionRecorder{callCount: make(map[string]int)}
}

func (m *MockTransactionRecorder) RecordTransaction(t analytics.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount["RecordTransaction"]++
	m.transactions = append(m.transactions, t)
}

func (m *MockTransactionRecorder) TransactionHistory(days int) []analytics.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount["TransactionHistory"]++

	out := make([]analytics.Transaction, 0, len(m.transactions))
	for i := len(m.transactions) - 1; i >= 0; i-- {
		out = append(out, m.transactions[i])
	}
	return out
}

func (m *MockTransactionRecorder) VerifyCount(f string, count int, t *testing.T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCount[f] != count {
		t.Errorf("%s call count got=%d want=%d", f, m.callCount[f], count)
	}
}
