package payment

import (
	"github.com/shopspring/decimal"
)

// Method is how a customer pays.
type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

// Details carries the method-specific fields of a payment attempt. The full
// card number never leaves this struct; only the last four digits are kept.
type Details struct {
	TipAmount    decimal.Decimal `json:"tipAmount"`
	CashTendered decimal.Decimal `json:"cashTendered,omitempty"`
	CardNumber   string          `json:"cardNumber,omitempty"`
	QualityBonus decimal.Decimal `json:"qualityBonus,omitempty"`
}

// Result is the outcome of a payment attempt.
type Result struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	Change        decimal.Decimal `json:"change"`
	Tip           decimal.Decimal `json:"tip"`
	TotalEarned   decimal.Decimal `json:"totalEarned"`
	TransactionID string          `json:"transactionId,omitempty"`
}

// EarningsSummary is a snapshot of the current shift.
type EarningsSummary struct {
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	TodayEarnings     decimal.Decimal `json:"todayEarnings"`
	TipsCollected     decimal.Decimal `json:"tipsCollected"`
	HoursWorked       float64         `json:"hoursWorked"`
	HourlyRate        decimal.Decimal `json:"hourlyRate"`
	TargetEarnings    decimal.Decimal `json:"targetEarnings"`
	TargetProgress    float64         `json:"targetProgress"`
	TransactionsToday int             `json:"transactionsToday"`
	PaymentMethods    map[Method]int  `json:"paymentMethods"`
	Currency          string          `json:"currency"`
}

// Analytics summarizes successful transactions. All fields are zero when
// there have been none.
type Analytics struct {
	TotalTransactions  int             `json:"totalTransactions"`
	CashTransactions   int             `json:"cashTransactions"`
	CardTransactions   int             `json:"cardTransactions"`
	CashPercentage     float64         `json:"cashPercentage"`
	CardPercentage     float64         `json:"cardPercentage"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

// PerformanceMetrics grades the barista's shift so far.
type PerformanceMetrics struct {
	CustomersServed      int             `json:"customersServed"`
	AverageOrderValue    decimal.Decimal `json:"averageOrderValue"`
	TipsPercentage       float64         `json:"tipsPercentage"`
	EfficiencyScore      int             `json:"efficiencyScore"`
	CustomerSatisfaction float64         `json:"customerSatisfaction"`
}
