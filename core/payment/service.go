package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/analytics"
)

const dateFormat = "2006-01-02"

// Recorder receives every payment attempt, successful or not, and serves
// them back for shift reporting.
type Recorder interface {
	RecordTransaction(t analytics.Transaction)
	TransactionHistory(days int) []analytics.Transaction
}

type Service interface {
	ProcessPayment(ctx context.Context, method Method, amountDue decimal.Decimal, details Details) Result
	AddTip(ctx context.Context, amount decimal.Decimal, source string) bool

	EarningsSummary() EarningsSummary
	PaymentAnalytics() Analytics
	PerformanceMetrics() PerformanceMetrics

	SetShiftTarget(target decimal.Decimal)
	ResetShift()
}

type Option func(*service)

// WithNow overrides the service clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(recorder Recorder, currency string, target decimal.Decimal, opts ...Option) *service {
	s := &service{
		recorder:      recorder,
		currency:      currency,
		target:        target,
		now:           time.Now,
		dailyEarnings: make(map[string]decimal.Decimal),
		methodCounts:  make(map[Method]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.shiftStart = s.now()
	return s
}

// service guards all earnings state behind one mutex. Payment handlers run
// concurrently and profit must never lose an update.
type service struct {
	recorder Recorder
	currency string
	now      func() time.Time

	mu            sync.Mutex
	profit        decimal.Decimal
	tips          decimal.Decimal
	target        decimal.Decimal
	shiftStart    time.Time
	dailyEarnings map[string]decimal.Decimal
	methodCounts  map[Method]int
}

// ProcessPayment settles one order. Cash must cover the amount due plus tip;
// card numbers need at least four digits. Every attempt is recorded, and on
// success the amount due lands in profit and the tip in the tip jar.
func (s *service) ProcessPayment(ctx context.Context, method Method, amountDue decimal.Decimal, details Details) Result {
	const funcName = "ProcessPayment"

	log.Info().
		Str("func", funcName).
		Str("method", string(method)).
		Str("amountDue", amountDue.StringFixed(2)).
		Msg("processing payment")

	tip := details.TipAmount
	if tip.IsNegative() {
		tip = decimal.Zero
	}
	total := amountDue.Add(tip)

	switch method {
	case MethodCash:
		return s.processCash(amountDue, tip, total, details)
	case MethodCard:
		return s.processCard(amountDue, tip, total, details)
	default:
		return Result{Success: false, Message: fmt.Sprintf("Unsupported payment method: %s", method)}
	}
}

func (s *service) processCash(amountDue, tip, total decimal.Decimal, details Details) Result {
	id := uuid.NewString()
	tendered := details.CashTendered

	if tendered.LessThan(total) {
		s.logTransaction(analytics.Transaction{
			ID:             id,
			PaymentMethod:  string(MethodCash),
			AmountCharged:  amountDue,
			AmountTendered: tendered,
			ChangeGiven:    decimal.Zero,
			Success:        false,
		})
		return Result{
			Success: false,
			Message: fmt.Sprintf("Insufficient cash. Need $%s, got $%s",
				total.StringFixed(2), tendered.StringFixed(2)),
			Tip:           tip,
			TotalEarned:   total.Add(details.QualityBonus),
			TransactionID: id,
		}
	}

	change := tendered.Sub(total)
	s.settle(MethodCash, amountDue, tip, details.QualityBonus)
	s.logTransaction(analytics.Transaction{
		ID:             id,
		PaymentMethod:  string(MethodCash),
		AmountCharged:  amountDue,
		AmountTendered: tendered,
		ChangeGiven:    change,
		Success:        true,
	})

	return Result{
		Success:       true,
		Message:       successMessage(fmt.Sprintf("Payment successful! Change: $%s", change.StringFixed(2)), details.QualityBonus),
		Change:        change,
		Tip:           tip,
		TotalEarned:   total.Add(details.QualityBonus),
		TransactionID: id,
	}
}

func (s *service) processCard(amountDue, tip, total decimal.Decimal, details Details) Result {
	id := uuid.NewString()

	if len(details.CardNumber) < 4 {
		s.logTransaction(analytics.Transaction{
			ID:             id,
			PaymentMethod:  string(MethodCard),
			AmountCharged:  amountDue,
			AmountTendered: total,
			ChangeGiven:    decimal.Zero,
			Success:        false,
		})
		return Result{
			Success:       false,
			Message:       "Invalid card number",
			Tip:           tip,
			TotalEarned:   total.Add(details.QualityBonus),
			TransactionID: id,
		}
	}

	lastFour := details.CardNumber[len(details.CardNumber)-4:]
	s.settle(MethodCard, amountDue, tip, details.QualityBonus)
	s.logTransaction(analytics.Transaction{
		ID:             id,
		PaymentMethod:  string(MethodCard),
		AmountCharged:  amountDue,
		AmountTendered: total,
		ChangeGiven:    decimal.Zero,
		Success:        true,
		CardRef:        lastFour,
	})

	return Result{
		Success:       true,
		Message:       successMessage(fmt.Sprintf("Card payment successful! Card ending in %s", lastFour), details.QualityBonus),
		Change:        decimal.Zero,
		Tip:           tip,
		TotalEarned:   total.Add(details.QualityBonus),
		TransactionID: id,
	}
}

// settle commits a successful payment into shift earnings.
func (s *service) settle(method Method, amountDue, tip, bonus decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profit = s.profit.Add(amountDue)
	s.tips = s.tips.Add(tip)
	if bonus.IsPositive() {
		s.profit = s.profit.Add(bonus)
	}
	s.methodCounts[method]++

	today := s.now().Format(dateFormat)
	s.dailyEarnings[today] = s.dailyEarnings[today].Add(amountDue)
}

// AddTip drops a standalone tip into the jar. Non-positive amounts are
// rejected. Tips are logged but never count toward daily takings.
func (s *service) AddTip(ctx context.Context, amount decimal.Decimal, source string) bool {
	const funcName = "AddTip"

	if !amount.IsPositive() {
		log.Debug().Str("func", funcName).Str("amount", amount.String()).Msg("rejecting non-positive tip")
		return false
	}

	s.mu.Lock()
	s.tips = s.tips.Add(amount)
	s.mu.Unlock()

	s.logTransaction(analytics.Transaction{
		ID:             uuid.NewString(),
		PaymentMethod:  "tip",
		AmountCharged:  amount,
		AmountTendered: amount,
		ChangeGiven:    decimal.Zero,
		Success:        true,
		Source:         source,
	})
	return true
}

func (s *service) EarningsSummary() EarningsSummary {
	s.mu.Lock()
	profit := s.profit
	tips := s.tips
	target := s.target
	shiftStart := s.shiftStart
	today := s.now().Format(dateFormat)
	todayEarnings := s.dailyEarnings[today]
	methods := make(map[Method]int, len(s.methodCounts))
	for m, c := range s.methodCounts {
		methods[m] = c
	}
	s.mu.Unlock()

	hours := s.now().Sub(shiftStart).Hours()
	divisor := hours
	if divisor < 0.1 {
		divisor = 0.1
	}
	hourlyRate := profit.Div(decimal.NewFromFloat(divisor)).Round(2)

	progress := 0.0
	if target.IsPositive() {
		progress, _ = todayEarnings.Div(target).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	}

	transactionsToday := 0
	for _, t := range s.recorder.TransactionHistory(1) {
		if t.Timestamp.Format(dateFormat) == today {
			transactionsToday++
		}
	}

	return EarningsSummary{
		TotalProfit:       profit,
		TodayEarnings:     todayEarnings,
		TipsCollected:     tips,
		HoursWorked:       round2(hours),
		HourlyRate:        hourlyRate,
		TargetEarnings:    target,
		TargetProgress:    progress,
		TransactionsToday: transactionsToday,
		PaymentMethods:    methods,
		Currency:          s.currency,
	}
}

func (s *service) PaymentAnalytics() Analytics {
	successful := s.successfulTransactions()
	if len(successful) == 0 {
		return Analytics{}
	}

	var cash, card int
	for _, t := range successful {
		switch Method(t.PaymentMethod) {
		case MethodCash:
			cash++
		case MethodCard:
			card++
		}
	}

	s.mu.Lock()
	profit := s.profit
	s.mu.Unlock()

	total := len(successful)
	return Analytics{
		TotalTransactions:  total,
		CashTransactions:   cash,
		CardTransactions:   card,
		CashPercentage:     round1(float64(cash) / float64(total) * 100),
		CardPercentage:     round1(float64(card) / float64(total) * 100),
		AverageTransaction: profit.Div(decimal.NewFromInt(int64(total))).Round(2),
	}
}

func (s *service) PerformanceMetrics() PerformanceMetrics {
	successful := s.successfulTransactions()

	s.mu.Lock()
	profit := s.profit
	tips := s.tips
	s.mu.Unlock()

	served := len(successful)
	divisor := int64(served)
	if divisor < 1 {
		divisor = 1
	}

	profitFloor := profit
	if !profitFloor.IsPositive() {
		profitFloor = decimal.NewFromInt(1)
	}
	tipsPct, _ := tips.Div(profitFloor).Mul(decimal.NewFromInt(100)).Round(1).Float64()

	efficiency := served * 2
	if efficiency > 100 {
		efficiency = 100
	}

	satisfactionBoost, _ := tips.Float64()
	if satisfactionBoost > 15 {
		satisfactionBoost = 15
	}

	return PerformanceMetrics{
		CustomersServed:      served,
		AverageOrderValue:    profit.Div(decimal.NewFromInt(divisor)).Round(2),
		TipsPercentage:       tipsPct,
		EfficiencyScore:      efficiency,
		CustomerSatisfaction: 85 + satisfactionBoost,
	}
}

func (s *service) SetShiftTarget(target decimal.Decimal) {
	s.mu.Lock()
	s.target = target
	s.mu.Unlock()
	log.Info().Str("target", target.StringFixed(2)).Msg("shift target updated")
}

// ResetShift starts a fresh shift clock. Nothing else changes: profit, tips,
// method counts and transaction history all survive the reset.
func (s *service) ResetShift() {
	s.mu.Lock()
	s.shiftStart = s.now()
	s.mu.Unlock()
	log.Info().Msg("shift reset")
}

func (s *service) successfulTransactions() []analytics.Transaction {
	var successful []analytics.Transaction
	for _, t := range s.recorder.TransactionHistory(0) {
		if t.Success {
			successful = append(successful, t)
		}
	}
	return successful
}

func (s *service) logTransaction(t analytics.Transaction) {
	t.Timestamp = s.now()
	s.recorder.RecordTransaction(t)
}

func successMessage(base string, bonus decimal.Decimal) string {
	if bonus.IsPositive() {
		return fmt.Sprintf("%s Quality bonus: $%s", base, bonus.StringFixed(2))
	}
	return base
}

func round1(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(1).Float64()
	return v
}

func round2(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}
