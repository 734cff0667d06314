// Package analytics keeps the append-only history of everything the shop
// does: ingredient usage, refill purchases, restocks and payment
// transactions. Records are created once and never mutated or deleted;
// history is monotonic for the lifetime of the session.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const dateFormat = "2006-01-02"

// UsageRecord is one ingredient deduction from a fulfilled order.
type UsageRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Item      string    `json:"item"`
	Quantity  int64     `json:"quantity"`
	OrderKind string    `json:"orderKind"`
	Product   string    `json:"product"`
	Remaining int64     `json:"remaining"`
}

// PurchaseRecord is one refill purchase.
type PurchaseRecord struct {
	Timestamp   time.Time       `json:"timestamp"`
	Item        string          `json:"item"`
	AmountAdded int64           `json:"amountAdded"`
	Cost        decimal.Decimal `json:"cost"`
	NewStock    int64           `json:"newStock"`
}

// RestockRecord is one restocking event, whatever its method.
type RestockRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Item      string          `json:"item"`
	Requested int64           `json:"requested"`
	Actual    int64           `json:"actual"`
	Method    string          `json:"method"`
	Cost      decimal.Decimal `json:"cost"`
	NewStock  int64           `json:"newStock"`
}

// Transaction is one payment attempt, successful or not. CardRef carries at
// most the last four digits of a card number, never the full number.
type Transaction struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	PaymentMethod  string          `json:"paymentMethod"`
	AmountCharged  decimal.Decimal `json:"amountCharged"`
	AmountTendered decimal.Decimal `json:"amountTendered"`
	ChangeGiven    decimal.Decimal `json:"changeGiven"`
	Success        bool            `json:"success"`
	CardRef        string          `json:"cardRef,omitempty"`
	Source         string          `json:"source,omitempty"`
}

// DailyEarnings is one day's takings, keyed by date.
type DailyEarnings struct {
	Date     string          `json:"date"`
	Earnings decimal.Decimal `json:"earnings"`
}

type Option func(*Recorder)

// WithNow overrides the recorder's clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type Recorder struct {
	mu           sync.Mutex
	now          func() time.Time
	usage        []UsageRecord
	purchases    []PurchaseRecord
	restocks     []RestockRecord
	transactions []Transaction
}

func (r *Recorder) RecordUsage(item string, quantity int64, orderKind, product string, remaining int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usage = append(r.usage, UsageRecord{
		Timestamp: r.now(),
		Item:      item,
		Quantity:  quantity,
		OrderKind: orderKind,
		Product:   product,
		Remaining: remaining,
	})
}

func (r *Recorder) RecordPurchase(item string, amountAdded int64, cost decimal.Decimal, newStock int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, PurchaseRecord{
		Timestamp:   r.now(),
		Item:        item,
		AmountAdded: amountAdded,
		Cost:        cost,
		NewStock:    newStock,
	})
}

func (r *Recorder) RecordRestock(item string, requested, actual int64, method string, cost decimal.Decimal, newStock int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restocks = append(r.restocks, RestockRecord{
		Timestamp: r.now(),
		Item:      item,
		Requested: requested,
		Actual:    actual,
		Method:    method,
		Cost:      cost,
		NewStock:  newStock,
	})
}

func (r *Recorder) RecordTransaction(t Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.Timestamp.IsZero() {
		t.Timestamp = r.now()
	}
	r.transactions = append(r.transactions, t)
}

// UsageHistory returns usage within the last N days, newest first. A
// non-positive N returns the full history.
func (r *Recorder) UsageHistory(days int) []UsageRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []UsageRecord
	cutoff := r.cutoff(days)
	for i := len(r.usage) - 1; i >= 0; i-- {
		if r.usage[i].Timestamp.After(cutoff) {
			out = append(out, r.usage[i])
		}
	}
	return out
}

// PurchaseHistory returns purchases within the last N days, newest first.
func (r *Recorder) PurchaseHistory(days int) []PurchaseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []PurchaseRecord
	cutoff := r.cutoff(days)
	for i := len(r.purchases) - 1; i >= 0; i-- {
		if r.purchases[i].Timestamp.After(cutoff) {
			out = append(out, r.purchases[i])
		}
	}
	return out
}

// RestockHistory returns restock events within the last N days, newest first.
func (r *Recorder) RestockHistory(days int) []RestockRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []RestockRecord
	cutoff := r.cutoff(days)
	for i := len(r.restocks) - 1; i >= 0; i-- {
		if r.restocks[i].Timestamp.After(cutoff) {
			out = append(out, r.restocks[i])
		}
	}
	return out
}

// TransactionHistory returns payment attempts within the last N days, newest
// first. A non-positive N returns the full history.
func (r *Recorder) TransactionHistory(days int) []Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Transaction
	cutoff := r.cutoff(days)
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].Timestamp.After(cutoff) {
			out = append(out, r.transactions[i])
		}
	}
	return out
}

// DailyBreakdown sums successful cash and card takings per day over the last
// N days, oldest first. Days without takings appear with zero earnings.
func (r *Recorder) DailyBreakdown(days int) []DailyEarnings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if days <= 0 {
		days = 1
	}

	byDate := make(map[string]decimal.Decimal, days)
	for i := 0; i < days; i++ {
		date := r.now().AddDate(0, 0, -i).Format(dateFormat)
		byDate[date] = decimal.Zero
	}

	for _, t := range r.transactions {
		if !t.Success || t.PaymentMethod == "tip" {
			continue
		}
		date := t.Timestamp.Format(dateFormat)
		if earned, ok := byDate[date]; ok {
			byDate[date] = earned.Add(t.AmountCharged)
		}
	}

	breakdown := make([]DailyEarnings, 0, len(byDate))
	for date, earned := range byDate {
		breakdown = append(breakdown, DailyEarnings{Date: date, Earnings: earned})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Date < breakdown[j].Date })

	return breakdown
}

func (r *Recorder) cutoff(days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return r.now().AddDate(0, 0, -days)
}
