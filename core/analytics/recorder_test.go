package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/analytics"
)

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestUsageHistoryWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := now.AddDate(0, 0, -10)
	r := analytics.NewRecorder(analytics.WithNow(func() time.Time { return clock }))

	// One record ten days ago, one yesterday, one today.
	r.RecordUsage("Coffee Beans", 14, "coffee", "medium oatmilk hot latte", 86)
	clock = now.AddDate(0, 0, -1)
	r.RecordUsage("Oat Milk", 110, "coffee", "medium oatmilk hot latte", 590)
	clock = now
	r.RecordUsage("Water", 160, "coffee", "medium oatmilk hot latte", 9840)

	got := r.UsageHistory(7)
	if len(got) != 2 {
		t.Fatalf("unexpected record count got=%d want=%d", len(got), 2)
	}
	if got[0].Item != "Water" || got[1].Item != "Oat Milk" {
		t.Errorf("records not newest first: %s, %s", got[0].Item, got[1].Item)
	}

	if all := r.UsageHistory(0); len(all) != 3 {
		t.Errorf("unexpected full history count got=%d want=%d", len(all), 3)
	}
}

func TestPurchaseAndRestockHistory(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	r := analytics.NewRecorder(analytics.WithNow(fixedClock(now)))

	cost := decimal.RequireFromString("14.25")
	r.RecordPurchase("Coffee Beans", 95, cost, 100)
	r.RecordRestock("Coffee Beans", 95, 95, "purchase", cost, 100)

	purchases := r.PurchaseHistory(1)
	if len(purchases) != 1 {
		t.Fatalf("unexpected purchase count got=%d want=%d", len(purchases), 1)
	}
	if purchases[0].AmountAdded != 95 || purchases[0].Cost.StringFixed(2) != "14.25" {
		t.Errorf("unexpected purchase record got=%+v", purchases[0])
	}

	restocks := r.RestockHistory(1)
	if len(restocks) != 1 {
		t.Fatalf("unexpected restock count got=%d want=%d", len(restocks), 1)
	}
	if restocks[0].Method != "purchase" || restocks[0].Actual != 95 {
		t.Errorf("unexpected restock record got=%+v", restocks[0])
	}
}

func TestTransactionHistoryNewestFirst(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	r := analytics.NewRecorder(analytics.WithNow(fixedClock(now)))

	r.RecordTransaction(analytics.Transaction{ID: "a", PaymentMethod: "cash", Success: true})
	r.RecordTransaction(analytics.Transaction{ID: "b", PaymentMethod: "card", Success: true})

	got := r.TransactionHistory(0)
	if len(got) != 2 {
		t.Fatalf("unexpected transaction count got=%d want=%d", len(got), 2)
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("transactions not newest first: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestDailyBreakdown(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	r := analytics.NewRecorder(analytics.WithNow(fixedClock(now)))

	r.RecordTransaction(analytics.Transaction{
		PaymentMethod: "cash",
		AmountCharged: decimal.RequireFromString("4.50"),
		Success:       true,
		Timestamp:     now,
	})
	r.RecordTransaction(analytics.Transaction{
		PaymentMethod: "card",
		AmountCharged: decimal.RequireFromString("5.70"),
		Success:       true,
		Timestamp:     now.AddDate(0, 0, -1),
	})
	// Failures and tips never count toward takings.
	r.RecordTransaction(analytics.Transaction{
		PaymentMethod: "cash",
		AmountCharged: decimal.RequireFromString("9.99"),
		Success:       false,
		Timestamp:     now,
	})
	r.RecordTransaction(analytics.Transaction{
		PaymentMethod: "tip",
		AmountCharged: decimal.RequireFromString("2.00"),
		Success:       true,
		Timestamp:     now,
	})

	got := r.DailyBreakdown(3)
	if len(got) != 3 {
		t.Fatalf("unexpected day count got=%d want=%d", len(got), 3)
	}

	// Oldest first, zero-filled.
	if got[0].Date != "2024-06-13" || got[0].Earnings.StringFixed(2) != "0.00" {
		t.Errorf("unexpected first day got=%+v", got[0])
	}
	if got[1].Date != "2024-06-14" || got[1].Earnings.StringFixed(2) != "5.70" {
		t.Errorf("unexpected second day got=%+v", got[1])
	}
	if got[2].Date != "2024-06-15" || got[2].Earnings.StringFixed(2) != "4.50" {
		t.Errorf("unexpected third day got=%+v", got[2])
	}
}
