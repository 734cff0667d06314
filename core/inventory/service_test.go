package inventory_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/inventory"
)

func testConfig() inventory.Config {
	return inventory.Config{
		Ingredients: []inventory.IngredientConfig{
			{Name: "Coffee Beans", MaxCapacity: 100, LowThreshold: 20, InitialStock: 5, Unit: "g", PricePerUnit: decimal.RequireFromString("0.15")},
			{Name: "Water", MaxCapacity: 1000, LowThreshold: 100, InitialStock: 1000, Unit: "ml", PricePerUnit: decimal.RequireFromString("0.001")},
			{Name: "Sugar", MaxCapacity: 100, LowThreshold: 20, InitialStock: 0, Unit: "g", PricePerUnit: decimal.RequireFromString("0.05")},
		},
	}
}

func setupService() (inventory.Service, *inventory.MockRecorder, *inventory.MockNotifier) {
	recorder := inventory.NewMockRecorder()
	notifier := inventory.NewMockNotifier()
	svc := inventory.NewService(testConfig(), recorder, notifier)
	return svc, recorder, notifier
}

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name         string
		requirements map[string]int64

		wantOK      bool
		wantMissing []string
	}{
		{
			name:         "everything in stock",
			requirements: map[string]int64{"Water": 200, "Coffee Beans": 5},
			wantOK:       true,
		},
		{
			name:         "one ingredient short",
			requirements: map[string]int64{"Water": 200, "Coffee Beans": 6},
			wantMissing:  []string{"Coffee Beans"},
		},
		{
			name:         "unknown ingredient counts as missing",
			requirements: map[string]int64{"Unicorn Dust": 1},
			wantMissing:  []string{"Unicorn Dust"},
		},
		{
			name:         "missing list is sorted",
			requirements: map[string]int64{"Water": 5000, "Coffee Beans": 500, "Sugar": 1},
			wantMissing:  []string{"Coffee Beans", "Sugar", "Water"},
		},
		{
			name:         "empty requirements",
			requirements: map[string]int64{},
			wantOK:       true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, _, _ := setupService()

			got := svc.CheckAvailability(test.requirements)

			if got.OK != test.wantOK {
				t.Errorf("unexpected ok got=%v want=%v", got.OK, test.wantOK)
			}
			if len(test.wantMissing) > 0 && !reflect.DeepEqual(got.Missing, test.wantMissing) {
				t.Errorf("unexpected missing got=%v want=%v", got.Missing, test.wantMissing)
			}
		})
	}
}

func TestDeductBestEffort(t *testing.T) {
	svc, recorder, _ := setupService()

	// Water is sufficient, beans are not. Water is deducted, beans are
	// skipped untouched.
	svc.Deduct(context.Background(), map[string]int64{"Water": 100, "Coffee Beans": 10}, "coffee", "large hot expresso")

	stats := svc.GetStats()
	if stats["Water"].Current != 900 {
		t.Errorf("unexpected water stock got=%d want=%d", stats["Water"].Current, 900)
	}
	if stats["Coffee Beans"].Current != 5 {
		t.Errorf("unexpected bean stock got=%d want=%d", stats["Coffee Beans"].Current, 5)
	}

	recorder.VerifyCount("RecordUsage", 1, t)
}

func TestDeductNeverUnderflows(t *testing.T) {
	svc, _, _ := setupService()

	for i := 0; i < 5; i++ {
		svc.Deduct(context.Background(), map[string]int64{"Coffee Beans": 2}, "coffee", "medium hot expresso")
	}

	stats := svc.GetStats()
	if stats["Coffee Beans"].Current != 1 {
		t.Errorf("unexpected bean stock got=%d want=%d", stats["Coffee Beans"].Current, 1)
	}
}

func TestGetStats(t *testing.T) {
	svc, _, _ := setupService()

	stats := svc.GetStats()

	beans := stats["Coffee Beans"]
	if beans.Status != inventory.StatusLow {
		t.Errorf("unexpected status got=%s want=%s", beans.Status, inventory.StatusLow)
	}
	if beans.Percentage != 5.0 {
		t.Errorf("unexpected percentage got=%v want=%v", beans.Percentage, 5.0)
	}
	if beans.RefillCost.StringFixed(2) != "14.25" {
		t.Errorf("unexpected refill cost got=%s want=%s", beans.RefillCost.StringFixed(2), "14.25")
	}

	if stats["Sugar"].Status != inventory.StatusOut {
		t.Errorf("unexpected status got=%s want=%s", stats["Sugar"].Status, inventory.StatusOut)
	}
	if stats["Water"].Status != inventory.StatusGood {
		t.Errorf("unexpected status got=%s want=%s", stats["Water"].Status, inventory.StatusGood)
	}

	// Reads never mutate state.
	if !reflect.DeepEqual(stats, svc.GetStats()) {
		t.Errorf("repeated stats reads diverged")
	}
}

func TestGetAlerts(t *testing.T) {
	svc, _, _ := setupService()

	alerts := svc.GetAlerts()

	if len(alerts) != 2 {
		t.Fatalf("unexpected alert count got=%d want=%d", len(alerts), 2)
	}

	if alerts[0].Item != "Sugar" || alerts[0].Level != inventory.AlertCritical {
		t.Errorf("unexpected first alert got=%+v", alerts[0])
	}
	if alerts[0].Message != "Sugar is out of stock!" {
		t.Errorf("unexpected message got=%s", alerts[0].Message)
	}

	if alerts[1].Item != "Coffee Beans" || alerts[1].Level != inventory.AlertWarning {
		t.Errorf("unexpected second alert got=%+v", alerts[1])
	}
	if alerts[1].Message != "Coffee Beans is running low (5 g remaining)" {
		t.Errorf("unexpected message got=%s", alerts[1].Message)
	}
}

func TestGetLowStockItems(t *testing.T) {
	svc, _, _ := setupService()

	items := svc.GetLowStockItems()

	if len(items) != 2 {
		t.Fatalf("unexpected item count got=%d want=%d", len(items), 2)
	}
	if items[0].Item != "Sugar" || items[0].Urgency != inventory.UrgencyCritical {
		t.Errorf("unexpected first item got=%+v", items[0])
	}
	if items[1].Item != "Coffee Beans" || items[1].Urgency != inventory.UrgencyLow {
		t.Errorf("unexpected second item got=%+v", items[1])
	}
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name  string
		item  string
		money string

		wantSuccess   bool
		wantMessage   string
		wantSpent     string
		wantRemaining string
		wantStock     int64
		wantPurchases int
		wantRestocks  int
	}{
		{
			name:          "successful refill",
			item:          "Coffee Beans",
			money:         "50.00",
			wantSuccess:   true,
			wantMessage:   "Successfully refilled Coffee Beans! Added 95 g",
			wantSpent:     "14.25",
			wantRemaining: "35.75",
			wantStock:     100,
			wantPurchases: 1,
			wantRestocks:  1,
		},
		{
			name:          "insufficient funds",
			item:          "Coffee Beans",
			money:         "1.00",
			wantMessage:   "Not enough money. Need $14.25, have $1.00",
			wantSpent:     "0.00",
			wantRemaining: "1.00",
			wantStock:     5,
		},
		{
			name:          "already at capacity",
			item:          "Water",
			money:         "50.00",
			wantMessage:   "Already at maximum capacity",
			wantSpent:     "0.00",
			wantRemaining: "50.00",
			wantStock:     1000,
		},
		{
			name:          "invalid item",
			item:          "Dragon Fruit",
			money:         "50.00",
			wantMessage:   "Invalid item",
			wantSpent:     "0.00",
			wantRemaining: "50.00",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, recorder, _ := setupService()

			got := svc.Purchase(context.Background(), test.item, decimal.RequireFromString(test.money))

			if got.Success != test.wantSuccess {
				t.Errorf("unexpected success got=%v want=%v", got.Success, test.wantSuccess)
			}
			if got.Message != test.wantMessage {
				t.Errorf("unexpected message got=%s want=%s", got.Message, test.wantMessage)
			}
			if got.MoneySpent.StringFixed(2) != test.wantSpent {
				t.Errorf("unexpected spent got=%s want=%s", got.MoneySpent.StringFixed(2), test.wantSpent)
			}
			if got.MoneyRemaining.StringFixed(2) != test.wantRemaining {
				t.Errorf("unexpected remaining got=%s want=%s", got.MoneyRemaining.StringFixed(2), test.wantRemaining)
			}

			if test.item != "Dragon Fruit" {
				stats := svc.GetStats()
				if stats[test.item].Current != test.wantStock {
					t.Errorf("unexpected stock got=%d want=%d", stats[test.item].Current, test.wantStock)
				}
			}

			recorder.VerifyCount("RecordPurchase", test.wantPurchases, t)
			recorder.VerifyCount("RecordRestock", test.wantRestocks, t)
		})
	}
}

func TestShoppingList(t *testing.T) {
	svc, _, _ := setupService()

	list := svc.ShoppingList(decimal.RequireFromString("10.00"))

	// Beans and sugar are below threshold, water is full and not listed.
	if len(list) != 2 {
		t.Fatalf("unexpected list length got=%d want=%d", len(list), 2)
	}
	for _, item := range list {
		if item.Item == "Water" {
			t.Errorf("full ingredient should not be listed")
		}
		if item.Priority != inventory.PriorityHigh {
			t.Errorf("unexpected priority for %s got=%s", item.Item, item.Priority)
		}
	}

	// Both are high priority. Sugar costs 5.00 and is affordable with 10.00,
	// beans cost 14.25 and are not, so sugar sorts first.
	if list[0].Item != "Sugar" {
		t.Errorf("unexpected first item got=%s want=%s", list[0].Item, "Sugar")
	}
	if !list[0].Affordable || list[1].Affordable {
		t.Errorf("unexpected affordability got=[%v %v]", list[0].Affordable, list[1].Affordable)
	}
}

func TestSubscribeInventory(t *testing.T) {
	svc, _, _ := setupService()

	ch := make(chan map[string]inventory.IngredientStats, 1)
	id := svc.SubscribeInventory(ch)
	defer svc.UnsubscribeInventory(id)

	svc.Purchase(context.Background(), "Coffee Beans", decimal.RequireFromString("50.00"))

	select {
	case stats := <-ch:
		if stats["Coffee Beans"].Current != 100 {
			t.Errorf("unexpected stock in update got=%d want=%d", stats["Coffee Beans"].Current, 100)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for inventory update")
	}
}
