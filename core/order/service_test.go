package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core"
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/order"
	"github.com/brewsim/coffeeshop/core/payment"
)

type testDeps struct {
	resolver *order.MockResolver
	inv      *order.MockInventory
	payments *order.MockPayments
	notifier *order.MockOrderNotifier
}

func setupService() (order.Service, testDeps) {
	deps := testDeps{
		resolver: order.NewMockResolver(),
		inv:      order.NewMockInventory(),
		payments: order.NewMockPayments(),
		notifier: order.NewMockOrderNotifier(),
	}
	svc := order.NewService(deps.resolver, deps.inv, deps.payments, deps.notifier)
	return svc, deps
}

func latte() catalog.Item {
	return catalog.Item{
		ID:    "medium_oatmilk_hot_latte",
		Name:  "medium oatmilk hot latte",
		Kind:  catalog.KindCoffee,
		Price: decimal.RequireFromString("4.70"),
		Ingredients: map[string]int64{
			"Water":        160,
			"Coffee Beans": 14,
			"Oat Milk":     110,
		},
	}
}

func TestFulfill(t *testing.T) {
	tests := []struct {
		name      string
		req       order.Request
		configure func(deps testDeps)

		wantErr       error
		wantPayments  int
		wantDeducts   int
	}{
		{
			name:    "invalid order type",
			req:     order.Request{Type: "tea", ItemID: "earl_grey", PaymentMethod: payment.MethodCash},
			wantErr: core.ErrInvalidOrderType,
		},
		{
			name: "unknown item",
			req:  order.Request{Type: "coffee", ItemID: "mystery_brew", PaymentMethod: payment.MethodCash},
			configure: func(deps testDeps) {
				deps.resolver.ResolveFunc = func(kind catalog.Kind, id string) (catalog.Item, error) {
					return catalog.Item{}, core.ErrItemNotFound
				}
			},
			wantErr: core.ErrItemNotFound,
		},
		{
			name: "ingredients unavailable",
			req:  order.Request{Type: "coffee", ItemID: "medium_oatmilk_hot_latte", PaymentMethod: payment.MethodCash},
			configure: func(deps testDeps) {
				deps.resolver.ResolveFunc = func(kind catalog.Kind, id string) (catalog.Item, error) {
					return latte(), nil
				}
				deps.inv.CheckAvailabilityFunc = func(requirements map[string]int64) inventory.Availability {
					return inventory.Availability{Missing: []string{"Oat Milk"}}
				}
			},
			wantErr: core.ErrInsufficientInventory,
		},
		{
			name: "payment declined",
			req:  order.Request{Type: "coffee", ItemID: "medium_oatmilk_hot_latte", PaymentMethod: payment.MethodCash},
			configure: func(deps testDeps) {
				deps.resolver.ResolveFunc = func(kind catalog.Kind, id string) (catalog.Item, error) {
					return latte(), nil
				}
				deps.payments.ProcessPaymentFunc = func(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result {
					return payment.Result{Success: false, Message: "Insufficient cash. Need $4.70, got $2.00"}
				}
			},
			wantErr:      core.ErrPaymentFailed,
			wantPayments: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, deps := setupService()
			if test.configure != nil {
				test.configure(deps)
			}

			_, err := svc.Fulfill(context.Background(), test.req)

			if !errors.Is(err, test.wantErr) {
				t.Errorf("unexpected error got=%v want=%v", err, test.wantErr)
			}
			deps.payments.VerifyCount("ProcessPayment", test.wantPayments, t)
			deps.inv.VerifyCount("Deduct", test.wantDeducts, t)
		})
	}
}

func TestFulfillSuccess(t *testing.T) {
	svc, deps := setupService()

	deps.resolver.ResolveFunc = func(kind catalog.Kind, id string) (catalog.Item, error) {
		return latte(), nil
	}
	deps.payments.ProcessPaymentFunc = func(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result {
		if amountDue.StringFixed(2) != "4.70" {
			t.Errorf("unexpected amount due got=%s want=%s", amountDue.StringFixed(2), "4.70")
		}
		return payment.Result{Success: true, TransactionID: "tx-1"}
	}

	var deducted map[string]int64
	deps.inv.DeductFunc = func(ctx context.Context, requirements map[string]int64, orderKind, productName string) {
		deducted = requirements
	}

	published := make(chan order.Event, 1)
	deps.notifier.NotifyOrderFunc = func(ctx context.Context, event order.Event) error {
		published <- event
		return nil
	}

	got, err := svc.Fulfill(context.Background(), order.Request{
		Type:          "coffee",
		ItemID:        "medium_oatmilk_hot_latte",
		PaymentMethod: payment.MethodCash,
		PaymentDetails: payment.Details{
			CashTendered: decimal.RequireFromString("5.00"),
		},
	})

	if err != nil {
		t.Fatalf("did not want error, got=%v", err)
	}
	if !got.Success || !got.InventoryUpdated {
		t.Errorf("unexpected result got=%+v", got)
	}
	if got.Item.Name != "medium oatmilk hot latte" {
		t.Errorf("unexpected item got=%s", got.Item.Name)
	}
	if got.Payment.TransactionID != "tx-1" {
		t.Errorf("unexpected transaction id got=%s", got.Payment.TransactionID)
	}

	deps.resolver.VerifyCount("Resolve", 1, t)
	deps.inv.VerifyCount("CheckAvailability", 1, t)
	deps.payments.VerifyCount("ProcessPayment", 1, t)
	deps.inv.VerifyCount("Deduct", 1, t)

	// The full recipe reaches the ledger.
	if deducted["Water"] != 160 || deducted["Coffee Beans"] != 14 || deducted["Oat Milk"] != 110 {
		t.Errorf("unexpected deductions got=%v", deducted)
	}

	select {
	case event := <-published:
		if event.Item != "medium oatmilk hot latte" || event.Price != "4.70" {
			t.Errorf("unexpected event got=%+v", event)
		}
		if event.TransactionID != "tx-1" {
			t.Errorf("unexpected event transaction id got=%s", event.TransactionID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for order event")
	}
}

func TestFulfillAgainstRealMenu(t *testing.T) {
	deps := testDeps{
		inv:      order.NewMockInventory(),
		payments: order.NewMockPayments(),
		notifier: order.NewMockOrderNotifier(),
	}
	svc := order.NewService(catalog.Default(), deps.inv, deps.payments, deps.notifier)

	got, err := svc.Fulfill(context.Background(), order.Request{
		Type:          "food",
		ItemID:        "plain_bagel",
		PaymentMethod: payment.MethodCard,
		PaymentDetails: payment.Details{
			CardNumber: "4111111111111111",
		},
	})

	if err != nil {
		t.Fatalf("did not want error, got=%v", err)
	}
	if got.Item.Name != "Plain Bagel" {
		t.Errorf("unexpected item got=%s", got.Item.Name)
	}
}
