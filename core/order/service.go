package order

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core"
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/payment"
)

// Resolver maps an external item identifier onto a menu item.
type Resolver interface {
	Resolve(kind catalog.Kind, id string) (catalog.Item, error)
}

// Inventory is the slice of the stock ledger that fulfillment needs.
type Inventory interface {
	CheckAvailability(requirements map[string]int64) inventory.Availability
	Deduct(ctx context.Context, requirements map[string]int64, orderKind, productName string)
}

// Payments settles the bill for a resolved order.
type Payments interface {
	ProcessPayment(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result
}

// Notifier publishes completed orders. Fire-and-forget; a failed publication
// never fails the order.
type Notifier interface {
	NotifyOrder(ctx context.Context, event Event) error
}

type Service interface {
	Fulfill(ctx context.Context, req Request) (Result, error)
}

func NewService(resolver Resolver, inv Inventory, payments Payments, notifier Notifier) *service {
	return &service{
		resolver: resolver,
		inv:      inv,
		payments: payments,
		notifier: notifier,
	}
}

type service struct {
	resolver Resolver
	inv      Inventory
	payments Payments
	notifier Notifier
}

// Fulfill runs one order end to end: resolve the item, confirm stock, take
// payment, then deduct ingredients. Payment is only attempted once stock is
// confirmed, and stock is only deducted once payment succeeds, so a customer
// is never charged for an order the shop cannot make.
func (s *service) Fulfill(ctx context.Context, req Request) (Result, error) {
	const funcName = "Fulfill"

	kind, err := catalog.ParseKind(req.Type)
	if err != nil {
		return Result{}, errors.WithMessagef(core.ErrInvalidOrderType, "order type %q", req.Type)
	}

	item, err := s.resolver.Resolve(kind, req.ItemID)
	if err != nil {
		return Result{}, errors.WithMessagef(err, "item %q", req.ItemID)
	}

	ingredients, requirements := catalog.RecipeFor(item)
	log.Info().
		Str("func", funcName).
		Str("item", item.Name).
		Str("kind", string(kind)).
		Str("method", string(req.PaymentMethod)).
		Strs("ingredients", ingredients).
		Msg("fulfilling order")

	availability := s.inv.CheckAvailability(requirements)
	if !availability.OK {
		return Result{}, errors.WithMessagef(core.ErrInsufficientInventory,
			"missing %s", strings.Join(availability.Missing, ", "))
	}

	pr := s.payments.ProcessPayment(ctx, req.PaymentMethod, item.Price, req.PaymentDetails)
	if !pr.Success {
		return Result{}, errors.WithMessage(core.ErrPaymentFailed, pr.Message)
	}

	s.inv.Deduct(ctx, requirements, string(kind), item.Name)

	result := Result{
		Success:          true,
		Item:             item,
		Payment:          pr,
		InventoryUpdated: true,
	}

	s.publishOrder(Event{
		Kind:             kind,
		Item:             item.Name,
		Price:            item.Price.StringFixed(2),
		TransactionID:    pr.TransactionID,
		InventoryUpdated: true,
		PaymentMethod:    req.PaymentMethod,
	})

	return result, nil
}

func (s *service) publishOrder(event Event) {
	go func() {
		if err := s.notifier.NotifyOrder(context.Background(), event); err != nil {
			log.Warn().Err(err).Str("item", event.Item).Msg("failed to publish order event")
		}
	}()
}
