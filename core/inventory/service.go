package inventory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core"
)

// Recorder receives append-only history entries for every stock mutation.
type Recorder interface {
	RecordUsage(item string, quantity int64, orderKind, product string, remaining int64)
	RecordPurchase(item string, amountAdded int64, cost decimal.Decimal, newStock int64)
	RecordRestock(item string, requested, actual int64, method string, cost decimal.Decimal, newStock int64)
}

// Notifier pushes inventory events to the outside world. Publication is
// fire-and-forget: the ledger never fails or delays a committed mutation
// because a notification could not be delivered.
type Notifier interface {
	NotifyInventory(ctx context.Context, stats map[string]IngredientStats) error
	NotifyPurchase(ctx context.Context, event PurchaseEvent) error
}

type Service interface {
	CheckAvailability(requirements map[string]int64) Availability
	Deduct(ctx context.Context, requirements map[string]int64, orderKind, productName string)

	GetStats() map[string]IngredientStats
	GetAlerts() []Alert
	GetLowStockItems() []LowStockItem

	Purchase(ctx context.Context, item string, playerMoney decimal.Decimal) PurchaseResult
	ShoppingList(playerMoney decimal.Decimal) []ShoppingItem

	SubscribeInventory(ch chan<- map[string]IngredientStats) (id SubscriptionID)
	UnsubscribeInventory(id SubscriptionID)
}

type SubscriptionID string

func NewService(cfg Config, recorder Recorder, notifier Notifier) *service {
	s := &service{
		ingredients: make(map[string]*Ingredient, len(cfg.Ingredients)),
		recorder:    recorder,
		notifier:    notifier,
		subs:        make(map[SubscriptionID]chan<- map[string]IngredientStats),
	}

	for _, ic := range cfg.Ingredients {
		stock := ic.InitialStock
		if stock > ic.MaxCapacity {
			stock = ic.MaxCapacity
		}
		if stock < 0 {
			stock = 0
		}
		s.ingredients[ic.Name] = &Ingredient{
			Name:         ic.Name,
			CurrentStock: stock,
			MaxCapacity:  ic.MaxCapacity,
			LowThreshold: ic.LowThreshold,
			Unit:         ic.Unit,
			PricePerUnit: ic.PricePerUnit,
		}
		s.names = append(s.names, ic.Name)
	}
	sort.Strings(s.names)

	return s
}

// service serializes all stock access behind one mutex. Handlers dispatch
// concurrently; without it two refills could both read the same stock level
// and charge the same cost twice.
type service struct {
	mu          sync.Mutex
	ingredients map[string]*Ingredient
	names       []string

	recorder Recorder
	notifier Notifier

	subMu sync.Mutex
	subs  map[SubscriptionID]chan<- map[string]IngredientStats
}

// CheckAvailability verifies a recipe against current stock. Unknown
// ingredients count as zero stock.
func (s *service) CheckAvailability(requirements map[string]int64) Availability {
	s.mu.Lock()
	defer s.mu.Unlock()

	missing := []string{}
	for item, quantity := range requirements {
		ing, ok := s.ingredients[item]
		if !ok || ing.CurrentStock < quantity {
			missing = append(missing, item)
		}
	}
	sort.Strings(missing)

	return Availability{OK: len(missing) == 0, Missing: missing}
}

// Deduct applies a recipe to stock, best-effort per item: each ingredient is
// decremented independently if sufficient and silently skipped otherwise.
// Callers must have confirmed availability first; an ingredient that changed
// between the check and the deduct is skipped, not rolled back.
func (s *service) Deduct(ctx context.Context, requirements map[string]int64, orderKind, productName string) {
	const funcName = "Deduct"

	items := make([]string, 0, len(requirements))
	for item := range requirements {
		items = append(items, item)
	}
	sort.Strings(items)

	type usage struct {
		item      string
		quantity  int64
		remaining int64
	}
	var usages []usage

	s.mu.Lock()
	for _, item := range items {
		quantity := requirements[item]
		ing, ok := s.ingredients[item]
		if !ok || ing.CurrentStock < quantity {
			log.Debug().
				Str("func", funcName).
				Str("item", item).
				Int64("quantity", quantity).
				Msg("skipping deduction, insufficient stock")
			continue
		}
		ing.CurrentStock -= quantity
		usages = append(usages, usage{item: item, quantity: quantity, remaining: ing.CurrentStock})
	}
	s.mu.Unlock()

	for _, u := range usages {
		s.recorder.RecordUsage(u.item, u.quantity, orderKind, productName, u.remaining)
	}

	if len(usages) > 0 {
		s.publishInventory()
	}
}

func (s *service) GetStats() map[string]IngredientStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *service) statsLocked() map[string]IngredientStats {
	stats := make(map[string]IngredientStats, len(s.ingredients))
	for name, ing := range s.ingredients {
		stats[name] = IngredientStats{
			Current:      ing.CurrentStock,
			Max:          ing.MaxCapacity,
			Percentage:   percentage(ing.CurrentStock, ing.MaxCapacity),
			Status:       StatusOf(*ing),
			LowThreshold: ing.LowThreshold,
			Unit:         ing.Unit,
			PricePerUnit: ing.PricePerUnit,
			RefillCost:   RefillCost(*ing),
		}
	}
	return stats
}

// GetAlerts lists ingredients needing attention, critical before warning.
func (s *service) GetAlerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var criticals, warnings []Alert
	for _, name := range s.names {
		ing := s.ingredients[name]
		switch {
		case ing.CurrentStock <= 0:
			criticals = append(criticals, Alert{
				Item:       name,
				Level:      AlertCritical,
				Message:    fmt.Sprintf("%s is out of stock!", name),
				Action:     "restock_immediately",
				RefillCost: RefillCost(*ing),
			})
		case ing.CurrentStock <= ing.LowThreshold:
			warnings = append(warnings, Alert{
				Item:       name,
				Level:      AlertWarning,
				Message:    fmt.Sprintf("%s is running low (%d %s remaining)", name, ing.CurrentStock, ing.Unit),
				Action:     "restock_soon",
				RefillCost: RefillCost(*ing),
			})
		}
	}

	return append(criticals, warnings...)
}

// GetLowStockItems lists ingredients at or under their threshold, most
// urgent first.
func (s *service) GetLowStockItems() []LowStockItem {
	s.mu.Lock()

	var items []LowStockItem
	for _, name := range s.names {
		ing := s.ingredients[name]
		if ing.CurrentStock > ing.LowThreshold {
			continue
		}
		urgency := UrgencyLow
		if ing.CurrentStock <= 0 {
			urgency = UrgencyCritical
		}
		items = append(items, LowStockItem{
			Item:       name,
			Current:    ing.CurrentStock,
			Threshold:  ing.LowThreshold,
			Max:        ing.MaxCapacity,
			Urgency:    urgency,
			RefillCost: RefillCost(*ing),
			Unit:       ing.Unit,
		})
	}
	s.mu.Unlock()

	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := items[i].Urgency == UrgencyCritical, items[j].Urgency == UrgencyCritical
		if ci != cj {
			return ci
		}
		return items[i].Current < items[j].Current
	})

	return items
}

// Purchase refills one ingredient to capacity, charging the refill cost
// against the player's money. Partial refills are not supported.
func (s *service) Purchase(ctx context.Context, item string, playerMoney decimal.Decimal) PurchaseResult {
	const funcName = "Purchase"

	log.Info().
		Str("func", funcName).
		Str("item", item).
		Str("playerMoney", playerMoney.StringFixed(2)).
		Msg("purchasing refill")

	s.mu.Lock()

	ing, ok := s.ingredients[item]
	if !ok {
		s.mu.Unlock()
		return PurchaseResult{
			Success:        false,
			Message:        "Invalid item",
			MoneySpent:     decimal.Zero,
			MoneyRemaining: playerMoney,
		}
	}

	check := CanAfford(*ing, playerMoney)
	if !check.OK {
		s.mu.Unlock()
		return PurchaseResult{
			Success:        false,
			Message:        affordFailureMessage(check, playerMoney),
			MoneySpent:     decimal.Zero,
			MoneyRemaining: playerMoney,
		}
	}

	ing.CurrentStock = ing.MaxCapacity
	newStock := ing.CurrentStock
	unit := ing.Unit
	s.mu.Unlock()

	s.recorder.RecordPurchase(item, check.Needed, check.Cost, newStock)
	s.recorder.RecordRestock(item, check.Needed, check.Needed, "purchase", check.Cost, newStock)

	remaining := playerMoney.Sub(check.Cost)
	s.publishInventory()
	s.publishPurchase(PurchaseEvent{
		Item:           item,
		Cost:           check.Cost,
		NewInventory:   newStock,
		MoneyRemaining: remaining,
	})

	return PurchaseResult{
		Success:        true,
		Message:        fmt.Sprintf("Successfully refilled %s! Added %d %s", item, check.Needed, unit),
		MoneySpent:     check.Cost,
		MoneyRemaining: remaining,
		Item:           item,
		AmountAdded:    check.Needed,
		NewStock:       newStock,
	}
}

// ShoppingList prices a refill for every ingredient below capacity, most
// urgent and affordable first, cheapest breaking ties.
func (s *service) ShoppingList(playerMoney decimal.Decimal) []ShoppingItem {
	s.mu.Lock()

	var list []ShoppingItem
	for _, name := range s.names {
		ing := s.ingredients[name]
		needed := ing.MaxCapacity - ing.CurrentStock
		if needed <= 0 {
			continue
		}

		cost := RefillCost(*ing)
		priority := PriorityLow
		if ing.CurrentStock <= ing.LowThreshold {
			priority = PriorityHigh
		}

		list = append(list, ShoppingItem{
			Item:       name,
			Current:    ing.CurrentStock,
			Max:        ing.MaxCapacity,
			Needed:     needed,
			Cost:       cost,
			Affordable: playerMoney.GreaterThanOrEqual(cost),
			Priority:   priority,
			Unit:       ing.Unit,
			Percentage: percentage(ing.CurrentStock, ing.MaxCapacity),
		})
	}
	s.mu.Unlock()

	sort.SliceStable(list, func(i, j int) bool {
		hi, hj := list[i].Priority == PriorityHigh, list[j].Priority == PriorityHigh
		if hi != hj {
			return hi
		}
		if list[i].Affordable != list[j].Affordable {
			return list[i].Affordable
		}
		return list[i].Cost.LessThan(list[j].Cost)
	})

	return list
}

func (s *service) SubscribeInventory(ch chan<- map[string]IngredientStats) (id SubscriptionID) {
	id = SubscriptionID(uuid.NewString())
	s.subMu.Lock()
	s.subs[id] = ch
	s.subMu.Unlock()
	log.Debug().Interface("clientId", id).Msg("subscribing to inventory")
	return id
}

func (s *service) UnsubscribeInventory(id SubscriptionID) {
	log.Debug().Interface("clientId", id).Msg("unsubscribing from inventory")
	s.subMu.Lock()
	if ch, ok := s.subs[id]; ok {
		close(ch)
		delete(s.subs, id)
	}
	s.subMu.Unlock()
}

func (s *service) publishInventory() {
	stats := s.GetStats()
	go func() {
		if err := s.notifier.NotifyInventory(context.Background(), stats); err != nil {
			log.Warn().Err(err).Msg("failed to publish inventory update")
		}
		s.notifySubscribers(stats)
	}()
}

func (s *service) publishPurchase(event PurchaseEvent) {
	go func() {
		if err := s.notifier.NotifyPurchase(context.Background(), event); err != nil {
			log.Warn().Err(err).Str("item", event.Item).Msg("failed to publish purchase event")
		}
	}()
}

func (s *service) notifySubscribers(stats map[string]IngredientStats) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		log.Debug().Interface("clientId", id).Msg("notifying subscriber of inventory update")
		ch <- stats
	}
}

func affordFailureMessage(check AffordCheck, playerMoney decimal.Decimal) string {
	if errors.Is(check.Reason, core.ErrAlreadyAtCapacity) {
		return "Already at maximum capacity"
	}
	return fmt.Sprintf("Not enough money. Need $%s, have $%s",
		check.Cost.StringFixed(2), playerMoney.StringFixed(2))
}

func percentage(current, max int64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(float64(current)/float64(max)*1000) / 10
}
