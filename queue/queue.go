package queue

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sksmith/bunnyq"
	"github.com/streadway/amqp"

	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/order"
)

// eventQueue publishes shop events to their exchanges. It satisfies both the
// ledger's and fulfillment's notifier interfaces.
type eventQueue struct {
	queue             *bunnyq.BunnyQ
	inventoryExchange string
	purchaseExchange  string
	orderExchange     string
}

func New(bq *bunnyq.BunnyQ, inventoryExchange, purchaseExchange, orderExchange string) *eventQueue {
	return &eventQueue{
		queue:             bq,
		inventoryExchange: inventoryExchange,
		purchaseExchange:  purchaseExchange,
		orderExchange:     orderExchange,
	}
}

func (q *eventQueue) NotifyInventory(ctx context.Context, stats map[string]inventory.IngredientStats) error {
	body, err := json.Marshal(stats)
	if err != nil {
		return errors.WithMessage(err, "failed to serialize inventory stats for queue")
	}
	if err = q.queue.Publish(ctx, q.inventoryExchange, body); err != nil {
		return errors.WithMessage(err, "failed to send inventory update to queue")
	}
	return nil
}

func (q *eventQueue) NotifyPurchase(ctx context.Context, event inventory.PurchaseEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithMessage(err, "failed to serialize purchase event for queue")
	}
	if err = q.queue.Publish(ctx, q.purchaseExchange, body); err != nil {
		return errors.WithMessage(err, "failed to send purchase event to queue")
	}
	return nil
}

func (q *eventQueue) NotifyOrder(ctx context.Context, event order.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithMessage(err, "failed to serialize order event for queue")
	}
	if err = q.queue.Publish(ctx, q.orderExchange, body); err != nil {
		return errors.WithMessage(err, "failed to send order event to queue")
	}
	return nil
}

// RestockCommand is a back-office instruction to refill one ingredient using
// the supplied budget.
type RestockCommand struct {
	Item  string          `json:"item"`
	Money decimal.Decimal `json:"money"`
}

// RestockQueue consumes refill commands published by the back office.
// Commands that cannot be parsed or fulfilled go to the dead letter exchange.
type RestockQueue struct {
	queue              *bunnyq.BunnyQ
	restockQueue       string
	restockDltExchange string
}

func NewRestockQueue(bq *bunnyq.BunnyQ, restockQueue, restockDltExchange string) *RestockQueue {
	return &RestockQueue{queue: bq, restockQueue: restockQueue, restockDltExchange: restockDltExchange}
}

type RestockHandler interface {
	Purchase(ctx context.Context, item string, playerMoney decimal.Decimal) inventory.PurchaseResult
}

func (q *RestockQueue) ConsumeRestocks(ctx context.Context, handler RestockHandler) {
	q.queue.Stream(ctx, q.restockQueue, func(delivery amqp.Delivery) {
		var cmd RestockCommand
		if err := json.Unmarshal(delivery.Body, &cmd); err != nil {
			log.Error().Err(err).Msg("error unmarshalling restock command, writing to dlt")
			q.sendToDlt(ctx, delivery.Body)
			return
		}

		result := handler.Purchase(ctx, cmd.Item, cmd.Money)
		if !result.Success {
			log.Error().
				Str("item", cmd.Item).
				Str("reason", result.Message).
				Msg("restock command failed, writing to dlt")
			q.sendToDlt(ctx, delivery.Body)
		}
	}, bunnyq.StreamOpAutoAck)
}

func (q *RestockQueue) sendToDlt(ctx context.Context, data []byte) {
	err := q.queue.Publish(ctx, q.restockDltExchange, data)
	if err != nil {
		log.Error().Err(err).Msg("error writing to dlt")
	}
}
