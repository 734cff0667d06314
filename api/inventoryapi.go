package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/inventory"
)

type InventoryService interface {
	GetStats() map[string]inventory.IngredientStats
	GetAlerts() []inventory.Alert
	GetLowStockItems() []inventory.LowStockItem

	Purchase(ctx context.Context, item string, playerMoney decimal.Decimal) inventory.PurchaseResult
	ShoppingList(playerMoney decimal.Decimal) []inventory.ShoppingItem

	SubscribeInventory(ch chan<- map[string]inventory.IngredientStats) (id inventory.SubscriptionID)
	UnsubscribeInventory(id inventory.SubscriptionID)
}

type InventoryApi struct {
	service InventoryService
}

func NewInventoryApi(service InventoryService) *InventoryApi {
	return &InventoryApi{service: service}
}

func (a *InventoryApi) ConfigureRouter(r chi.Router) {
	r.HandleFunc("/subscribe", a.Subscribe)

	r.Get("/", a.GetStats)
	r.Get("/alerts", a.GetAlerts)
	r.Get("/low-stock", a.GetLowStockItems)
	r.Get("/shopping-list", a.GetShoppingList)
	r.Post("/purchase", a.Purchase)
}

// Subscribe streams real-time inventory updates to the client over a
// websocket connection.
//
// Note: This isn't exactly realistic because in the real world, this
// application would need to be able to scale. If it were scaled, clients
// would only get updates that occurred in their connected instance.
func (a *InventoryApi) Subscribe(w http.ResponseWriter, r *http.Request) {
	log.Info().Msg("client requesting inventory subscription")

	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Err(err).Msg("failed to establish inventory subscription connection")
		Render(w, r, ErrInternalServer)
		return
	}
	go func() {
		defer conn.Close()

		ch := make(chan map[string]inventory.IngredientStats, 1)

		id := a.service.SubscribeInventory(ch)
		defer func() {
			a.service.UnsubscribeInventory(id)
		}()

		for stats := range ch {
			resp := NewStatsResponse(stats)
			body, err := json.Marshal(resp)
			if err != nil {
				log.Err(err).Interface("clientId", id).Msg("failed to marshal stats response")
				continue
			}

			log.Debug().Interface("clientId", id).Msg("sending inventory update to client")
			err = wsutil.WriteServerText(conn, body)
			if err != nil {
				log.Err(err).Interface("clientId", id).Msg("failed to write server message, disconnecting client")
				return
			}
		}
	}()
}

func (a *InventoryApi) GetStats(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewStatsResponse(a.service.GetStats()))
}

func (a *InventoryApi) GetAlerts(w http.ResponseWriter, r *http.Request) {
	RenderList(w, r, NewAlertListResponse(a.service.GetAlerts()))
}

func (a *InventoryApi) GetLowStockItems(w http.ResponseWriter, r *http.Request) {
	RenderList(w, r, NewLowStockListResponse(a.service.GetLowStockItems()))
}

func (a *InventoryApi) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	money, err := moneyParam(r)
	if err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	Render(w, r, NewShoppingListResponse(a.service.ShoppingList(money), money))
}

func (a *InventoryApi) Purchase(w http.ResponseWriter, r *http.Request) {
	data := &PurchaseRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	result := a.service.Purchase(r.Context(), data.Item, data.Money)
	if !result.Success {
		render.Status(r, http.StatusBadRequest)
	}

	Render(w, r, NewPurchaseResponse(result))
}

func moneyParam(r *http.Request) (decimal.Decimal, error) {
	raw := r.URL.Query().Get("money")
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
