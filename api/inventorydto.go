package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/inventory"
)

type StatsResponse struct {
	Inventory map[string]inventory.IngredientStats `json:"inventory"`
}

func NewStatsResponse(stats map[string]inventory.IngredientStats) *StatsResponse {
	return &StatsResponse{Inventory: stats}
}

func (rd *StatsResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type AlertResponse struct {
	inventory.Alert
}

func (rd *AlertResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewAlertListResponse(alerts []inventory.Alert) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, alert := range alerts {
		list = append(list, &AlertResponse{Alert: alert})
	}
	return list
}

type LowStockResponse struct {
	inventory.LowStockItem
}

func (rd *LowStockResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewLowStockListResponse(items []inventory.LowStockItem) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, item := range items {
		list = append(list, &LowStockResponse{LowStockItem: item})
	}
	return list
}

type ShoppingListResponse struct {
	Items  []inventory.ShoppingItem `json:"items"`
	Budget decimal.Decimal          `json:"budget"`
}

func NewShoppingListResponse(items []inventory.ShoppingItem, budget decimal.Decimal) *ShoppingListResponse {
	if items == nil {
		items = []inventory.ShoppingItem{}
	}
	return &ShoppingListResponse{Items: items, Budget: budget}
}

func (rd *ShoppingListResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type PurchaseRequest struct {
	Item  string          `json:"item"`
	Money decimal.Decimal `json:"money"`
}

func (p *PurchaseRequest) Bind(_ *http.Request) error {
	if p.Item == "" {
		return errors.New("item is required")
	}
	if p.Money.IsNegative() {
		return errors.New("money must not be negative")
	}

	return nil
}

type PurchaseResponse struct {
	inventory.PurchaseResult
}

func NewPurchaseResponse(result inventory.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{PurchaseResult: result}
}

func (rd *PurchaseResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}
