package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/brewsim/coffeeshop/core/analytics"
)

type UsageResponse struct {
	analytics.UsageRecord
}

func (rd *UsageResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewUsageListResponse(records []analytics.UsageRecord) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, record := range records {
		list = append(list, &UsageResponse{UsageRecord: record})
	}
	return list
}

type PurchaseRecordResponse struct {
	analytics.PurchaseRecord
}

func (rd *PurchaseRecordResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewPurchaseListResponse(records []analytics.PurchaseRecord) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, record := range records {
		list = append(list, &PurchaseRecordResponse{PurchaseRecord: record})
	}
	return list
}

type RestockResponse struct {
	analytics.RestockRecord
}

func (rd *RestockResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewRestockListResponse(records []analytics.RestockRecord) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, record := range records {
		list = append(list, &RestockResponse{RestockRecord: record})
	}
	return list
}

type TransactionResponse struct {
	analytics.Transaction
}

func (rd *TransactionResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewTransactionListResponse(records []analytics.Transaction) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, record := range records {
		list = append(list, &TransactionResponse{Transaction: record})
	}
	return list
}

type DailyResponse struct {
	analytics.DailyEarnings
}

func (rd *DailyResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewDailyListResponse(days []analytics.DailyEarnings) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, day := range days {
		list = append(list, &DailyResponse{DailyEarnings: day})
	}
	return list
}
