package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/brewsim/coffeeshop/core/analytics"
)

const defaultHistoryDays = 7

// HistoryService serves the shop's append-only records.
type HistoryService interface {
	UsageHistory(days int) []analytics.UsageRecord
	PurchaseHistory(days int) []analytics.PurchaseRecord
	RestockHistory(days int) []analytics.RestockRecord
	TransactionHistory(days int) []analytics.Transaction
	DailyBreakdown(days int) []analytics.DailyEarnings
}

type HistoryApi struct {
	service HistoryService
}

func NewHistoryApi(service HistoryService) *HistoryApi {
	return &HistoryApi{service: service}
}

func (a *HistoryApi) ConfigureRouter(r chi.Router) {
	r.Use(Paginate)

	r.Get("/usage", a.GetUsage)
	r.Get("/purchases", a.GetPurchases)
	r.Get("/restocks", a.GetRestocks)
	r.Get("/transactions", a.GetTransactions)
	r.Get("/daily", a.GetDailyBreakdown)
}

func (a *HistoryApi) GetUsage(w http.ResponseWriter, r *http.Request) {
	records := a.service.UsageHistory(daysParam(r))
	limit, offset := pageBounds(r, len(records))
	RenderList(w, r, NewUsageListResponse(records[offset:limit]))
}

func (a *HistoryApi) GetPurchases(w http.ResponseWriter, r *http.Request) {
	records := a.service.PurchaseHistory(daysParam(r))
	limit, offset := pageBounds(r, len(records))
	RenderList(w, r, NewPurchaseListResponse(records[offset:limit]))
}

func (a *HistoryApi) GetRestocks(w http.ResponseWriter, r *http.Request) {
	records := a.service.RestockHistory(daysParam(r))
	limit, offset := pageBounds(r, len(records))
	RenderList(w, r, NewRestockListResponse(records[offset:limit]))
}

func (a *HistoryApi) GetTransactions(w http.ResponseWriter, r *http.Request) {
	records := a.service.TransactionHistory(daysParam(r))
	limit, offset := pageBounds(r, len(records))
	RenderList(w, r, NewTransactionListResponse(records[offset:limit]))
}

func (a *HistoryApi) GetDailyBreakdown(w http.ResponseWriter, r *http.Request) {
	RenderList(w, r, NewDailyListResponse(a.service.DailyBreakdown(daysParam(r))))
}

func daysParam(r *http.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultHistoryDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return defaultHistoryDays
	}
	return days
}

// pageBounds clamps the Paginate context values to the record count and
// returns the slice bounds [offset:limit].
func pageBounds(r *http.Request, count int) (limit, offset int) {
	limit, _ = r.Context().Value(CtxKeyLimit).(int)
	offset, _ = r.Context().Value(CtxKeyOffset).(int)

	if offset > count {
		offset = count
	}
	limit = offset + limit
	if limit > count {
		limit = count
	}
	return limit, offset
}
