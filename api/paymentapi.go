package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/payment"
	"github.com/brewsim/coffeeshop/core/staff"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, method payment.Method, amountDue decimal.Decimal, details payment.Details) payment.Result
	AddTip(ctx context.Context, amount decimal.Decimal, source string) bool

	EarningsSummary() payment.EarningsSummary
	PaymentAnalytics() payment.Analytics
	PerformanceMetrics() payment.PerformanceMetrics

	SetShiftTarget(target decimal.Decimal)
	ResetShift()
}

type EarningsApi struct {
	service PaymentService
	staff   staff.Service
}

func NewEarningsApi(service PaymentService, staffSvc staff.Service) *EarningsApi {
	return &EarningsApi{service: service, staff: staffSvc}
}

func (a *EarningsApi) ConfigureRouter(r chi.Router) {
	r.Get("/", a.GetSummary)
	r.Get("/analytics", a.GetAnalytics)
	r.Get("/performance", a.GetPerformance)
	r.Post("/tip", a.AddTip)

	r.With(Authenticate(a.staff), ManagerOnly).Route("/shift", func(r chi.Router) {
		r.Post("/target", a.SetTarget)
		r.Post("/reset", a.ResetShift)
	})
}

func (a *EarningsApi) GetSummary(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewEarningsResponse(a.service.EarningsSummary()))
}

func (a *EarningsApi) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewAnalyticsResponse(a.service.PaymentAnalytics()))
}

func (a *EarningsApi) GetPerformance(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewPerformanceResponse(a.service.PerformanceMetrics()))
}

func (a *EarningsApi) AddTip(w http.ResponseWriter, r *http.Request) {
	data := &TipRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	if !a.service.AddTip(r.Context(), data.Amount, data.Source) {
		Render(w, r, &TipResponse{Success: false, Message: "Tip must be greater than zero"})
		return
	}

	Render(w, r, &TipResponse{Success: true, Message: "Thanks for the tip!", Amount: data.Amount})
}

func (a *EarningsApi) SetTarget(w http.ResponseWriter, r *http.Request) {
	data := &ShiftTargetRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	a.service.SetShiftTarget(data.Target)
	Render(w, r, NewEarningsResponse(a.service.EarningsSummary()))
}

func (a *EarningsApi) ResetShift(w http.ResponseWriter, r *http.Request) {
	a.service.ResetShift()
	Render(w, r, NewEarningsResponse(a.service.EarningsSummary()))
}
