package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/core/payment"
)

type EarningsResponse struct {
	payment.EarningsSummary
}

func NewEarningsResponse(summary payment.EarningsSummary) *EarningsResponse {
	return &EarningsResponse{EarningsSummary: summary}
}

func (rd *EarningsResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type AnalyticsResponse struct {
	payment.Analytics
}

func NewAnalyticsResponse(analytics payment.Analytics) *AnalyticsResponse {
	return &AnalyticsResponse{Analytics: analytics}
}

func (rd *AnalyticsResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type PerformanceResponse struct {
	payment.PerformanceMetrics
}

func NewPerformanceResponse(metrics payment.PerformanceMetrics) *PerformanceResponse {
	return &PerformanceResponse{PerformanceMetrics: metrics}
}

func (rd *PerformanceResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type TipRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source,omitempty"`
}

func (p *TipRequest) Bind(_ *http.Request) error {
	if p.Amount.IsZero() {
		return errors.New("amount is required")
	}

	return nil
}

type TipResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount,omitempty"`
}

func (rd *TipResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	if !rd.Success {
		render.Status(r, http.StatusBadRequest)
	}
	return nil
}

type ShiftTargetRequest struct {
	Target decimal.Decimal `json:"target"`
}

func (p *ShiftTargetRequest) Bind(_ *http.Request) error {
	if !p.Target.IsPositive() {
		return errors.New("target must be greater than zero")
	}

	return nil
}
