package api

import (
	"errors"
	"net/http"

	"github.com/brewsim/coffeeshop/core/order"
)

type OrderRequestDto struct {
	order.Request
}

func (o *OrderRequestDto) Bind(_ *http.Request) error {
	if o.Type == "" {
		return errors.New("type is required")
	}
	if o.ItemID == "" {
		return errors.New("itemId is required")
	}
	if o.PaymentMethod == "" {
		return errors.New("paymentMethod is required")
	}

	return nil
}

type OrderResponse struct {
	order.Result
}

func NewOrderResponse(result order.Result) *OrderResponse {
	return &OrderResponse{Result: result}
}

func (rd *OrderResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}
