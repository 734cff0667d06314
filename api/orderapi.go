package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/brewsim/coffeeshop/core"
	"github.com/brewsim/coffeeshop/core/order"
)

type OrderService interface {
	Fulfill(ctx context.Context, req order.Request) (order.Result, error)
}

type OrderApi struct {
	service OrderService
}

func NewOrderApi(service OrderService) *OrderApi {
	return &OrderApi{service: service}
}

func (a *OrderApi) ConfigureRouter(r chi.Router) {
	r.Post("/", a.Create)
}

func (a *OrderApi) Create(w http.ResponseWriter, r *http.Request) {
	data := &OrderRequestDto{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	result, err := a.service.Fulfill(r.Context(), data.Request)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidOrderType):
			Render(w, r, ErrInvalidRequest(err))
		case errors.Is(err, core.ErrItemNotFound):
			Render(w, r, ErrNotFound)
		case errors.Is(err, core.ErrInsufficientInventory):
			Render(w, r, ErrConflict(err))
		case errors.Is(err, core.ErrPaymentFailed):
			Render(w, r, ErrPaymentRequired(err))
		default:
			log.Err(err).Send()
			Render(w, r, ErrInternalServer)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	Render(w, r, NewOrderResponse(result))
}
