package api

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/brewsim/coffeeshop/config"
	"github.com/brewsim/coffeeshop/core/staff"
)

// Services collects everything the router serves.
type Services struct {
	Inventory InventoryService
	Order     OrderService
	Payment   PaymentService
	History   HistoryService
	Menu      MenuService
	Staff     staff.Service
}

func ConfigureRouter(cfg *config.Config, svc Services) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost*", "https://localhost*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(Logging)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("UP"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/env", NewEnvApi(cfg).ConfigureRouter)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", NewInventoryApi(svc.Inventory).ConfigureRouter)
		r.Route("/order", NewOrderApi(svc.Order).ConfigureRouter)
		r.Route("/menu", NewMenuApi(svc.Menu).ConfigureRouter)
		r.Route("/earnings", NewEarningsApi(svc.Payment, svc.Staff).ConfigureRouter)
		r.Route("/history", NewHistoryApi(svc.History).ConfigureRouter)
		r.With(Authenticate(svc.Staff), ManagerOnly).Route("/staff", NewStaffApi(svc.Staff).ConfigureRouter)
	})

	return r
}

func Render(w http.ResponseWriter, r *http.Request, rnd render.Renderer) {
	if err := render.Render(w, r, rnd); err != nil {
		log.Warn().Err(err).Msg("failed to render")
	}
}

func RenderList(w http.ResponseWriter, r *http.Request, l []render.Renderer) {
	if err := render.RenderList(w, r, l); err != nil {
		log.Warn().Err(err).Msg("failed to render")
	}
}
