package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog/log"

	"github.com/brewsim/coffeeshop/core"
	"github.com/brewsim/coffeeshop/core/catalog"
)

type MenuService interface {
	Items() []catalog.Item
	ByCategory(kind catalog.Kind) map[string][]catalog.Item
	Search(query string) []catalog.Item
	Resolve(kind catalog.Kind, id string) (catalog.Item, error)
}

type MenuApi struct {
	service MenuService
}

func NewMenuApi(service MenuService) *MenuApi {
	return &MenuApi{service: service}
}

func (a *MenuApi) ConfigureRouter(r chi.Router) {
	r.Get("/", a.GetAll)
	r.Get("/coffee", a.GetCoffee)
	r.Get("/bakery", a.GetBakery)
	r.Get("/search", a.Search)
	r.Get("/{kind}/{id}", a.GetItem)
}

func (a *MenuApi) GetAll(w http.ResponseWriter, r *http.Request) {
	RenderList(w, r, NewItemListResponse(a.service.Items()))
}

func (a *MenuApi) GetCoffee(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewMenuResponse(a.service.ByCategory(catalog.KindCoffee)))
}

func (a *MenuApi) GetBakery(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewMenuResponse(a.service.ByCategory(catalog.KindFood)))
}

func (a *MenuApi) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		Render(w, r, ErrInvalidRequest(errors.New("q is required")))
		return
	}

	RenderList(w, r, NewItemListResponse(a.service.Search(query)))
}

func (a *MenuApi) GetItem(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	item, err := a.service.Resolve(kind, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			Render(w, r, ErrNotFound)
		} else {
			log.Err(err).Send()
			Render(w, r, ErrInternalServer)
		}
		return
	}

	Render(w, r, NewItemResponse(item))
}
