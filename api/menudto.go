package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/brewsim/coffeeshop/core/catalog"
)

type ItemResponse struct {
	catalog.Item
}

func NewItemResponse(item catalog.Item) *ItemResponse {
	return &ItemResponse{Item: item}
}

func (rd *ItemResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewItemListResponse(items []catalog.Item) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, item := range items {
		list = append(list, NewItemResponse(item))
	}
	return list
}

type MenuResponse struct {
	Categories map[string][]catalog.Item `json:"categories"`
}

func NewMenuResponse(categories map[string][]catalog.Item) *MenuResponse {
	return &MenuResponse{Categories: categories}
}

func (rd *MenuResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}
