package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/brewsim/coffeeshop/core/staff"
)

type StaffApi struct {
	service staff.Service
}

func NewStaffApi(service staff.Service) *StaffApi {
	return &StaffApi{service: service}
}

func (a *StaffApi) ConfigureRouter(r chi.Router) {
	r.Post("/", a.Create)
}

func (a *StaffApi) Create(w http.ResponseWriter, r *http.Request) {
	data := &CreateStaffRequestDto{}
	if err := render.Bind(r, data); err != nil {
		log.Err(err).Send()
		Render(w, r, ErrInvalidRequest(err))
		return
	}

	created, err := a.service.Create(r.Context(), *data.CreateStaffRequest)
	if err != nil {
		log.Err(err).Send()
		Render(w, r, ErrInternalServer)
		return
	}

	render.Status(r, http.StatusCreated)
	Render(w, r, &StaffResponse{Username: created.Username, IsManager: created.IsManager})
}

type StaffResponse struct {
	Username  string `json:"username"`
	IsManager bool   `json:"isManager"`
}

func (rd *StaffResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type CreateStaffRequestDto struct {
	*staff.CreateStaffRequest
	Password string `json:"password,omitempty"`
}

func (p *CreateStaffRequestDto) Bind(_ *http.Request) error {
	if p.CreateStaffRequest == nil {
		return errors.New("missing required field(s)")
	}
	if p.Username == "" || p.Password == "" {
		return errors.New("missing required field(s)")
	}

	p.CreateStaffRequest.PlainTextPassword = p.Password

	return nil
}
