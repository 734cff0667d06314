package api

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/brewsim/coffeeshop/config"
)

type EnvApi struct {
	cfg *config.Config
}

func NewEnvApi(cfg *config.Config) *EnvApi {
	return &EnvApi{cfg: cfg}
}

func (a *EnvApi) ConfigureRouter(r chi.Router) {
	r.Get("/", a.GetEnv)
}

func (a *EnvApi) GetEnv(w http.ResponseWriter, r *http.Request) {
	Render(w, r, NewEnvResponse(*a.cfg))
}

type EnvResponse struct {
	config.Config
}

func NewEnvResponse(c config.Config) *EnvResponse {
	return &EnvResponse{Config: c}
}

func (er *EnvResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	Scrub(er)
	return nil
}
