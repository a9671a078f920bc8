package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Start)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/select", h.Select)
	r.Post("/{id}/advance", h.Advance)
	r.Post("/{id}/restart", h.Restart)
	r.Delete("/{id}", h.Delete)
	return r
}
