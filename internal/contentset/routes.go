package contentset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Save)
	r.Get("/", h.List)
	r.Get("/exists", h.Exists)
	r.Get("/{id}/questions", h.LoadQuestions)
	r.Get("/{id}/flashcards", h.LoadFlashcards)
	r.Delete("/{id}", h.Delete)
	return r
}
