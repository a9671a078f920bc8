package waitlist

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req JoinRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid waitlist body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Join(r.Context(), req)
	if err != nil {
		config.Error(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	config.JSON(w, http.StatusCreated, entry)
}
