package generation

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

const maxRequestBody = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Generate answers with a bare JSON array of flashcards or quiz questions.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generation request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OutputType == "" {
		req.OutputType = ContentFlashcards
	}
	if req.InputType == "" {
		req.InputType = InputText
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		config.Error(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	config.JSON(w, http.StatusOK, result.Items())
}
