package contentset

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/auth"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

const maxRequestBody = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func writeError(w http.ResponseWriter, err error) {
	config.Error(w, apperr.HTTPStatus(err), apperr.Message(err))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid content set body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set, err := h.service.Save(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	sets, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

// Exists answers GET /sets/exists?name=...&quiz=true with {"exists": bool}.
func (h *Handler) Exists(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	isQuiz, err := quizFlag(r)
	if err != nil {
		writeError(w, err)
		return
	}

	exists, err := h.service.Exists(r.Context(), claims.UserID, r.URL.Query().Get("name"), isQuiz)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *Handler) LoadQuestions(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	setID, err := setIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	questions, err := h.service.LoadQuestions(r.Context(), claims.UserID, setID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) LoadFlashcards(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	setID, err := setIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	cards, err := h.service.LoadFlashcards(r.Context(), claims.UserID, setID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, cards)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	setID, err := setIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	isQuiz, err := quizFlag(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), claims.UserID, setID, isQuiz); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func setIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid set id: %w", apperr.ErrValidation)
	}
	return id, nil
}

// quizFlag reads the optional ?quiz= parameter; absent means flashcards.
func quizFlag(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("quiz")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("quiz must be true or false: %w", apperr.ErrValidation)
	}
	return v, nil
}
