package quizsession

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

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

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid quiz session body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req StartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := h.service.Start(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, snap)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := h.service.Get(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Option string `json:"option"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	snap, err := h.service.Select(r.Context(), claims.UserID, chi.URLParam(r, "id"), body.Option)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := h.service.Advance(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := h.service.Restart(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
