package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/models"
)

type ApplicationHandler struct {
	svc ApplicationService
}

func NewApplicationHandler(svc ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// RegisterRoutes leaves submission public; reading applications needs a token.
func (h *ApplicationHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/", h.Submit)
	r.With(authMiddleware).Get("/", h.List)
	r.With(authMiddleware).Get("/{id}", h.Get)
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	form := &models.ApplicationForm{}
	if err := json.NewDecoder(r.Body).Decode(form); err != nil {
		writeServiceError(w, r, "submit application", fmt.Errorf("%w: invalid request body", errdefs.ErrMalformedInput))
		return
	}
	app, err := h.svc.Submit(r.Context(), form)
	if err != nil {
		writeServiceError(w, r, "submit application", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list applications", err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "get application", err)
		return
	}
	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get application", err)
		return
	}
	writeJSON(w, r, http.StatusOK, app)
}
