package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/", h.ListAccounts)
}

func (h *UserHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, "list accounts", err)
		return
	}
	writeJSON(w, r, http.StatusOK, accounts)
}
