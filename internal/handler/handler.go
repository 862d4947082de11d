//go:generate mockgen -source=handler.go -destination=../mocks/handler_mocks.go -package=mocks
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
)

type PortfolioService interface {
	Create(ctx context.Context, in *models.CreatePortfolioInput) (*models.Portfolio, error)
	Update(ctx context.Context, in *models.UpdatePortfolioInput) (*models.Portfolio, error)
	SubmitFeedback(ctx context.Context, in *models.FeedbackInput) (*models.Portfolio, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error)
	ListMine(ctx context.Context) ([]*models.Portfolio, error)
	ListForAssessor(ctx context.Context, assessorID uuid.UUID) ([]*models.PortfolioWithOwner, error)
	ListAll(ctx context.Context) ([]*models.PortfolioWithOwner, error)
	Export(ctx context.Context, id uuid.UUID) (*models.ExportedDocument, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

type UserService interface {
	ListAccounts(ctx context.Context) ([]*models.Account, error)
}

type messageResponse struct {
	Message   string            `json:"message"`
	Portfolio *models.Portfolio `json:"portfolio,omitempty"`
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation), errors.Is(err, errdefs.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrInvalidTransition), errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeServiceError logs the failure and writes the mapped status. Client
// errors carry the wrapped message, server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	code := mapErr(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(ctx).Error(ctx, op+" failed", zap.Error(err))
		writeErrorJSON(w, code, http.StatusText(code))
		return
	}
	logging.FromContext(ctx).Debug(ctx, op+" rejected", zap.Error(err), zap.Int("status", code))
	writeErrorJSON(w, code, err.Error())
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.FromContext(r.Context()).Error(r.Context(), "failed to serialize response", zap.Error(err))
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", errdefs.ErrValidation, key)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", errdefs.ErrMalformedInput, key)
	}
	return id, nil
}
