//go:generate mockgen -source=application.go -destination=../mocks/application_mocks.go -package=mocks

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"portfolioservice/internal/ctxdata"
	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/models"
)

type IApplicationRepo interface {
	CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListApplications(ctx context.Context) ([]*models.Application, error)
}

type ApplicationService struct {
	repo     IApplicationRepo
	validate *validator.Validate
}

func NewApplicationService(repo IApplicationRepo) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		validate: validator.New(),
	}
}

func requireRole(ctx context.Context, role models.Role) error {
	userRole, ok := ctxdata.GetUserRole(ctx)
	if !ok {
		return errdefs.ErrAuthentication
	}
	if models.Role(userRole) != role {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

// Submit stores an application form. Applicants are not signed in, so no
// identity is required.
func (s *ApplicationService) Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error) {
	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, lowerFirst(fe.Field()))
			}
			return nil, fmt.Errorf("%w: invalid fields: %s", errdefs.ErrValidation, strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("%w: %v", errdefs.ErrValidation, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application ID: %w", err)
	}
	return s.repo.CreateApplication(ctx, &models.Application{
		ID:              id,
		CreatedAt:       time.Now().UTC(),
		ApplicationForm: *form,
	})
}

func (s *ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	if err := requireRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.ListApplications(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	if err := requireRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.GetApplication(ctx, id)
}
