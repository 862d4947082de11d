package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/mocks"
	"portfolioservice/internal/models"
	"portfolioservice/internal/service"
)

func TestApplicationService(t *testing.T) {
	t.Run("SubmitIsPublic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIApplicationRepo(ctrl)
		svc := service.NewApplicationService(repo)

		repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *models.Application) (*models.Application, error) {
				assert.NotEqual(t, uuid.Nil, app.ID)
				assert.False(t, app.CreatedAt.IsZero())
				return app, nil
			})

		res, err := svc.Submit(context.Background(), &models.ApplicationForm{
			FirstName:     "Ada",
			Email:         "ada@example.com",
			CourseToStudy: "Level 3 Electrical",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada", res.FirstName)
	})

	t.Run("SubmitRejectsBadEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewApplicationService(mocks.NewMockIApplicationRepo(ctrl))

		_, err := svc.Submit(context.Background(), &models.ApplicationForm{Email: "not-an-email"})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
		assert.ErrorContains(t, err, "email")
	})

	t.Run("ListRequiresAdmin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIApplicationRepo(ctrl)
		svc := service.NewApplicationService(repo)

		_, err := svc.List(userCtx(models.RoleStudent, uuid.New()))
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)

		_, err = svc.List(context.Background())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)

		repo.EXPECT().ListApplications(gomock.Any()).Return([]*models.Application{{ID: uuid.New()}}, nil)
		list, err := svc.List(userCtx(models.RoleAdmin, uuid.New()))
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("GetAdmin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIApplicationRepo(ctrl)
		svc := service.NewApplicationService(repo)
		id := uuid.New()

		repo.EXPECT().GetApplication(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)
		_, err := svc.Get(userCtx(models.RoleAdmin, uuid.New()), id)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestUserService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountLister(ctrl)
	svc := service.NewUserService(accounts)

	_, err := svc.ListAccounts(userCtx(models.RoleAssessor, uuid.New()))
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)

	accounts.EXPECT().ListAccounts(gomock.Any()).Return([]*models.Account{{Name: "Ada"}, {Name: "Grace"}}, nil)
	list, err := svc.ListAccounts(userCtx(models.RoleAdmin, uuid.New()))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
