package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioservice/internal/models"
)

func TestApplicationRepo_CreateApplication(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	app := &models.Application{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		ApplicationForm: models.ApplicationForm{
			FirstName:         "Ada",
			FamilyName:        "Lovelace",
			Email:             "ada@example.com",
			PreviousStudies:   []models.PreviousStudy{{Qualification: "A-Level", Country: "UK"}},
			EmergencyContacts: []models.EmergencyContact{{Name: "Byron", Relationship: "Parent"}},
		},
	}

	mockPool.ExpectQuery("INSERT INTO application_forms").
		WithArgs(app.ID, pgxmock.AnyArg(), app.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "payload", "created_at"}).
			AddRow(app.ID, mustJSON(t, app.ApplicationForm), app.CreatedAt))

	res, err := NewApplicationRepository(mockPool).CreateApplication(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, app.ApplicationForm, res.ApplicationForm)
}

func TestApplicationRepo_ListApplications(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	newer, older := uuid.New(), uuid.New()
	now := time.Now().UTC()
	mockPool.ExpectQuery("FROM application_forms ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows([]string{"id", "payload", "created_at"}).
			AddRow(newer, []byte(`{"firstName":"Grace"}`), now).
			AddRow(older, []byte(`{"firstName":"Alan"}`), now.Add(-time.Hour)))

	apps, err := NewApplicationRepository(mockPool).ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Grace", apps[0].FirstName)
	assert.Equal(t, older, apps[1].ID)
}
