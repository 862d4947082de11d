package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"portfolioservice/internal/models"
)

type applicationRow struct {
	ID        uuid.UUID `db:"id"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *applicationRow) toModel() (*models.Application, error) {
	app := &models.Application{ID: r.ID, CreatedAt: r.CreatedAt}
	if err := decodeJSON(r.Payload, &app.ApplicationForm); err != nil {
		return nil, err
	}
	return app, nil
}

// ApplicationRepo keeps submitted application forms as jsonb documents.
type ApplicationRepo struct {
	db Querier
}

func NewApplicationRepository(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	payload, err := encodeJSON(app.ApplicationForm)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO application_forms (id, payload, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, payload, created_at`
	row := &applicationRow{}
	if err := pgxscan.Get(ctx, r.db, row, query, app.ID, payload, app.CreatedAt); err != nil {
		return nil, handleError(err)
	}
	return row.toModel()
}

func (r *ApplicationRepo) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	row := &applicationRow{}
	query := `SELECT id, payload, created_at FROM application_forms WHERE id = $1`
	if err := pgxscan.Get(ctx, r.db, row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toModel()
}

func (r *ApplicationRepo) ListApplications(ctx context.Context) ([]*models.Application, error) {
	var rows []*applicationRow
	query := `SELECT id, payload, created_at FROM application_forms ORDER BY created_at DESC`
	if err := pgxscan.Select(ctx, r.db, &rows, query); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Application, 0, len(rows))
	for _, row := range rows {
		app, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}
