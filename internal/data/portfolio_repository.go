package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/models"
)

const portfolioColumns = `id, user_id, title, unit, learning_outcome, criteria, linked_criteria,
	statement, date_time, postcode, images, comments, task_description, job_type,
	reason_for_task, objective_of_job, method, assessor_comments, status,
	status_history, submission_count, created_at, updated_at`

type portfolioRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Title            string    `db:"title"`
	Unit             []byte    `db:"unit"`
	LearningOutcome  []byte    `db:"learning_outcome"`
	Criteria         []byte    `db:"criteria"`
	LinkedCriteria   []byte    `db:"linked_criteria"`
	Statement        *string   `db:"statement"`
	DateTime         time.Time `db:"date_time"`
	Postcode         *string   `db:"postcode"`
	Images           []string  `db:"images"`
	Comments         *string   `db:"comments"`
	TaskDescription  *string   `db:"task_description"`
	JobType          *string   `db:"job_type"`
	ReasonForTask    *string   `db:"reason_for_task"`
	ObjectiveOfJob   *string   `db:"objective_of_job"`
	Method           *string   `db:"method"`
	AssessorComments *string   `db:"assessor_comments"`
	Status           string    `db:"status"`
	StatusHistory    []byte    `db:"status_history"`
	SubmissionCount  int       `db:"submission_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r *portfolioRow) toModel() (*models.Portfolio, error) {
	p := &models.Portfolio{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		Statement:        r.Statement,
		DateTime:         r.DateTime,
		Postcode:         r.Postcode,
		Images:           r.Images,
		Comments:         r.Comments,
		TaskDescription:  r.TaskDescription,
		JobType:          r.JobType,
		ReasonForTask:    r.ReasonForTask,
		ObjectiveOfJob:   r.ObjectiveOfJob,
		Method:           r.Method,
		AssessorComments: r.AssessorComments,
		Status:           models.Status(r.Status),
		SubmissionCount:  r.SubmissionCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if err := decodeJSON(r.Unit, &p.Unit); err != nil {
		return nil, err
	}
	if err := decodeJSON(r.LearningOutcome, &p.LearningOutcome); err != nil {
		return nil, err
	}
	if err := decodeJSON(r.Criteria, &p.Criteria); err != nil {
		return nil, err
	}
	if err := decodeJSON(r.LinkedCriteria, &p.LinkedCriteria); err != nil {
		return nil, err
	}
	if err := decodeJSON(r.StatusHistory, &p.StatusHistory); err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

// PortfolioRepo stores portfolios in Postgres.
type PortfolioRepo struct {
	db Querier
}

func NewPortfolioRepository(db Querier) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

func (r *PortfolioRepo) Create(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	query := `
		INSERT INTO portfolios (` + portfolioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + portfolioColumns

	unit, err := encodeJSON(p.Unit)
	if err != nil {
		return nil, err
	}
	outcome, err := encodeJSON(p.LearningOutcome)
	if err != nil {
		return nil, err
	}
	criteria, err := encodeJSON(p.Criteria)
	if err != nil {
		return nil, err
	}
	linked, err := encodeJSON(nonNilLinked(p.LinkedCriteria))
	if err != nil {
		return nil, err
	}
	history, err := encodeJSON(nonNilHistory(p.StatusHistory))
	if err != nil {
		return nil, err
	}

	row := &portfolioRow{}
	err = pgxscan.Get(ctx, r.db, row, query,
		p.ID,
		p.UserID,
		p.Title,
		unit,
		outcome,
		criteria,
		linked,
		p.Statement,
		p.DateTime,
		p.Postcode,
		nonNilImages(p.Images),
		p.Comments,
		p.TaskDescription,
		p.JobType,
		p.ReasonForTask,
		p.ObjectiveOfJob,
		p.Method,
		p.AssessorComments,
		string(p.Status),
		history,
		p.SubmissionCount,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return row.toModel()
}

func (r *PortfolioRepo) Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE id = $1`
	row := &portfolioRow{}
	if err := pgxscan.Get(ctx, r.db, row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toModel()
}

func (r *PortfolioRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *PortfolioRepo) ListByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]*models.Portfolio, error) {
	if len(ownerIDs) == 0 {
		return []*models.Portfolio{}, nil
	}
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE user_id = ANY($1::uuid[]) ORDER BY created_at DESC`
	return r.list(ctx, query, uuidStrings(ownerIDs))
}

func (r *PortfolioRepo) ListAll(ctx context.Context) ([]*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PortfolioRepo) list(ctx context.Context, query string, args ...any) ([]*models.Portfolio, error) {
	var rows []*portfolioRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Portfolio, 0, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Update writes the merged record in one statement. The submission counter is
// incremented and the history entry appended by the database itself.
func (r *PortfolioRepo) Update(ctx context.Context, in *models.PortfolioRecordUpdate) (*models.Portfolio, error) {
	query := `
		UPDATE portfolios SET
			title = $2,
			unit = $3,
			learning_outcome = $4,
			criteria = $5,
			linked_criteria = $6,
			statement = $7,
			postcode = $8,
			comments = $9,
			task_description = $10,
			job_type = $11,
			reason_for_task = $12,
			objective_of_job = $13,
			method = $14,
			images = $15,
			assessor_comments = $16,
			status = $17,
			submission_count = submission_count + $18,
			status_history = status_history || $19::jsonb,
			updated_at = $20
		WHERE id = $1
		RETURNING ` + portfolioColumns

	unit, err := encodeJSON(in.Unit)
	if err != nil {
		return nil, err
	}
	outcome, err := encodeJSON(in.LearningOutcome)
	if err != nil {
		return nil, err
	}
	criteria, err := encodeJSON(in.Criteria)
	if err != nil {
		return nil, err
	}
	linked, err := encodeJSON(nonNilLinked(in.LinkedCriteria))
	if err != nil {
		return nil, err
	}
	entry, err := encodeJSON([]models.StatusChange{in.HistoryEntry})
	if err != nil {
		return nil, err
	}

	row := &portfolioRow{}
	err = pgxscan.Get(ctx, r.db, row, query,
		in.ID,
		in.Title,
		unit,
		outcome,
		criteria,
		linked,
		in.Statement,
		in.Postcode,
		in.Comments,
		in.TaskDescription,
		in.JobType,
		in.ReasonForTask,
		in.ObjectiveOfJob,
		in.Method,
		nonNilImages(in.Images),
		in.AssessorComments,
		string(in.Status),
		in.SubmissionIncrement,
		entry,
		in.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return row.toModel()
}

func (r *PortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// ListImageRefs returns every attachment reference held by any portfolio.
func (r *PortfolioRepo) ListImageRefs(ctx context.Context) ([]string, error) {
	var refs []string
	if err := pgxscan.Select(ctx, r.db, &refs, `SELECT DISTINCT unnest(images) AS ref FROM portfolios`); err != nil {
		return nil, handleError(err)
	}
	return refs, nil
}

func nonNilImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func nonNilLinked(linked []models.LinkedCriteria) []models.LinkedCriteria {
	if linked == nil {
		return []models.LinkedCriteria{}
	}
	return linked
}

func nonNilHistory(history []models.StatusChange) []models.StatusChange {
	if history == nil {
		return []models.StatusChange{}
	}
	return history
}
