package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"portfolioservice/internal/models"
)

const accountColumns = `id, name, email, role, assigned_assessor_id, is_active`

type accountRow struct {
	ID               uuid.UUID  `db:"id"`
	Name             string     `db:"name"`
	Email            string     `db:"email"`
	Role             string     `db:"role"`
	AssignedAssessor *uuid.UUID `db:"assigned_assessor_id"`
	IsActive         bool       `db:"is_active"`
}

func (r *accountRow) toModel() *models.Account {
	return &models.Account{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Role:             models.Role(r.Role),
		AssignedAssessor: r.AssignedAssessor,
		IsActive:         r.IsActive,
	}
}

// AccountRepo reads the account directory. Accounts are written by the
// identity service, never here.
type AccountRepo struct {
	db Querier
}

func NewAccountRepository(db Querier) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := &accountRow{}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if err := pgxscan.Get(ctx, r.db, row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

func (r *AccountRepo) ListAssignedStudents(ctx context.Context, assessorID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM accounts
		WHERE assigned_assessor_id = $1 AND role = 'student' AND is_active
		ORDER BY name`
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, r.db, &ids, query, assessorID); err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

func (r *AccountRepo) ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Account, error) {
	if len(ids) == 0 {
		return []*models.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1::uuid[])`
	return r.list(ctx, query, uuidStrings(ids))
}

func (r *AccountRepo) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name`
	return r.list(ctx, query)
}

func (r *AccountRepo) list(ctx context.Context, query string, args ...any) ([]*models.Account, error) {
	var rows []*accountRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Account, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
