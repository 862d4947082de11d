// Package policy decides which caller may do what with a portfolio.
//
// Two kinds of denial are returned. A caller whose role can never perform an
// operation gets errdefs.ErrPermissionDenied. A caller whose role could, but
// who has no relation to the particular record, gets errdefs.ErrNotFound so
// that the record's existence is not revealed.
package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"portfolioservice/internal/ctxdata"
	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/models"
)

type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// ActorFromContext returns the authenticated caller stored by the auth middleware.
func ActorFromContext(ctx context.Context) (Actor, error) {
	rawID, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return Actor{}, fmt.Errorf("missing caller id: %w", errdefs.ErrAuthentication)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Actor{}, fmt.Errorf("caller id %q: %w", rawID, errdefs.ErrAuthentication)
	}
	rawRole, ok := ctxdata.GetUserRole(ctx)
	if !ok || !models.Role(rawRole).IsValid() {
		return Actor{}, fmt.Errorf("caller role %q: %w", rawRole, errdefs.ErrAuthentication)
	}
	return Actor{ID: id, Role: models.Role(rawRole)}, nil
}

type AccountLookup interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

type Policy struct {
	accounts              AccountLookup
	restrictAssessorReads bool
}

func New(accounts AccountLookup, restrictAssessorReads bool) *Policy {
	return &Policy{accounts: accounts, restrictAssessorReads: restrictAssessorReads}
}

func (p *Policy) CanCreate(actor Actor) error {
	if actor.Role != models.RoleStudent {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

// CanRequestStatus limits students to the statuses they own in the workflow.
func (p *Policy) CanRequestStatus(actor Actor, status models.Status) error {
	if actor.Role != models.RoleStudent {
		return nil
	}
	if status == models.StatusDraft || status == models.StatusToBeReviewed {
		return nil
	}
	return fmt.Errorf("students cannot set status %q: %w", status, errdefs.ErrPermissionDenied)
}

func (p *Policy) CanRead(ctx context.Context, actor Actor, pf *models.Portfolio) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleStudent:
		return ownedBy(actor, pf)
	case models.RoleAssessor:
		if !p.restrictAssessorReads {
			return nil
		}
		return p.assignedTo(ctx, actor, pf.UserID)
	default:
		return errdefs.ErrPermissionDenied
	}
}

// CanUpdate allows only the owning student to edit content.
func (p *Policy) CanUpdate(actor Actor, pf *models.Portfolio) error {
	if actor.Role != models.RoleStudent {
		return errdefs.ErrPermissionDenied
	}
	return ownedBy(actor, pf)
}

func (p *Policy) CanDelete(actor Actor, pf *models.Portfolio) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleStudent:
		return ownedBy(actor, pf)
	default:
		return errdefs.ErrPermissionDenied
	}
}

func (p *Policy) CanGiveFeedback(ctx context.Context, actor Actor, pf *models.Portfolio) error {
	if actor.Role != models.RoleAssessor {
		return errdefs.ErrPermissionDenied
	}
	return p.CanRead(ctx, actor, pf)
}

func (p *Policy) CanListForAssessor(actor Actor, assessorID uuid.UUID) error {
	switch {
	case actor.Role == models.RoleAdmin:
		return nil
	case actor.Role == models.RoleAssessor && actor.ID == assessorID:
		return nil
	default:
		return errdefs.ErrPermissionDenied
	}
}

func (p *Policy) CanListAll(actor Actor) error {
	if actor.Role != models.RoleAdmin {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

func ownedBy(actor Actor, pf *models.Portfolio) error {
	if pf.UserID != actor.ID {
		return errdefs.ErrNotFound
	}
	return nil
}

func (p *Policy) assignedTo(ctx context.Context, actor Actor, studentID uuid.UUID) error {
	acc, err := p.accounts.GetAccount(ctx, studentID)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return errdefs.ErrNotFound
		}
		return fmt.Errorf("resolve portfolio owner: %w", err)
	}
	if acc.AssignedAssessor == nil || *acc.AssignedAssessor != actor.ID || !acc.IsActive {
		return errdefs.ErrNotFound
	}
	return nil
}
