//go:generate mockgen -source=portfolio.go -destination=../mocks/portfolio_mocks.go -package=mocks

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/events"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
	"portfolioservice/internal/policy"
)

type IPortfolioRepo interface {
	Create(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error)

	Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Portfolio, error)

	ListByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]*models.Portfolio, error)

	ListAll(ctx context.Context) ([]*models.Portfolio, error)

	Update(ctx context.Context, in *models.PortfolioRecordUpdate) (*models.Portfolio, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

type AttachmentStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type AccountDirectory interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListAssignedStudents(ctx context.Context, assessorID uuid.UUID) ([]uuid.UUID, error)
	ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Account, error)
}

type StatusEventSender interface {
	SendStatusChanged(ctx context.Context, event events.StatusChangedEvent) error
}

type DocumentRenderer interface {
	Render(ctx context.Context, p *models.Portfolio, ownerName string) (*models.ExportedDocument, error)
}

type PortfolioService struct {
	repo     IPortfolioRepo
	store    AttachmentStore
	accounts AccountDirectory
	policy   *policy.Policy
	events   StatusEventSender
	renderer DocumentRenderer
	validate *validator.Validate
	strict   bool
	now      func() time.Time
}

func NewPortfolioService(
	repo IPortfolioRepo,
	store AttachmentStore,
	accounts AccountDirectory,
	pol *policy.Policy,
	eventSender StatusEventSender,
	renderer DocumentRenderer,
	strictTransitions bool,
) *PortfolioService {

	return &PortfolioService{
		repo:     repo,
		store:    store,
		accounts: accounts,
		policy:   pol,
		events:   eventSender,
		renderer: renderer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		strict:   strictTransitions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *PortfolioService) Create(ctx context.Context, in *models.CreatePortfolioInput) (*models.Portfolio, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanCreate(actor); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p := &models.Portfolio{
		UserID: actor.ID,
		Title:  in.Title,
		Status: models.StatusDraft,
	}
	if err := decodeField("unit", in.Unit, &p.Unit); err != nil {
		return nil, err
	}
	if err := decodeField("criteria", in.Criteria, &p.Criteria); err != nil {
		return nil, err
	}
	if err := s.requireNumbers(p.Unit, p.Criteria); err != nil {
		return nil, err
	}
	if err := decodeField("learningOutcome", in.LearningOutcome, &p.LearningOutcome); err != nil {
		return nil, err
	}
	if err := decodeField("linkedCriteria", in.LinkedCriteria, &p.LinkedCriteria); err != nil {
		return nil, err
	}
	applyNarrative(p, in.Narrative)

	if in.Status != "" {
		status, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		if err := s.policy.CanRequestStatus(actor, status); err != nil {
			return nil, err
		}
		p.Status = status
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate portfolio ID: %w", err)
	}
	now := s.now()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	p.DateTime = now
	if in.DateTime != nil && !in.DateTime.IsZero() {
		p.DateTime = in.DateTime.UTC()
	}
	p.StatusHistory = []models.StatusChange{{Status: p.Status, ChangedBy: actor.ID, Date: now}}

	refs, err := s.saveUploads(ctx, in.Images)
	if err != nil {
		return nil, err
	}
	p.Images = refs

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.discardUploads(ctx, refs)
		return nil, err
	}

	logging.FromContext(ctx).Info(ctx, "portfolio created",
		zap.String("portfolio_id", created.ID.String()),
		zap.Int("images", len(created.Images)))
	return created, nil
}

// Update merges the provided fields over the stored record. Blank values are
// treated as not provided; a provided object replaces the stored one whole.
// The image list is only replaced when new files are uploaded, in which case it
// becomes the retained refs the record already had followed by the new files.
func (s *PortfolioService) Update(ctx context.Context, in *models.UpdatePortfolioInput) (*models.Portfolio, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanUpdate(actor, existing); err != nil {
		return nil, err
	}

	merged := recordFrom(existing)
	if provided(in.Title) {
		merged.Title = strings.TrimSpace(*in.Title)
	}
	if provided(in.Unit) {
		var unit models.Unit
		if err := decodeField("unit", *in.Unit, &unit); err != nil {
			return nil, err
		}
		if err := s.requireNumbers(unit, nil); err != nil {
			return nil, err
		}
		merged.Unit = unit
	}
	if provided(in.LearningOutcome) {
		var outcome models.LearningOutcome
		if err := decodeField("learningOutcome", *in.LearningOutcome, &outcome); err != nil {
			return nil, err
		}
		merged.LearningOutcome = outcome
	}
	if provided(in.Criteria) {
		var criteria models.Criteria
		if err := decodeField("criteria", *in.Criteria, &criteria); err != nil {
			return nil, err
		}
		if err := s.requireNumbers(nil, criteria); err != nil {
			return nil, err
		}
		merged.Criteria = criteria
	}
	if provided(in.LinkedCriteria) {
		var linked []models.LinkedCriteria
		if err := decodeField("linkedCriteria", *in.LinkedCriteria, &linked); err != nil {
			return nil, err
		}
		merged.LinkedCriteria = linked
	}
	mergeNarrative(&merged.Narrative, in.Narrative)

	if provided(in.Status) {
		status, err := parseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := s.policy.CanRequestStatus(actor, status); err != nil {
			return nil, err
		}
		merged.Status = status
	}
	if err := s.checkTransition(existing.Status, merged.Status); err != nil {
		return nil, err
	}

	var newRefs []string
	if len(in.Images) > 0 {
		var requested []string
		if provided(in.ExistingImages) {
			if err := decodeField("existingImages", *in.ExistingImages, &requested); err != nil {
				return nil, err
			}
		}
		retained := retainedImages(existing.Images, requested)
		newRefs, err = s.saveUploads(ctx, in.Images)
		if err != nil {
			return nil, err
		}
		merged.Images = append(append(make([]string, 0, len(retained)+len(newRefs)), retained...), newRefs...)
	}

	now := s.now()
	merged.SubmissionIncrement = resubmissionIncrement(existing.Status, merged.Status)
	merged.HistoryEntry = models.StatusChange{Status: merged.Status, ChangedBy: actor.ID, Date: now}
	merged.UpdatedAt = now

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		s.discardUploads(ctx, newRefs)
		return nil, err
	}
	s.publishStatusChange(ctx, actor, existing, updated)
	return updated, nil
}

// SubmitFeedback records an assessor's comment and decision. An empty status
// keeps the current one.
func (s *PortfolioService) SubmitFeedback(ctx context.Context, in *models.FeedbackInput) (*models.Portfolio, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanGiveFeedback(ctx, actor, existing); err != nil {
		return nil, err
	}

	merged := recordFrom(existing)
	if strings.TrimSpace(in.Status) != "" {
		status, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		merged.Status = status
	}
	if err := s.checkTransition(existing.Status, merged.Status); err != nil {
		return nil, err
	}
	if in.AssessorComments != nil {
		merged.AssessorComments = in.AssessorComments
	}

	now := s.now()
	merged.SubmissionIncrement = resubmissionIncrement(existing.Status, merged.Status)
	merged.HistoryEntry = models.StatusChange{
		Status:    merged.Status,
		ChangedBy: actor.ID,
		Date:      now,
		Comments:  in.AssessorComments,
	}
	merged.UpdatedAt = now

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return nil, err
	}
	s.publishStatusChange(ctx, actor, existing, updated)
	return updated, nil
}

// Delete removes the record. Its attachments are left for the orphan sweeper.
func (s *PortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.CanDelete(actor, existing); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PortfolioService) Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanRead(ctx, actor, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) ListMine(ctx context.Context) ([]*models.Portfolio, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, actor.ID)
}

func (s *PortfolioService) ListForAssessor(ctx context.Context, assessorID uuid.UUID) ([]*models.PortfolioWithOwner, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanListForAssessor(actor, assessorID); err != nil {
		return nil, err
	}
	studentIDs, err := s.accounts.ListAssignedStudents(ctx, assessorID)
	if err != nil {
		return nil, err
	}
	portfolios, err := s.repo.ListByOwners(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	return s.withOwners(ctx, portfolios)
}

func (s *PortfolioService) ListAll(ctx context.Context) ([]*models.PortfolioWithOwner, error) {
	actor, err := policy.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanListAll(actor); err != nil {
		return nil, err
	}
	portfolios, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withOwners(ctx, portfolios)
}

func (s *PortfolioService) Export(ctx context.Context, id uuid.UUID) (*models.ExportedDocument, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerName := ""
	owner, err := s.accounts.GetAccount(ctx, p.UserID)
	switch {
	case err == nil:
		ownerName = owner.Name
	case errors.Is(err, errdefs.ErrNotFound):
	default:
		logging.FromContext(ctx).Warn(ctx, "cannot resolve portfolio owner for export",
			zap.String("portfolio_id", p.ID.String()), zap.Error(err))
	}

	return s.renderer.Render(ctx, p, ownerName)
}

func (s *PortfolioService) withOwners(ctx context.Context, portfolios []*models.Portfolio) ([]*models.PortfolioWithOwner, error) {
	out := make([]*models.PortfolioWithOwner, 0, len(portfolios))
	if len(portfolios) == 0 {
		return out, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(portfolios))
	ids := make([]uuid.UUID, 0, len(portfolios))
	for _, p := range portfolios {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}
	accounts, err := s.accounts.ListAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners := make(map[uuid.UUID]*models.Owner, len(accounts))
	for _, acc := range accounts {
		owners[acc.ID] = acc.Owner()
	}

	for _, p := range portfolios {
		out = append(out, &models.PortfolioWithOwner{Portfolio: p, User: owners[p.UserID]})
	}
	return out, nil
}

func (s *PortfolioService) validateInput(in *models.CreatePortfolioInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errdefs.ErrValidation, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}
	return fmt.Errorf("%w: missing required fields: %s", errdefs.ErrValidation, strings.Join(fields, ", "))
}

// requireNumbers checks the decoded unit and criteria objects. A nil argument is skipped.
func (s *PortfolioService) requireNumbers(unit, criteria any) error {
	var missing []string
	if unit != nil && s.validate.Struct(unit) != nil {
		missing = append(missing, "unit.number")
	}
	if criteria != nil && s.validate.Struct(criteria) != nil {
		missing = append(missing, "criteria.number")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", errdefs.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// retainedImages keeps the requested refs that already belong to the record,
// in request order and without duplicates.
func retainedImages(current, requested []string) []string {
	owned := make(map[string]struct{}, len(current))
	for _, ref := range current {
		owned[ref] = struct{}{}
	}
	out := make([]string, 0, len(requested))
	for _, ref := range requested {
		if _, ok := owned[ref]; ok {
			out = append(out, ref)
			delete(owned, ref)
		}
	}
	return out
}

// checkTransition enforces the review workflow when strict transitions are on.
func (s *PortfolioService) checkTransition(from, to models.Status) error {
	if !s.strict || from == to {
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", errdefs.ErrInvalidTransition, from, to)
}

var allowedTransitions = map[models.Status][]models.Status{
	models.StatusDraft:        {models.StatusToBeReviewed},
	models.StatusToBeReviewed: {models.StatusReviewed},
	models.StatusReviewed:     {models.StatusApproved, models.StatusRejected, models.StatusDraft},
}

func resubmissionIncrement(from, to models.Status) int {
	if from == models.StatusReviewed && to == models.StatusDraft {
		return 1
	}
	return 0
}

func (s *PortfolioService) saveUploads(ctx context.Context, uploads []models.Upload) ([]string, error) {
	refs := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		ref, err := s.store.Save(ctx, upload.Content, upload.Filename)
		if err != nil {
			s.discardUploads(ctx, refs)
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (s *PortfolioService) discardUploads(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.store.Delete(ctx, ref); err != nil {
			logging.FromContext(ctx).Warn(ctx, "failed to remove unreferenced attachment",
				zap.String("ref", ref), zap.Error(err))
		}
	}
}

func (s *PortfolioService) publishStatusChange(ctx context.Context, actor policy.Actor, before, after *models.Portfolio) {
	if before.Status == after.Status {
		return
	}
	event := events.StatusChangedEvent{
		PortfolioID:     after.ID.String(),
		OwnerID:         after.UserID.String(),
		From:            before.Status.String(),
		To:              after.Status.String(),
		ChangedBy:       actor.ID.String(),
		SubmissionCount: after.SubmissionCount,
		At:              after.UpdatedAt,
	}
	if err := s.events.SendStatusChanged(ctx, event); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to publish status change",
			zap.String("portfolio_id", event.PortfolioID), zap.Error(err))
	}
}

func recordFrom(p *models.Portfolio) *models.PortfolioRecordUpdate {
	return &models.PortfolioRecordUpdate{
		ID:              p.ID,
		Title:           p.Title,
		Unit:            p.Unit,
		LearningOutcome: p.LearningOutcome,
		Criteria:        p.Criteria,
		LinkedCriteria:  p.LinkedCriteria,
		Narrative: models.Narrative{
			Statement:       p.Statement,
			Postcode:        p.Postcode,
			Comments:        p.Comments,
			TaskDescription: p.TaskDescription,
			JobType:         p.JobType,
			ReasonForTask:   p.ReasonForTask,
			ObjectiveOfJob:  p.ObjectiveOfJob,
			Method:          p.Method,
		},
		Images:           p.Images,
		AssessorComments: p.AssessorComments,
		Status:           p.Status,
	}
}

func applyNarrative(p *models.Portfolio, n models.Narrative) {
	p.Statement = nonEmpty(n.Statement)
	p.Postcode = nonEmpty(n.Postcode)
	p.Comments = nonEmpty(n.Comments)
	p.TaskDescription = nonEmpty(n.TaskDescription)
	p.JobType = nonEmpty(n.JobType)
	p.ReasonForTask = nonEmpty(n.ReasonForTask)
	p.ObjectiveOfJob = nonEmpty(n.ObjectiveOfJob)
	p.Method = nonEmpty(n.Method)
}

func mergeNarrative(dst *models.Narrative, src models.Narrative) {
	for _, f := range []struct{ dst, src **string }{
		{&dst.Statement, &src.Statement},
		{&dst.Postcode, &src.Postcode},
		{&dst.Comments, &src.Comments},
		{&dst.TaskDescription, &src.TaskDescription},
		{&dst.JobType, &src.JobType},
		{&dst.ReasonForTask, &src.ReasonForTask},
		{&dst.ObjectiveOfJob, &src.ObjectiveOfJob},
		{&dst.Method, &src.Method},
	} {
		if provided(*f.src) {
			*f.dst = *f.src
		}
	}
}

func decodeField(name, raw string, dst any) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", errdefs.ErrMalformedInput, name, err)
	}
	return nil
}

func parseStatus(raw string) (models.Status, error) {
	status, ok := models.ParseStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", errdefs.ErrValidation, raw)
	}
	return status, nil
}

func provided(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func nonEmpty(s *string) *string {
	if !provided(s) {
		return nil
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
