package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/models"
)

const portfoliosCollection = "portfolios"

type statusChangeDocument struct {
	Status    string    `bson:"status"`
	ChangedBy string    `bson:"changedBy"`
	Date      time.Time `bson:"date"`
	Comments  *string   `bson:"comments,omitempty"`
}

type portfolioDocument struct {
	ID               string                  `bson:"_id"`
	UserID           string                  `bson:"userId"`
	Title            string                  `bson:"title"`
	Unit             models.Unit             `bson:"unit"`
	LearningOutcome  models.LearningOutcome  `bson:"learningOutcome"`
	Criteria         models.Criteria         `bson:"criteria"`
	LinkedCriteria   []models.LinkedCriteria `bson:"linkedCriteria"`
	Statement        *string                 `bson:"statement,omitempty"`
	DateTime         time.Time               `bson:"dateTime"`
	Postcode         *string                 `bson:"postcode,omitempty"`
	Images           []string                `bson:"images"`
	Comments         *string                 `bson:"comments,omitempty"`
	TaskDescription  *string                 `bson:"taskDescription,omitempty"`
	JobType          *string                 `bson:"jobType,omitempty"`
	ReasonForTask    *string                 `bson:"reasonForTask,omitempty"`
	ObjectiveOfJob   *string                 `bson:"objectiveOfJob,omitempty"`
	Method           *string                 `bson:"Method,omitempty"`
	AssessorComments *string                 `bson:"assessorComments,omitempty"`
	Status           string                  `bson:"status"`
	StatusHistory    []statusChangeDocument  `bson:"statusHistory"`
	SubmissionCount  int                     `bson:"submissionCount"`
	CreatedAt        time.Time               `bson:"createdAt"`
	UpdatedAt        time.Time               `bson:"updatedAt"`
}

func newStatusChangeDocument(c models.StatusChange) statusChangeDocument {
	return statusChangeDocument{
		Status:    string(c.Status),
		ChangedBy: c.ChangedBy.String(),
		Date:      c.Date,
		Comments:  c.Comments,
	}
}

func newPortfolioDocument(p *models.Portfolio) *portfolioDocument {
	history := make([]statusChangeDocument, len(p.StatusHistory))
	for i, c := range p.StatusHistory {
		history[i] = newStatusChangeDocument(c)
	}
	return &portfolioDocument{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		Title:            p.Title,
		Unit:             p.Unit,
		LearningOutcome:  p.LearningOutcome,
		Criteria:         p.Criteria,
		LinkedCriteria:   nonNilLinked(p.LinkedCriteria),
		Statement:        p.Statement,
		DateTime:         p.DateTime,
		Postcode:         p.Postcode,
		Images:           nonNilImages(p.Images),
		Comments:         p.Comments,
		TaskDescription:  p.TaskDescription,
		JobType:          p.JobType,
		ReasonForTask:    p.ReasonForTask,
		ObjectiveOfJob:   p.ObjectiveOfJob,
		Method:           p.Method,
		AssessorComments: p.AssessorComments,
		Status:           string(p.Status),
		StatusHistory:    history,
		SubmissionCount:  p.SubmissionCount,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (d *portfolioDocument) toModel() (*models.Portfolio, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("repository error: portfolio id %q: %w", d.ID, err)
	}
	owner, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("repository error: portfolio owner %q: %w", d.UserID, err)
	}
	history := make([]models.StatusChange, 0, len(d.StatusHistory))
	for _, c := range d.StatusHistory {
		changedBy, err := uuid.Parse(c.ChangedBy)
		if err != nil {
			return nil, fmt.Errorf("repository error: history actor %q: %w", c.ChangedBy, err)
		}
		history = append(history, models.StatusChange{
			Status:    models.Status(c.Status),
			ChangedBy: changedBy,
			Date:      c.Date,
			Comments:  c.Comments,
		})
	}
	return &models.Portfolio{
		ID:               id,
		UserID:           owner,
		Title:            d.Title,
		Unit:             d.Unit,
		LearningOutcome:  d.LearningOutcome,
		Criteria:         d.Criteria,
		LinkedCriteria:   d.LinkedCriteria,
		Statement:        d.Statement,
		DateTime:         d.DateTime,
		Postcode:         d.Postcode,
		Images:           nonNilImages(d.Images),
		Comments:         d.Comments,
		TaskDescription:  d.TaskDescription,
		JobType:          d.JobType,
		ReasonForTask:    d.ReasonForTask,
		ObjectiveOfJob:   d.ObjectiveOfJob,
		Method:           d.Method,
		AssessorComments: d.AssessorComments,
		Status:           models.Status(d.Status),
		StatusHistory:    history,
		SubmissionCount:  d.SubmissionCount,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

// MongoPortfolioRepo stores portfolios as documents in MongoDB.
type MongoPortfolioRepo struct {
	coll *mongo.Collection
}

func NewMongoPortfolioRepository(db *mongo.Database) *MongoPortfolioRepo {
	return &MongoPortfolioRepo{coll: db.Collection(portfoliosCollection)}
}

func (r *MongoPortfolioRepo) Create(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	doc := newPortfolioDocument(p)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoPortfolioRepo) Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	doc := &portfolioDocument{}
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(doc); err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoPortfolioRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Portfolio, error) {
	return r.find(ctx, bson.D{{Key: "userId", Value: ownerID.String()}})
}

func (r *MongoPortfolioRepo) ListByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]*models.Portfolio, error) {
	if len(ownerIDs) == 0 {
		return []*models.Portfolio{}, nil
	}
	return r.find(ctx, bson.D{{Key: "userId", Value: bson.D{{Key: "$in", Value: uuidStrings(ownerIDs)}}}})
}

func (r *MongoPortfolioRepo) ListAll(ctx context.Context) ([]*models.Portfolio, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoPortfolioRepo) find(ctx context.Context, filter bson.D) ([]*models.Portfolio, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, handleError(err)
	}
	var docs []*portfolioDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Portfolio, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Update applies the merged fields with $set and lets the server apply the
// counter increment and history append.
func (r *MongoPortfolioRepo) Update(ctx context.Context, in *models.PortfolioRecordUpdate) (*models.Portfolio, error) {
	set := bson.D{
		{Key: "title", Value: in.Title},
		{Key: "unit", Value: in.Unit},
		{Key: "learningOutcome", Value: in.LearningOutcome},
		{Key: "criteria", Value: in.Criteria},
		{Key: "linkedCriteria", Value: nonNilLinked(in.LinkedCriteria)},
		{Key: "statement", Value: in.Statement},
		{Key: "postcode", Value: in.Postcode},
		{Key: "comments", Value: in.Comments},
		{Key: "taskDescription", Value: in.TaskDescription},
		{Key: "jobType", Value: in.JobType},
		{Key: "reasonForTask", Value: in.ReasonForTask},
		{Key: "objectiveOfJob", Value: in.ObjectiveOfJob},
		{Key: "Method", Value: in.Method},
		{Key: "images", Value: nonNilImages(in.Images)},
		{Key: "assessorComments", Value: in.AssessorComments},
		{Key: "status", Value: string(in.Status)},
		{Key: "updatedAt", Value: in.UpdatedAt},
	}
	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$inc", Value: bson.D{{Key: "submissionCount", Value: in.SubmissionIncrement}}},
		{Key: "$push", Value: bson.D{{Key: "statusHistory", Value: newStatusChangeDocument(in.HistoryEntry)}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	doc := &portfolioDocument{}
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: in.ID.String()}}, update, opts).Decode(doc)
	if err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoPortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return handleError(err)
	}
	if res.DeletedCount == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *MongoPortfolioRepo) ListImageRefs(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "images", bson.D{})
	if err != nil {
		return nil, handleError(err)
	}
	refs := make([]string, 0, len(values))
	for _, v := range values {
		if ref, ok := v.(string); ok {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
