package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioservice/internal/models"
)

const applicationsCollection = "applicationforms"

type applicationDocument struct {
	ID                     string    `bson:"_id"`
	CreatedAt              time.Time `bson:"createdAt"`
	models.ApplicationForm `bson:",inline"`
}

func (d *applicationDocument) toModel() (*models.Application, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("repository error: application id %q: %w", d.ID, err)
	}
	return &models.Application{ID: id, CreatedAt: d.CreatedAt, ApplicationForm: d.ApplicationForm}, nil
}

type MongoApplicationRepo struct {
	coll *mongo.Collection
}

func NewMongoApplicationRepository(db *mongo.Database) *MongoApplicationRepo {
	return &MongoApplicationRepo{coll: db.Collection(applicationsCollection)}
}

func (r *MongoApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	doc := &applicationDocument{ID: app.ID.String(), CreatedAt: app.CreatedAt, ApplicationForm: app.ApplicationForm}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoApplicationRepo) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	doc := &applicationDocument{}
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(doc); err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoApplicationRepo) ListApplications(ctx context.Context) ([]*models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, handleError(err)
	}
	var docs []*applicationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Application, 0, len(docs))
	for _, doc := range docs {
		app, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}
