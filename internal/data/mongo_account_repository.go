package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioservice/internal/models"
)

const usersCollection = "users"

type accountDocument struct {
	ID               string  `bson:"_id"`
	Name             string  `bson:"name"`
	Email            string  `bson:"email"`
	Role             string  `bson:"role"`
	AssignedAssessor *string `bson:"assignedAssessor,omitempty"`
	IsActive         bool    `bson:"isActive"`
}

func (d *accountDocument) toModel() (*models.Account, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("repository error: account id %q: %w", d.ID, err)
	}
	acc := &models.Account{
		ID:       id,
		Name:     d.Name,
		Email:    d.Email,
		Role:     models.Role(d.Role),
		IsActive: d.IsActive,
	}
	if d.AssignedAssessor != nil && *d.AssignedAssessor != "" {
		assessor, err := uuid.Parse(*d.AssignedAssessor)
		if err != nil {
			return nil, fmt.Errorf("repository error: assigned assessor %q: %w", *d.AssignedAssessor, err)
		}
		acc.AssignedAssessor = &assessor
	}
	return acc, nil
}

type MongoAccountRepo struct {
	coll *mongo.Collection
}

func NewMongoAccountRepository(db *mongo.Database) *MongoAccountRepo {
	return &MongoAccountRepo{coll: db.Collection(usersCollection)}
}

func (r *MongoAccountRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	doc := &accountDocument{}
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(doc); err != nil {
		return nil, handleError(err)
	}
	return doc.toModel()
}

func (r *MongoAccountRepo) ListAssignedStudents(ctx context.Context, assessorID uuid.UUID) ([]uuid.UUID, error) {
	filter := bson.D{
		{Key: "assignedAssessor", Value: assessorID.String()},
		{Key: "role", Value: string(models.RoleStudent)},
		{Key: "isActive", Value: true},
	}
	accounts, err := r.find(ctx, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.ID
	}
	return ids, nil
}

func (r *MongoAccountRepo) ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Account, error) {
	if len(ids) == 0 {
		return []*models.Account{}, nil
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: uuidStrings(ids)}}}})
}

func (r *MongoAccountRepo) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoAccountRepo) find(ctx context.Context, filter bson.D) ([]*models.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.D{{Key: "password", Value: 0}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, handleError(err)
	}
	var docs []*accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, handleError(err)
	}
	out := make([]*models.Account, 0, len(docs))
	for _, doc := range docs {
		acc, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	return out, nil
}
