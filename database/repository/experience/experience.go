package experienceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wanderbook/database"
	"wanderbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no experience matches the given id.
var ErrNotFound = errors.New("experience not found")

// ListFilter narrows the catalog listing. Zero values mean "no filter".
type ListFilter struct {
	Category string
	Search   string
}

// ExperienceRepository defines catalog persistence operations.
type ExperienceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	List(ctx context.Context, filter ListFilter) ([]models.Experience, error)
}

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.DB().Collection("experiences")
	repo := &MongoExperienceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoExperienceRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a full experience document, dates and slots included.
func (r *MongoExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch experience with id %s: %w", id, err)
	}
	return &exp, nil
}
