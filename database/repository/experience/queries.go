package experienceRepo

import (
	"context"
	"fmt"
	"time"

	"wanderbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildListFilter translates a ListFilter into a Mongo query document.
// Search is a case-insensitive substring match over title, description and
// location (OR); category is an exact match; both combine with AND.
func buildListFilter(filter ListFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"location": regex},
		}
	}

	return query
}

// List retrieves experience summaries matching the filter. The availableDates
// subtree is projected out to bound the payload size of list views.
func (r *MongoExperienceRepo) List(ctx context.Context, filter ListFilter) ([]models.Experience, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"availableDates": 0})
	cursor, err := r.coll.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	experiences := []models.Experience{}
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}
	return experiences, nil
}
