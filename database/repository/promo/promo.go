package promoRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wanderbook/database"
	"wanderbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no active, unexpired promo matches the code.
var ErrNotFound = errors.New("promo code not found")

// PromoRepository defines promo code lookup operations.
type PromoRepository interface {
	FindActiveByCode(ctx context.Context, code string) (*models.PromoCode, error)
}

// MongoPromoRepo implements PromoRepository using MongoDB.
type MongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo creates a new instance of PromoRepository using MongoDB.
func NewMongoPromoRepo() PromoRepository {
	coll := database.DB().Collection("promo_codes")
	repo := &MongoPromoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPromoRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindActiveByCode retrieves a promo by code, canonicalized to upper case,
// requiring it to be active and not expired.
func (r *MongoPromoRepo) FindActiveByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"code":       strings.ToUpper(code),
		"active":     true,
		"expiryDate": bson.M{"$gte": time.Now()},
	}

	var promo models.PromoCode
	if err := r.coll.FindOne(ctx, filter).Decode(&promo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch promo code: %w", err)
	}
	return &promo, nil
}
