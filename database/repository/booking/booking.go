package bookingRepo

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

var (
	// ErrNotFound is returned when no booking matches the given reference.
	ErrNotFound = errors.New("booking not found")
	// ErrCapacityConflict is returned when the slot reservation matched no
	// document, i.e. the slot vanished or a concurrent booking took the seats.
	ErrCapacityConflict = errors.New("insufficient slot capacity")
	// ErrDuplicateReference is returned when the booking reference collides
	// with an existing one. Callers regenerate and retry.
	ErrDuplicateReference = errors.New("duplicate booking reference")
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	// CreateWithReservation inserts the booking and increments the booked
	// counter on the matching slot as one unit. slotCapacity is the total
	// seat count of the target slot from the admission read.
	CreateWithReservation(ctx context.Context, booking *models.Booking, slotCapacity int) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB. It holds both
// collections because a booking write spans the booking document and the
// slot counters embedded in the experience document.
type MongoBookingRepo struct {
	bookingColl    *mongo.Collection
	experienceColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl:    db.Collection("bookings"),
		experienceColl: db.Collection("experiences"),
	}

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
// The unique index on bookingReference backs reference-collision detection.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingReference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerEmail", Value: 1}}},
	}

	_, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByReference retrieves a booking by its public reference code.
func (r *MongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"bookingReference": reference}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", reference, err)
	}
	return &booking, nil
}
