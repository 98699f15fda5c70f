package bookingRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wanderbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reserveSlot conditionally increments the booked counter on the slot the
// booking targets. The array filter only matches while the slot still has
// room for the requested party, so concurrent writers cannot push booked
// past the slot capacity.
func (r *MongoBookingRepo) reserveSlot(ctx context.Context, booking *models.Booking, slotCapacity, units int) error {
	maxBooked := slotCapacity - units

	filter := bson.M{
		"id": booking.ExperienceID,
		"availableDates": bson.M{
			"$elemMatch": bson.M{
				"date": booking.SelectedDate,
				"slots": bson.M{
					"$elemMatch": bson.M{
						"time":   booking.SelectedSlot,
						"booked": bson.M{"$lte": maxBooked},
					},
				},
			},
		},
	}

	update := bson.M{
		"$inc": bson.M{"availableDates.$[d].slots.$[s].booked": units},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": booking.SelectedDate},
			bson.M{"s.time": booking.SelectedSlot, "s.booked": bson.M{"$lte": maxBooked}},
		},
	})

	res, err := r.experienceColl.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if res.ModifiedCount == 0 {
		return ErrCapacityConflict
	}
	return nil
}

// releaseSlot undoes a reservation. Used by the standalone-server path when
// the booking insert fails after the counter was already incremented.
func (r *MongoBookingRepo) releaseSlot(ctx context.Context, booking *models.Booking, units int) error {
	filter := bson.M{"id": booking.ExperienceID}
	update := bson.M{
		"$inc": bson.M{"availableDates.$[d].slots.$[s].booked": -units},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": booking.SelectedDate},
			bson.M{"s.time": booking.SelectedSlot},
		},
	})
	if _, err := r.experienceColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	return nil
}

// CreateWithReservation persists the booking and reserves its seats in a
// single Mongo transaction so a crash between the two writes cannot leave
// them inconsistent. Deployments without replica-set transactions fall back
// to the bare conditional increment followed by the insert.
func (r *MongoBookingRepo) CreateWithReservation(ctx context.Context, booking *models.Booking, slotCapacity int) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	units := booking.NumberOfPeople

	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return r.createWithoutTransaction(ctx, booking, slotCapacity, units)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if err := r.reserveSlot(sc, booking, slotCapacity, units); err != nil {
			return err
		}
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateReference
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == nil || err == ErrCapacityConflict || err == ErrDuplicateReference {
		return err
	}

	// Standalone mongod rejects the transaction at the first operation.
	if strings.Contains(err.Error(), "Transaction numbers") {
		return r.createWithoutTransaction(ctx, booking, slotCapacity, units)
	}
	return fmt.Errorf("booking transaction failed: %w", err)
}

// createWithoutTransaction keeps the capacity increment atomic per document
// and compensates the counter if the insert cannot complete.
func (r *MongoBookingRepo) createWithoutTransaction(ctx context.Context, booking *models.Booking, slotCapacity, units int) error {
	if err := r.reserveSlot(ctx, booking, slotCapacity, units); err != nil {
		return err
	}

	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		if releaseErr := r.releaseSlot(ctx, booking, units); releaseErr != nil {
			return fmt.Errorf("insert booking failed and slot release failed: %v (release: %w)", err, releaseErr)
		}
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReference
		}
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}
