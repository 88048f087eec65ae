package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"rentify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo reads bookings embedded in rental documents.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("rentals")}
}

func (r *MongoBookingRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetAll returns every booking, newest first.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.aggregate(ctx, allBookingsPipeline())
}

// GetByID retrieves a single booking.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.aggregate(ctx, bookingByIDPipeline(id))
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &bookings[0], nil
}

// GetByRentalID returns the bookings of one rental ordered by start date.
func (r *MongoBookingRepo) GetByRentalID(ctx context.Context, rentalID string) ([]models.Booking, error) {
	return r.aggregate(ctx, rentalBookingsPipeline(rentalID))
}
