package rentalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRentalRepo implements RentalRepository using MongoDB. Bookings live in
// the "bookings" array of their rental document so that a booking and the
// availability change it causes are written by one document update.
type MongoRentalRepo struct {
	coll *mongo.Collection
}

// NewMongoRentalRepo constructs a new instance of MongoRentalRepo.
func NewMongoRentalRepo(db *mongo.Database) *MongoRentalRepo {
	return &MongoRentalRepo{coll: db.Collection("rentals")}
}

// rentals are loaded without their embedded bookings.
var rentalProjection = bson.M{"bookings": 0, "_id": 0}

// Create inserts a new rental document.
func (r *MongoRentalRepo) Create(ctx context.Context, rental *models.Rental) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rental); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rental.ID)
		}
		return fmt.Errorf("failed to insert rental %s: %w", rental.ID, err)
	}
	return nil
}

// GetByID retrieves a rental document by ID.
func (r *MongoRentalRepo) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rental models.Rental
	opts := options.FindOne().SetProjection(rentalProjection)
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&rental); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error fetching rental with id %s: %w", id, err)
	}
	if err := rental.Availability.Validate(); err != nil {
		return nil, fmt.Errorf("rental %s has corrupt availability: %w", id, err)
	}
	return &rental, nil
}

// Find lists rentals matching the filter, ordered by id.
func (r *MongoRentalRepo) Find(ctx context.Context, filter Filter) ([]models.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(rentalProjection).
		SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, buildFindFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding rentals: %w", err)
	}
	defer cursor.Close(ctx)

	rentals := []models.Rental{}
	if err := cursor.All(ctx, &rentals); err != nil {
		return nil, fmt.Errorf("error decoding rentals: %w", err)
	}
	return rentals, nil
}

// SaveRentalAndBooking commits a booking with a single conditional update.
// A zero match means another writer advanced the version first, or the
// rental vanished; the two are told apart so callers retry only the former.
func (r *MongoRentalRepo) SaveRentalAndBooking(ctx context.Context, rental *models.Rental, booking *models.Booking, expectedVersion int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": rental.ID, "version": expectedVersion}
	update := buildBookingUpdate(rental.Availability, booking, expectedVersion)

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to save booking %s for rental %s: %w", booking.ID, rental.ID, err)
	}
	if result.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": rental.ID})
		if err != nil {
			return fmt.Errorf("failed to check rental %s after missed update: %w", rental.ID, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, rental.ID)
		}
		return fmt.Errorf("%w: rental %s expected version %d", ErrVersionConflict, rental.ID, expectedVersion)
	}
	rental.Version = expectedVersion + 1
	return nil
}
