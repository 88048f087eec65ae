package rentalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the rentals collection.
func (r *MongoRentalRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "location", Value: 1}},
			Options: options.Index().SetName("location_idx"),
		},
		// Booking ids are unique across all rentals.
		{
			Keys:    bson.D{{Key: "bookings.id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("unique_booking_id"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create rental indexes: %w", err)
	}
	return nil
}
