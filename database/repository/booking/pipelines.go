package bookingRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// unwindBookings turns each embedded booking into a top-level document.
func unwindBookings() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$bookings"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$bookings"}}}},
	}
}

func allBookingsPipeline() mongo.Pipeline {
	pipeline := unwindBookings()
	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}}}},
	)
}

func bookingByIDPipeline(id string) mongo.Pipeline {
	// The first match uses the bookings.id index to pick the rental.
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "bookings.id", Value: id}}}}}
	pipeline = append(pipeline, unwindBookings()...)
	return append(pipeline,
		bson.D{{Key: "$match", Value: bson.D{{Key: "id", Value: id}}}},
		bson.D{{Key: "$limit", Value: 1}},
	)
}

func rentalBookingsPipeline(rentalID string) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "id", Value: rentalID}}}}}
	pipeline = append(pipeline, unwindBookings()...)
	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "start_date", Value: 1}}}},
	)
}
