package rentalRepo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// buildFindFilter translates a listing filter into a rentals query. The
// location match is a case-insensitive substring; a stay must fit inside a
// single availability interval.
func buildFindFilter(f Filter) bson.M {
	filter := bson.M{}
	if f.Location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	if f.Stay != nil {
		filter["availability"] = bson.M{
			"$elemMatch": bson.M{
				"start_date": bson.M{"$lte": f.Stay.Start},
				"end_date":   bson.M{"$gte": f.Stay.End},
			},
		}
	}
	return filter
}

// buildBookingUpdate commits a booking: new availability, next version and
// the embedded booking record.
func buildBookingUpdate(availability interface{}, booking interface{}, expectedVersion int64) bson.M {
	return bson.M{
		"$set": bson.M{
			"availability": availability,
			"version":      expectedVersion + 1,
		},
		"$push": bson.M{"bookings": booking},
	}
}
