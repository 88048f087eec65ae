package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func stageNames(t *testing.T, pipeline []bson.D) []string {
	t.Helper()
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		if assert.Len(t, stage, 1) {
			names = append(names, stage[0].Key)
		}
	}
	return names
}

func TestAllBookingsPipeline(t *testing.T) {
	p := allBookingsPipeline()
	assert.Equal(t, []string{"$unwind", "$replaceRoot", "$sort"}, stageNames(t, p))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}}, p[2][0].Value)
}

func TestBookingByIDPipeline(t *testing.T) {
	p := bookingByIDPipeline("b-1")
	assert.Equal(t, []string{"$match", "$unwind", "$replaceRoot", "$match", "$limit"}, stageNames(t, p))
	assert.Equal(t, bson.D{{Key: "bookings.id", Value: "b-1"}}, p[0][0].Value)
	assert.Equal(t, bson.D{{Key: "id", Value: "b-1"}}, p[3][0].Value)
}

func TestRentalBookingsPipeline(t *testing.T) {
	p := rentalBookingsPipeline("r-1")
	assert.Equal(t, []string{"$match", "$unwind", "$replaceRoot", "$sort"}, stageNames(t, p))
	assert.Equal(t, bson.D{{Key: "id", Value: "r-1"}}, p[0][0].Value)
}
