package models

import "time"

// Rental is a bookable unit. It exclusively owns its availability.
type Rental struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Location     string          `bson:"location" json:"location"`
	NightCost    int64           `bson:"night_cost" json:"night_cost"`
	Availability AvailabilitySet `bson:"availability" json:"availability"`
	Version      int64           `bson:"version" json:"version"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
}

// Quote is the flat price of a stay: nights × nightly cost.
func (r *Rental) Quote(stay Interval) int64 {
	return int64(stay.Nights()) * r.NightCost
}

// Clone returns a copy that shares no availability storage with r.
func (r *Rental) Clone() *Rental {
	c := *r
	c.Availability = r.Availability.Clone()
	return &c
}
