package models

import "time"

// Booking is the immutable record of a confirmed stay. Rental name and
// location are copied at booking time and never refreshed.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	RentalID   string    `bson:"rental_id" json:"rental_id"`
	RentalName string    `bson:"rental_name" json:"rental_name"`
	Location   string    `bson:"location" json:"location"`
	StartDate  Date      `bson:"start_date" json:"start_date"`
	EndDate    Date      `bson:"end_date" json:"end_date"`
	TotalCost  int64     `bson:"total_cost" json:"total_cost"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Stay returns the booked range.
func (b *Booking) Stay() Interval {
	return Interval{Start: b.StartDate, End: b.EndDate}
}
