package models

// BookingRequest carries the raw dates of a booking so that a missing or
// malformed value is rejected by the booking engine itself.
type BookingRequest struct {
	RentalID  string `json:"rentalId"`
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
}

// CreateRentalRequest holds the fields of a new rental.
type CreateRentalRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	NightCost int64  `json:"night_cost"`
}

// ListingQuery filters the rental listing. Every field is optional.
type ListingQuery struct {
	Location string `form:"city"`
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

// RentalDetails is a rental with the price of a requested stay, if any.
type RentalDetails struct {
	Rental     *Rental `json:"rental"`
	TotalPrice int64   `json:"total_price"`
}
