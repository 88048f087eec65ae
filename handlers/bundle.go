package handlers

import (
	"rentify/services/booking"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Rental endpoints
	ListRentalsHandler        gin.HandlerFunc
	CreateRentalHandler       gin.HandlerFunc
	GetRentalHandler          gin.HandlerFunc
	QuoteHandler              gin.HandlerFunc
	BookRentalHandler         gin.HandlerFunc
	ListRentalBookingsHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler gin.HandlerFunc
	GetBookingHandler   gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to the booking service.
func NewHandlerBundle(svc booking.BookingService) *HandlerBundle {
	rh := &RentalHandler{Service: svc}
	return &HandlerBundle{
		ListRentalsHandler:        rh.ListRentalsHandler,
		CreateRentalHandler:       rh.CreateRentalHandler,
		GetRentalHandler:          rh.GetRentalHandler,
		QuoteHandler:              rh.QuoteHandler,
		BookRentalHandler:         rh.BookRentalHandler,
		ListRentalBookingsHandler: rh.ListRentalBookingsHandler,
		ListBookingsHandler:       rh.ListBookingsHandler,
		GetBookingHandler:         rh.GetBookingHandler,
		HealthHandler:             HealthHandler,
	}
}
