package handlers

import (
	"net/http"

	"rentify/models"
	"rentify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyHeader lets clients retry a booking submission safely.
const IdempotencyHeader = "Idempotency-Key"

// RentalHandler serves the rental and booking endpoints.
type RentalHandler struct {
	Service booking.BookingService
}

// ListRentalsHandler lists rentals by city and free stay.
func (h *RentalHandler) ListRentalsHandler(c *gin.Context) {
	var query models.ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": err.Error()})
		return
	}

	rentals, err := h.Service.ListAvailable(c.Request.Context(), query)
	if err != nil {
		respondError(c, "Failed to list rentals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": rentals})
}

func (h *RentalHandler) CreateRentalHandler(c *gin.Context) {
	var req models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Info("Invalid rental payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rental", "message": err.Error()})
		return
	}

	rental, err := h.Service.CreateRental(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create rental", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rental": rental})
}

// GetRentalHandler returns rental details, priced when check_in and
// check_out are supplied.
func (h *RentalHandler) GetRentalHandler(c *gin.Context) {
	details, err := h.Service.GetRental(c.Request.Context(), c.Param("id"), c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondError(c, "Failed to fetch rental", err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *RentalHandler) QuoteHandler(c *gin.Context) {
	checkIn, checkOut := c.Query("check_in"), c.Query("check_out")
	total, err := h.Service.Quote(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		respondError(c, "Failed to quote stay", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rental_id":   c.Param("id"),
		"check_in":    checkIn,
		"check_out":   checkOut,
		"total_price": total,
	})
}

// BookRentalHandler books a stay. Dates are validated by the service so a
// missing date is reported as an invalid range.
func (h *RentalHandler) BookRentalHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}
	req.RentalID = c.Param("id")

	ctx := c.Request.Context()
	if key := c.GetHeader(IdempotencyHeader); key != "" {
		ctx = booking.NewContextWithIdempotencyKey(ctx, key)
	}

	b, err := h.Service.Book(ctx, req)
	if err != nil {
		respondError(c, "Booking rejected", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "booking": b})
}

func (h *RentalHandler) ListRentalBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListRentalBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to list rental bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListBookingsHandler lists every booking, newest first.
func (h *RentalHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *RentalHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
