package handlers

import (
	"context"
	"errors"
	"net/http"

	"rentify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorKind struct {
	err    error
	status int
	code   string
}

var errorKinds = []errorKind{
	{booking.ErrInvalidRange, http.StatusBadRequest, "invalid_range"},
	{booking.ErrInvalidRental, http.StatusBadRequest, "invalid_rental"},
	{booking.ErrRentalNotFound, http.StatusNotFound, "rental_not_found"},
	{booking.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
	{booking.ErrRangeNotAvailable, http.StatusConflict, "range_not_available"},
	{booking.ErrConflict, http.StatusConflict, "conflict"},
	{booking.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "idempotency_key_reused"},
	{booking.ErrPersistenceFailed, http.StatusServiceUnavailable, "persistence_failed"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
}

// classify maps a service error to its HTTP status and stable error code.
func classify(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func respondError(c *gin.Context, msg string, err error) {
	status, code := classify(err)
	logger := getLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.String("code", code), zap.Error(err))
	} else {
		logger.Info(msg, zap.String("code", code), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": code, "message": err.Error()})
}
