package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"rentify/services/booking"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("wrapped: %w", booking.ErrInvalidRange), http.StatusBadRequest, "invalid_range"},
		{booking.ErrInvalidRental, http.StatusBadRequest, "invalid_rental"},
		{booking.ErrRentalNotFound, http.StatusNotFound, "rental_not_found"},
		{booking.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
		{fmt.Errorf("rental r1: %w", booking.ErrRangeNotAvailable), http.StatusConflict, "range_not_available"},
		{booking.ErrConflict, http.StatusConflict, "conflict"},
		{booking.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "idempotency_key_reused"},
		{fmt.Errorf("%w: %w", booking.ErrPersistenceFailed, errors.New("io")), http.StatusServiceUnavailable, "persistence_failed"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, code := classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}
