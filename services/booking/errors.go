package booking

import (
	"errors"

	"rentify/models"
)

// Error kinds returned by the booking service. Match them with errors.Is.
var (
	ErrInvalidRange      = models.ErrInvalidRange
	ErrRangeNotAvailable = models.ErrRangeNotAvailable
	ErrRentalNotFound    = errors.New("rental not found")
	ErrBookingNotFound   = errors.New("booking not found")
	// ErrConflict means concurrent writers kept winning the rental until the
	// retry budget ran out.
	ErrConflict          = errors.New("rental was modified concurrently")
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrInvalidRental     = errors.New("invalid rental")
	// ErrIdempotencyKeyReused means the key already produced a booking for a
	// different rental or stay.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")
)
