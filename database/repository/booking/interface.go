package bookingRepo

import (
	"context"
	"errors"

	"rentify/models"
)

// ErrNotFound is returned when no booking has the requested id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository reads committed bookings. Bookings are only ever written
// together with their rental, see rentalRepo.RentalRepository.
type BookingRepository interface {
	// GetAll returns every booking, newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByRentalID returns the bookings of one rental ordered by start date.
	GetByRentalID(ctx context.Context, rentalID string) ([]models.Booking, error)
}
