package rentalRepo

import (
	"context"
	"errors"

	"rentify/models"
)

var (
	// ErrNotFound is returned when no rental has the requested id.
	ErrNotFound = errors.New("rental not found")
	// ErrVersionConflict is returned when the stored rental changed since it
	// was loaded.
	ErrVersionConflict = errors.New("rental version conflict")
	// ErrDuplicateID is returned when creating a rental whose id is taken.
	ErrDuplicateID = errors.New("rental id already exists")
)

// Filter narrows a rental listing. Zero fields do not filter.
type Filter struct {
	Location string
	Stay     *models.Interval
}

// RentalRepository persists rentals together with the bookings carved out of
// their availability.
type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	Find(ctx context.Context, filter Filter) ([]models.Rental, error)
	// SaveRentalAndBooking stores the rental's new availability and the
	// booking in one atomic step, provided the stored version still equals
	// expectedVersion. On success rental.Version is advanced.
	SaveRentalAndBooking(ctx context.Context, rental *models.Rental, booking *models.Booking, expectedVersion int64) error
}
