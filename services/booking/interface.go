package booking

import (
	"context"
	"time"

	bookingRepo "rentify/database/repository/booking"
	rentalRepo "rentify/database/repository/rental"
	"rentify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMaxAttempts = 3

// BookingService is the availability and booking engine.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	Quote(ctx context.Context, rentalID, checkIn, checkOut string) (int64, error)
	ListAvailable(ctx context.Context, query models.ListingQuery) ([]models.Rental, error)
	CreateRental(ctx context.Context, req models.CreateRentalRequest) (*models.Rental, error)
	GetRental(ctx context.Context, id, checkIn, checkOut string) (*models.RentalDetails, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListRentalBookings(ctx context.Context, rentalID string) ([]models.Booking, error)
}

// ConfirmationPublisher announces committed bookings.
type ConfirmationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService implements BookingService. Idempotency and Publisher
// are optional.
type DefaultBookingService struct {
	Rentals     rentalRepo.RentalRepository
	Bookings    bookingRepo.BookingRepository
	Idempotency IdempotencyStore
	Publisher   ConfirmationPublisher
	Logger      *zap.Logger

	// MaxAttempts bounds the load-subtract-save cycle on version conflicts.
	MaxAttempts int
	// DefaultWindow is the availability of a newly created rental.
	DefaultWindow models.Interval

	Now   func() time.Time
	NewID func() string
}

// NewDefaultBookingService wires a service with the system clock, uuid ids
// and the given availability window.
func NewDefaultBookingService(
	rentals rentalRepo.RentalRepository,
	bookings bookingRepo.BookingRepository,
	window models.Interval,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Rentals:       rentals,
		Bookings:      bookings,
		Logger:        logger,
		MaxAttempts:   defaultMaxAttempts,
		DefaultWindow: window,
		Now:           time.Now,
		NewID:         func() string { return uuid.New().String() },
	}
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *DefaultBookingService) newID() string {
	if s.NewID == nil {
		return uuid.New().String()
	}
	return s.NewID()
}

func (s *DefaultBookingService) maxAttempts() int {
	if s.MaxAttempts < 1 {
		return defaultMaxAttempts
	}
	return s.MaxAttempts
}
