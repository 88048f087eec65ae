package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "rentify/database/repository/booking"
	"rentify/models"

	"go.uber.org/zap"
)

// CreateRental registers a rental that is open for the whole default window.
func (s *DefaultBookingService) CreateRental(ctx context.Context, req models.CreateRentalRequest) (*models.Rental, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRental)
	case location == "":
		return nil, fmt.Errorf("%w: location is required", ErrInvalidRental)
	case req.NightCost < 0:
		return nil, fmt.Errorf("%w: night cost must not be negative", ErrInvalidRental)
	}

	availability, err := models.NewAvailabilitySet(s.DefaultWindow)
	if err != nil || s.DefaultWindow.Start.IsZero() {
		return nil, fmt.Errorf("%w: default availability window %s is not usable", ErrInvalidRental, s.DefaultWindow)
	}

	rental := &models.Rental{
		ID:           s.newID(),
		Name:         name,
		Location:     location,
		NightCost:    req.NightCost,
		Availability: availability,
		CreatedAt:    s.now(),
	}
	if err := s.Rentals.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	s.logger().Info("Rental created", zap.String("rentalID", rental.ID), zap.String("location", rental.Location))
	return rental, nil
}

// GetRental returns a rental and, when a stay is given, its price.
func (s *DefaultBookingService) GetRental(ctx context.Context, id, checkIn, checkOut string) (*models.RentalDetails, error) {
	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	rental, err := s.loadRental(ctx, id)
	if err != nil {
		return nil, err
	}
	details := &models.RentalDetails{Rental: rental}
	if stay != nil {
		details.TotalPrice = rental.Quote(*stay)
	}
	return details, nil
}

// ListBookings returns every booking, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return booking, nil
}

// ListRentalBookings returns the bookings of one rental by start date.
func (s *DefaultBookingService) ListRentalBookings(ctx context.Context, rentalID string) ([]models.Booking, error) {
	if _, err := s.loadRental(ctx, rentalID); err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetByRentalID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return bookings, nil
}
