package booking

import (
	"context"
	"errors"
	"fmt"

	rentalRepo "rentify/database/repository/rental"
	"rentify/models"

	"go.uber.org/zap"
)

// Book reserves a stay. Checking availability, carving the stay out of it and
// recording the booking commit as one conditional write; when another booking
// commits first the whole sequence is replayed on the fresh rental.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	stay, err := models.ParseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	key, hasKey := IdempotencyKeyFromContext(ctx)
	if hasKey && s.Idempotency != nil {
		cached, found, err := s.Idempotency.Get(ctx, key)
		if err != nil {
			s.logger().Warn("Idempotency lookup failed, booking without replay protection",
				zap.String("key", key), zap.Error(err))
		} else if found {
			if cached.RentalID != req.RentalID ||
				!cached.StartDate.Equal(stay.Start) || !cached.EndDate.Equal(stay.End) {
				return nil, fmt.Errorf("%w: %s", ErrIdempotencyKeyReused, key)
			}
			s.logger().Info("Replaying booking for idempotency key",
				zap.String("key", key), zap.String("bookingID", cached.ID))
			return cached, nil
		}
	}

	booking, err := s.commitBooking(ctx, req.RentalID, stay)
	if err != nil {
		return nil, err
	}

	if hasKey && s.Idempotency != nil {
		if err := s.Idempotency.Put(ctx, key, booking); err != nil {
			s.logger().Warn("Failed to remember idempotency key",
				zap.String("key", key), zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	s.publishConfirmation(ctx, booking)
	return booking, nil
}

func (s *DefaultBookingService) commitBooking(ctx context.Context, rentalID string, stay models.Interval) (*models.Booking, error) {
	attempts := s.maxAttempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rental, err := s.loadRental(ctx, rentalID)
		if err != nil {
			return nil, err
		}

		remaining, err := rental.Availability.Subtract(stay)
		if err != nil {
			return nil, fmt.Errorf("rental %s: %w", rentalID, err)
		}

		booking := &models.Booking{
			ID:         s.newID(),
			RentalID:   rental.ID,
			RentalName: rental.Name,
			Location:   rental.Location,
			StartDate:  stay.Start,
			EndDate:    stay.End,
			TotalCost:  rental.Quote(stay),
			CreatedAt:  s.now(),
		}

		expected := rental.Version
		rental.Availability = remaining

		err = s.Rentals.SaveRentalAndBooking(ctx, rental, booking, expected)
		switch {
		case err == nil:
			s.logger().Info("Booking committed",
				zap.String("bookingID", booking.ID),
				zap.String("rentalID", rental.ID),
				zap.String("stay", stay.String()),
				zap.Int64("totalCost", booking.TotalCost),
				zap.Int("attempt", attempt))
			return booking, nil
		case errors.Is(err, rentalRepo.ErrVersionConflict):
			s.logger().Debug("Rental changed during booking, retrying",
				zap.String("rentalID", rentalID), zap.Int("attempt", attempt), zap.Error(err))
		case errors.Is(err, rentalRepo.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrRentalNotFound, rentalID)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			s.logger().Error("Failed to persist booking",
				zap.String("rentalID", rentalID), zap.String("bookingID", booking.ID), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
		}
	}
	return nil, fmt.Errorf("%w: rental %s, gave up after %d attempts", ErrConflict, rentalID, attempts)
}

func (s *DefaultBookingService) loadRental(ctx context.Context, rentalID string) (*models.Rental, error) {
	rental, err := s.Rentals.GetByID(ctx, rentalID)
	if err == nil {
		return rental, nil
	}
	if errors.Is(err, rentalRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRentalNotFound, rentalID)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
}

// publishConfirmation never fails the booking: it is already committed.
func (s *DefaultBookingService) publishConfirmation(ctx context.Context, booking *models.Booking) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishBookingConfirmed(ctx, booking); err != nil {
		s.logger().Error("Failed to publish booking confirmation",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
