package booking

import (
	"context"
	"fmt"

	"rentify/models"
)

// Quote prices a stay at a rental without reserving it.
func (s *DefaultBookingService) Quote(ctx context.Context, rentalID, checkIn, checkOut string) (int64, error) {
	stay, err := models.ParseInterval(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	rental, err := s.loadRental(ctx, rentalID)
	if err != nil {
		return 0, err
	}
	return rental.Quote(stay), nil
}

// parseStay reads an optional check-in/check-out pair. Both blank means no
// stay; a single date is rejected.
func parseStay(checkIn, checkOut string) (*models.Interval, error) {
	in, err := models.ParseOptionalDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in: %v", ErrInvalidRange, err)
	}
	out, err := models.ParseOptionalDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out: %v", ErrInvalidRange, err)
	}
	switch {
	case in == nil && out == nil:
		return nil, nil
	case in == nil || out == nil:
		return nil, fmt.Errorf("%w: check_in and check_out must be given together", ErrInvalidRange)
	}
	stay, err := models.NewInterval(*in, *out)
	if err != nil {
		return nil, err
	}
	return &stay, nil
}
