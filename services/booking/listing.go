package booking

import (
	"context"
	"fmt"
	"strings"

	rentalRepo "rentify/database/repository/rental"
	"rentify/models"
)

// ListAvailable returns rentals whose location contains query.Location
// (ignoring case) and that can host the whole requested stay, ordered by id.
func (s *DefaultBookingService) ListAvailable(ctx context.Context, query models.ListingQuery) ([]models.Rental, error) {
	stay, err := parseStay(query.CheckIn, query.CheckOut)
	if err != nil {
		return nil, err
	}
	filter := rentalRepo.Filter{
		Location: strings.TrimSpace(query.Location),
		Stay:     stay,
	}
	rentals, err := s.Rentals.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return rentals, nil
}
