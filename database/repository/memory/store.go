package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	bookingRepo "rentify/database/repository/booking"
	rentalRepo "rentify/database/repository/rental"
	"rentify/models"
)

// Store keeps rentals and bookings in process memory. Every value crossing
// its boundary is copied, so callers never share state with the store.
type Store struct {
	mu       sync.RWMutex
	rentals  map[string]*models.Rental
	bookings map[string]*models.Booking
	// booking ids per rental in commit order
	byRental map[string][]string
}

var (
	_ rentalRepo.RentalRepository   = (*Store)(nil)
	_ bookingRepo.BookingRepository = BookingView{}
)

func New() *Store {
	return &Store{
		rentals:  make(map[string]*models.Rental),
		bookings: make(map[string]*models.Booking),
		byRental: make(map[string][]string),
	}
}

func (s *Store) Create(ctx context.Context, rental *models.Rental) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rentals[rental.ID]; exists {
		return fmt.Errorf("%w: %s", rentalRepo.ErrDuplicateID, rental.ID)
	}
	s.rentals[rental.ID] = rental.Clone()
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rental, ok := s.rentals[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", rentalRepo.ErrNotFound, id)
	}
	return rental.Clone(), nil
}

func (s *Store) Find(ctx context.Context, filter rentalRepo.Filter) ([]models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	location := strings.ToLower(filter.Location)
	rentals := []models.Rental{}
	for _, rental := range s.rentals {
		if location != "" && !strings.Contains(strings.ToLower(rental.Location), location) {
			continue
		}
		if filter.Stay != nil && !rental.Availability.Contains(*filter.Stay) {
			continue
		}
		rentals = append(rentals, *rental.Clone())
	}
	sort.Slice(rentals, func(i, j int) bool { return rentals[i].ID < rentals[j].ID })
	return rentals, nil
}

// SaveRentalAndBooking applies both writes under one lock after checking the
// stored version, mirroring the conditional update of the Mongo repository.
func (s *Store) SaveRentalAndBooking(ctx context.Context, rental *models.Rental, booking *models.Booking, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rentals[rental.ID]
	if !ok {
		return fmt.Errorf("%w: %s", rentalRepo.ErrNotFound, rental.ID)
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: rental %s expected version %d, found %d",
			rentalRepo.ErrVersionConflict, rental.ID, expectedVersion, stored.Version)
	}
	if _, dup := s.bookings[booking.ID]; dup {
		return fmt.Errorf("booking %s already stored", booking.ID)
	}

	next := stored.Clone()
	next.Availability = rental.Availability.Clone()
	next.Version = expectedVersion + 1
	s.rentals[rental.ID] = next

	b := *booking
	s.bookings[b.ID] = &b
	s.byRental[rental.ID] = append(s.byRental[rental.ID], b.ID)

	rental.Version = next.Version
	return nil
}

// BookingView reads the bookings of a Store.
type BookingView struct {
	s *Store
}

// Bookings returns the booking repository backed by s.
func (s *Store) Bookings() BookingView {
	return BookingView{s: s}
}

// GetAll returns every booking, newest first.
func (v BookingView) GetAll(ctx context.Context) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, *b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ID < bookings[j].ID
	})
	return bookings, nil
}

func (v BookingView) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bookingRepo.ErrNotFound, id)
	}
	out := *b
	return &out, nil
}

// GetByRentalID returns the bookings of one rental ordered by start date.
func (v BookingView) GetByRentalID(ctx context.Context, rentalID string) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byRental[rentalID]
	bookings := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		bookings = append(bookings, *s.bookings[id])
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartDate.Before(bookings[j].StartDate)
	})
	return bookings, nil
}
