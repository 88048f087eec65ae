package memoryRepo

import (
	"context"
	"testing"
	"time"

	bookingRepo "rentify/database/repository/booking"
	rentalRepo "rentify/database/repository/rental"
	"rentify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end string) models.Interval {
	t.Helper()
	iv, err := models.ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func seedRental(t *testing.T, s *Store, id, location string) *models.Rental {
	t.Helper()
	rental := &models.Rental{
		ID:           id,
		Name:         "Rental " + id,
		Location:     location,
		NightCost:    100,
		Availability: models.AvailabilitySet{interval(t, "2024-01-01", "2024-12-31")},
	}
	require.NoError(t, s.Create(context.Background(), rental))
	return rental
}

func TestStore_CreateAndGet(t *testing.T) {
	s := New()
	seedRental(t, s, "r1", "Paris")

	got, err := s.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Location)

	// returned copies do not alias stored state
	got.Availability[0].End = got.Availability[0].Start
	again, err := s.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", again.Availability[0].End.String())

	err = s.Create(context.Background(), &models.Rental{ID: "r1"})
	assert.ErrorIs(t, err, rentalRepo.ErrDuplicateID)

	_, err = s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, rentalRepo.ErrNotFound)
}

func TestStore_Find(t *testing.T) {
	s := New()
	seedRental(t, s, "b", "New York")
	seedRental(t, s, "a", "york harbour")
	seedRental(t, s, "c", "Paris")

	rentals, err := s.Find(context.Background(), rentalRepo.Filter{Location: "YORK"})
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, "a", rentals[0].ID)
	assert.Equal(t, "b", rentals[1].ID)

	stay := interval(t, "2025-01-01", "2025-01-02")
	rentals, err = s.Find(context.Background(), rentalRepo.Filter{Stay: &stay})
	require.NoError(t, err)
	assert.Empty(t, rentals)

	rentals, err = s.Find(context.Background(), rentalRepo.Filter{})
	require.NoError(t, err)
	assert.Len(t, rentals, 3)
}

func TestStore_SaveRentalAndBooking(t *testing.T) {
	s := New()
	ctx := context.Background()
	seedRental(t, s, "r1", "Paris")

	rental, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	stay := interval(t, "2024-03-01", "2024-03-03")
	rental.Availability, err = rental.Availability.Subtract(stay)
	require.NoError(t, err)

	booking := &models.Booking{
		ID:        "b1",
		RentalID:  "r1",
		StartDate: stay.Start,
		EndDate:   stay.End,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveRentalAndBooking(ctx, rental, booking, 0))
	assert.Equal(t, int64(1), rental.Version)

	stored, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.Len(t, stored.Availability, 2)

	got, err := s.Bookings().GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "r1", got.RentalID)

	_, err = s.Bookings().GetByID(ctx, "b2")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestStore_SaveRentalAndBooking_VersionConflictLeavesStateUntouched(t *testing.T) {
	s := New()
	ctx := context.Background()
	seedRental(t, s, "r1", "Paris")

	stale, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	stale.Availability = nil

	err = s.SaveRentalAndBooking(ctx, stale, &models.Booking{ID: "b1", RentalID: "r1"}, 7)
	assert.ErrorIs(t, err, rentalRepo.ErrVersionConflict)

	stored, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Version)
	assert.Len(t, stored.Availability, 1)

	bookings, err := s.Bookings().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestStore_SaveRentalAndBooking_MissingRental(t *testing.T) {
	s := New()
	err := s.SaveRentalAndBooking(context.Background(), &models.Rental{ID: "nope"}, &models.Booking{ID: "b"}, 0)
	assert.ErrorIs(t, err, rentalRepo.ErrNotFound)
}

func TestBookingView_Ordering(t *testing.T) {
	s := New()
	ctx := context.Background()
	seedRental(t, s, "r1", "Paris")

	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	stays := []models.Interval{
		interval(t, "2024-06-01", "2024-06-02"),
		interval(t, "2024-03-01", "2024-03-02"),
	}
	for i, stay := range stays {
		rental, err := s.GetByID(ctx, "r1")
		require.NoError(t, err)
		rental.Availability, err = rental.Availability.Subtract(stay)
		require.NoError(t, err)
		b := &models.Booking{
			ID:        []string{"first", "second"}[i],
			RentalID:  "r1",
			StartDate: stay.Start,
			EndDate:   stay.End,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, s.SaveRentalAndBooking(ctx, rental, b, rental.Version))
	}

	all, err := s.Bookings().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].ID, "newest first")

	byRental, err := s.Bookings().GetByRentalID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, byRental, 2)
	assert.Equal(t, "second", byRental[0].ID, "earliest stay first")

	none, err := s.Bookings().GetByRentalID(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_CanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, context.Canceled)
}
