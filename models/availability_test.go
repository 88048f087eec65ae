package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) Date {
	parsed, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func iv(start, end string) Interval {
	return Interval{Start: d(start), End: d(end)}
}

func defaultSet() AvailabilitySet {
	return AvailabilitySet{iv("2024-01-01", "2026-01-01")}
}

func TestAvailabilitySet_Contains(t *testing.T) {
	set := AvailabilitySet{iv("2024-01-01", "2024-02-09"), iv("2024-02-13", "2026-01-01")}

	assert.True(t, set.Contains(iv("2024-01-01", "2024-02-09")))
	assert.True(t, set.Contains(iv("2024-03-01", "2024-03-05")))
	assert.False(t, set.Contains(iv("2024-02-09", "2024-02-13")))
	assert.False(t, set.Contains(iv("2023-12-31", "2024-01-02")))
	assert.False(t, AvailabilitySet{}.Contains(iv("2024-01-01", "2024-01-01")))
}

func TestAvailabilitySet_Subtract(t *testing.T) {
	t.Run("Interior booking splits the interval", func(t *testing.T) {
		next, err := defaultSet().Subtract(iv("2024-02-10", "2024-02-12"))
		require.NoError(t, err)
		assert.Equal(t, AvailabilitySet{iv("2024-01-01", "2024-02-09"), iv("2024-02-13", "2026-01-01")}, next)
	})

	t.Run("Single day at the head", func(t *testing.T) {
		set := AvailabilitySet{iv("2024-01-01", "2024-02-09"), iv("2024-02-13", "2026-01-01")}
		next, err := set.Subtract(iv("2024-01-01", "2024-01-01"))
		require.NoError(t, err)
		assert.Equal(t, AvailabilitySet{iv("2024-01-02", "2024-02-09"), iv("2024-02-13", "2026-01-01")}, next)
	})

	t.Run("Tail of an interval", func(t *testing.T) {
		next, err := AvailabilitySet{iv("2024-01-01", "2024-01-10")}.Subtract(iv("2024-01-08", "2024-01-10"))
		require.NoError(t, err)
		assert.Equal(t, AvailabilitySet{iv("2024-01-01", "2024-01-07")}, next)
	})

	t.Run("Exact interval is removed and others untouched", func(t *testing.T) {
		set := AvailabilitySet{iv("2024-01-01", "2024-01-05"), iv("2024-01-10", "2024-01-20"), iv("2024-02-01", "2024-02-03")}
		next, err := set.Subtract(iv("2024-01-10", "2024-01-20"))
		require.NoError(t, err)
		assert.Equal(t, AvailabilitySet{iv("2024-01-01", "2024-01-05"), iv("2024-02-01", "2024-02-03")}, next)
	})

	t.Run("Single-day interval booked whole", func(t *testing.T) {
		next, err := AvailabilitySet{iv("2024-05-05", "2024-05-05")}.Subtract(iv("2024-05-05", "2024-05-05"))
		require.NoError(t, err)
		assert.Empty(t, next)
	})

	t.Run("Range crossing a gap is rejected", func(t *testing.T) {
		set := AvailabilitySet{iv("2024-01-01", "2024-02-09"), iv("2024-02-13", "2026-01-01")}
		next, err := set.Subtract(iv("2024-02-09", "2024-02-13"))
		assert.True(t, errors.Is(err, ErrRangeNotAvailable))
		assert.Nil(t, next)
		assert.Equal(t, AvailabilitySet{iv("2024-01-01", "2024-02-09"), iv("2024-02-13", "2026-01-01")}, set)
	})

	t.Run("Adjacent intervals are not merged", func(t *testing.T) {
		set := AvailabilitySet{iv("2024-01-01", "2024-01-05"), iv("2024-01-06", "2024-01-10")}
		_, err := set.Subtract(iv("2024-01-05", "2024-01-06"))
		assert.ErrorIs(t, err, ErrRangeNotAvailable)
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := defaultSet().Subtract(Interval{Start: d("2024-03-02"), End: d("2024-03-01")})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Receiver is not mutated", func(t *testing.T) {
		set := defaultSet()
		_, err := set.Subtract(iv("2024-06-01", "2024-06-03"))
		require.NoError(t, err)
		assert.Equal(t, defaultSet(), set)
	})
}

func TestAvailabilitySet_SubtractSequenceKeepsInvariants(t *testing.T) {
	set := defaultSet()
	bookings := []Interval{
		iv("2024-02-10", "2024-02-12"),
		iv("2024-01-01", "2024-01-01"),
		iv("2025-12-30", "2026-01-01"),
		iv("2024-02-13", "2024-02-13"),
		iv("2024-07-01", "2024-07-31"),
		iv("2024-01-02", "2024-02-09"),
	}

	for _, b := range bookings {
		before := set.Days()
		next, err := set.Subtract(b)
		require.NoError(t, err, "booking %s", b)
		require.NoError(t, next.Validate())
		assert.Equal(t, before-b.Days(), next.Days(), "booking %s", b)
		assert.False(t, next.Contains(Interval{Start: b.Start, End: b.Start}))
		set = next
	}
}

func TestNewAvailabilitySet(t *testing.T) {
	set, err := NewAvailabilitySet(iv("2024-03-01", "2024-03-05"), iv("2024-01-01", "2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, iv("2024-01-01", "2024-01-31"), set[0])

	_, err = NewAvailabilitySet(iv("2024-01-01", "2024-01-31"), iv("2024-01-31", "2024-02-05"))
	assert.Error(t, err)
}

func TestInterval(t *testing.T) {
	t.Run("Nights", func(t *testing.T) {
		assert.Equal(t, 2, iv("2024-01-01", "2024-01-03").Nights())
		assert.Equal(t, 0, iv("2024-01-01", "2024-01-01").Nights())
		assert.Equal(t, 29, iv("2024-02-01", "2024-03-01").Nights())
	})

	t.Run("ParseInterval", func(t *testing.T) {
		got, err := ParseInterval("2024-02-10", "2024-02-12")
		require.NoError(t, err)
		assert.Equal(t, iv("2024-02-10", "2024-02-12"), got)

		_, err = ParseInterval("", "2024-02-12")
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = ParseInterval("2024-02-10", "12/02/2024")
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = ParseInterval("2024-02-12", "2024-02-10")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Adjacent", func(t *testing.T) {
		assert.True(t, iv("2024-01-01", "2024-01-05").Adjacent(iv("2024-01-06", "2024-01-09")))
		assert.False(t, iv("2024-01-01", "2024-01-05").Adjacent(iv("2024-01-07", "2024-01-09")))
	})
}

func TestDate(t *testing.T) {
	t.Run("DateOf drops the clock", func(t *testing.T) {
		got := DateOf(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, NewDate(2024, 3, 10), got)
	})

	t.Run("JSON form", func(t *testing.T) {
		raw, err := NewDate(2024, 2, 9).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"2024-02-09"`, string(raw))

		var back Date
		require.NoError(t, back.UnmarshalJSON(raw))
		assert.True(t, back.Equal(NewDate(2024, 2, 9)))
	})

	t.Run("Optional", func(t *testing.T) {
		got, err := ParseOptionalDate("  ")
		assert.NoError(t, err)
		assert.Nil(t, got)

		_, err = ParseOptionalDate("tomorrow")
		assert.Error(t, err)
	})
}

func TestRental_Quote(t *testing.T) {
	r := &Rental{NightCost: 100}
	assert.Equal(t, int64(200), r.Quote(iv("2024-02-10", "2024-02-12")))
}
