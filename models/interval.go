package models

import "fmt"

// Interval is a closed range of calendar days [Start, End].
type Interval struct {
	Start Date `bson:"start_date" json:"start_date"`
	End   Date `bson:"end_date" json:"end_date"`
}

// NewInterval validates start <= end.
func NewInterval(start, end Date) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("%w: missing date", ErrInvalidRange)
	}
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, end, start)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval builds an Interval from two YYYY-MM-DD strings. A blank or
// malformed side yields ErrInvalidRange.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
	}
	return NewInterval(s, e)
}

// Covers reports whether o lies entirely inside i.
func (i Interval) Covers(o Interval) bool {
	return !o.Start.Before(i.Start) && !i.End.Before(o.End)
}

// Adjacent reports whether one interval ends the day before the other starts.
func (i Interval) Adjacent(o Interval) bool {
	return i.End.AddDays(1).Equal(o.Start) || o.End.AddDays(1).Equal(i.Start)
}

// Days is the number of calendar days in the range, both ends included.
func (i Interval) Days() int {
	return DaysBetween(i.Start, i.End) + 1
}

// Nights is end-day minus start-day; a same-day range has zero nights.
func (i Interval) Nights() int {
	return DaysBetween(i.Start, i.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Start, i.End)
}
