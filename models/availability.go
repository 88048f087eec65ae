package models

import (
	"fmt"
	"sort"
)

// AvailabilitySet is the ordered list of open ranges of one rental. Intervals
// are sorted by start and pairwise disjoint. Adjacent intervals are kept
// apart: a range spanning two of them is not available.
type AvailabilitySet []Interval

// NewAvailabilitySet sorts a copy of the given intervals and validates it.
func NewAvailabilitySet(intervals ...Interval) (AvailabilitySet, error) {
	set := make(AvailabilitySet, len(intervals))
	copy(set, intervals)
	sort.Slice(set, func(a, b int) bool { return set[a].Start.Before(set[b].Start) })
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks ordering, disjointness and start <= end of every interval.
func (s AvailabilitySet) Validate() error {
	for idx, iv := range s {
		if iv.End.Before(iv.Start) {
			return fmt.Errorf("interval %d %s: end before start", idx, iv)
		}
		if idx > 0 && !s[idx-1].End.Before(iv.Start) {
			return fmt.Errorf("interval %d %s overlaps or precedes %s", idx, iv, s[idx-1])
		}
	}
	return nil
}

// Contains reports whether a single interval of the set covers r.
func (s AvailabilitySet) Contains(r Interval) bool {
	for _, iv := range s {
		if iv.Covers(r) {
			return true
		}
	}
	return false
}

// Subtract returns a new set with r removed. The receiver is left untouched.
func (s AvailabilitySet) Subtract(r Interval) (AvailabilitySet, error) {
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	if !s.Contains(r) {
		return nil, fmt.Errorf("%w: %s", ErrRangeNotAvailable, r)
	}

	next := make(AvailabilitySet, 0, len(s)+1)
	for _, p := range s {
		switch {
		case r.End.Before(p.Start), p.End.Before(r.Start):
			next = append(next, p)
		case !r.Start.After(p.Start) && !r.End.Before(p.End):
			// fully booked, drop it
		case !r.Start.After(p.Start):
			next = next.appendPiece(r.End.AddDays(1), p.End)
		case !r.End.Before(p.End):
			next = next.appendPiece(p.Start, r.Start.AddDays(-1))
		default:
			next = next.appendPiece(p.Start, r.Start.AddDays(-1))
			next = next.appendPiece(r.End.AddDays(1), p.End)
		}
	}
	return next, nil
}

// appendPiece skips degenerate remainders.
func (s AvailabilitySet) appendPiece(start, end Date) AvailabilitySet {
	if end.Before(start) {
		return s
	}
	return append(s, Interval{Start: start, End: end})
}

// Days counts every open day in the set.
func (s AvailabilitySet) Days() int {
	total := 0
	for _, iv := range s {
		total += iv.Days()
	}
	return total
}

func (s AvailabilitySet) Clone() AvailabilitySet {
	if s == nil {
		return nil
	}
	out := make(AvailabilitySet, len(s))
	copy(out, s)
	return out
}
