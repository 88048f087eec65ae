package models

import "errors"

var (
	// ErrInvalidRange reports a missing or malformed date, or an end before its start.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrRangeNotAvailable reports a range no single open interval covers.
	ErrRangeNotAvailable = errors.New("range not available")
)
