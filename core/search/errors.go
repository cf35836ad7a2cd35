package search

import "errors"

var (
	// ErrQueryTooLong is returned when query text exceeds MaxQueryLength.
	ErrQueryTooLong = errors.New("query text exceeds maximum length")
)
