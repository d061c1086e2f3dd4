package search

import "errors"

var (
	// ErrInvalidTypeFilter indicates an unrecognized impact-type filter.
	ErrInvalidTypeFilter = errors.New("invalid type filter")
)
