package sanitizer

import "errors"

var (
	// ErrUnknownFilter is returned for filter names that are not registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrEmptyFilter is returned when a filter name is empty.
	ErrEmptyFilter = errors.New("empty filter")

	// ErrDuplicateFilter is returned when registering a name that already exists.
	ErrDuplicateFilter = errors.New("filter already registered")
)
