package types

import "errors"

var (
	// ErrUnknownType is returned when a type name is not registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrDuplicateType is returned when registering a name that already exists.
	ErrDuplicateType = errors.New("type already registered")
)
