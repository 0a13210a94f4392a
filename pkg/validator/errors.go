package validator

import (
	"errors"
	"fmt"
)

// Schema-authoring faults. Field validation failures never use these.
var (
	// ErrUnknownOption is returned when a rule document contains an unrecognized key.
	ErrUnknownOption = errors.New("unknown rule option")

	// ErrInvalidRule is returned when a rule document cannot be decoded.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidFieldName is returned for empty field names.
	ErrInvalidFieldName = errors.New("field name must be a non-empty string")

	// ErrDuplicateKey is returned when a schema lists the same key twice.
	ErrDuplicateKey = errors.New("duplicate schema key")

	// ErrPatternCollision is returned when a pattern key also exists literally in the input.
	ErrPatternCollision = errors.New("pattern key exists literally in input")

	// ErrInvalidPattern is returned when a pattern key, regex option or match pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidMatch is returned for match entries of an unsupported kind.
	ErrInvalidMatch = errors.New("invalid match entry")

	// ErrRangeType is returned when a range is declared on a type other than int or float.
	ErrRangeType = errors.New("range requires type int or float")

	// ErrUnmarkedList is returned when filtering a list value whose rule is not multiple.
	ErrUnmarkedList = errors.New("field is a list but rule is not multiple")
)

// SchemaError names the schema key a fault was found in.
type SchemaError struct {
	Key string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema key %q: %v", e.Key, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func schemaError(key string, err error) error {
	return &SchemaError{Key: key, Err: err}
}
