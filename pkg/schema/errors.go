package schema

import "errors"

var (
	// ErrUnsupportedFormat is returned for unknown formats and file extensions.
	ErrUnsupportedFormat = errors.New("unsupported schema format")

	// ErrInvalidDocument is returned when a document cannot be parsed or does not
	// have the expected shape.
	ErrInvalidDocument = errors.New("invalid schema document")
)
