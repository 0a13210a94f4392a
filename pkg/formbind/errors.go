package formbind

import "errors"

var (
	ErrInvalidForm = errors.New("failed to parse form data")
	ErrInvalidJSON = errors.New("failed to parse JSON request body")
)
