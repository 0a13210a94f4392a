package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidLogFormat is returned for FIELDGUARD_LOG_FORMAT values other than json or text.
	ErrInvalidLogFormat = errors.New("invalid log format")
)
