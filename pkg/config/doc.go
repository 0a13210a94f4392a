// Package config loads fieldguard settings from the environment.
//
// Values come from FIELDGUARD_* variables, optionally seeded from .env files
// through github.com/joho/godotenv, and are parsed into Config with
// github.com/caarlos0/env/v11. The first successful load is cached for the
// lifetime of the process; ResetCache drops it, which is handy in tests.
//
// # Variables
//
//	FIELDGUARD_SCHEMA               path to a YAML, JSON or TOML schema document
//	FIELDGUARD_PLAIN_MESSAGES       store plain messages instead of tracked failures
//	FIELDGUARD_TRANSITIVE_REQUIRES  repeat dependency resolution until stable
//	FIELDGUARD_LOG_LEVEL            debug, info, warn or error
//	FIELDGUARD_LOG_FORMAT           json or text
//	FIELDGUARD_ENV                  development, staging or production
//
// # Usage
//
//	cfg := config.MustLoad()
//	log := cfg.Logger(os.Stderr)
//	s := validator.NewSession(input, cfg.SessionOptions(validator.WithLogger(log))...)
package config
