package config

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

// Prefix is prepended to every variable name in Config.
const Prefix = "FIELDGUARD_"

// Config holds process-wide settings.
type Config struct {
	SchemaPath         string `env:"SCHEMA"`
	PlainMessages      bool   `env:"PLAIN_MESSAGES" envDefault:"false"`
	TransitiveRequires bool   `env:"TRANSITIVE_REQUIRES" envDefault:"false"`

	// Empty level or format keeps the environment's defaults.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Env       string `env:"ENV" envDefault:"production"`
}

// SessionOptions returns validator options matching the config, followed by extra.
func (c Config) SessionOptions(extra ...validator.Option) []validator.Option {
	var opts []validator.Option
	if c.PlainMessages {
		opts = append(opts, validator.WithPlainMessages())
	}
	if c.TransitiveRequires {
		opts = append(opts, validator.WithTransitiveRequires())
	}
	return append(opts, extra...)
}

// Logger builds a logger writing to w with the configured environment,
// level and format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, "fieldguard"),
		logger.WithOutput(w),
	}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(c.LogLevel)))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(opts...)
}

func (c Config) validate() error {
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
		return nil
	}
	return ErrInvalidLogFormat
}
