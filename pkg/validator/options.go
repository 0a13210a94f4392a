package validator

import (
	"log/slog"

	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
	"github.com/dmitrymomot/fieldguard/pkg/types"
)

// Option configures a Session.
type Option func(*Session)

// WithPlainMessages stores inert failure.Message values in Errors instead of
// failures that must be acknowledged.
func WithPlainMessages() Option {
	return func(s *Session) { s.plain = true }
}

// WithLogger sets the logger used for resolution diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTypes replaces the type registry. Nil is ignored.
func WithTypes(r *types.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.types = r
		}
	}
}

// WithFilters replaces the filter registry. Nil is ignored.
func WithFilters(r *sanitizer.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.filters = r
		}
	}
}

// WithTransitiveRequires repeats dependency resolution until nothing else is
// demoted, so that "a requires b, b requires c" invalidates a when c fails
// regardless of declaration order. The default is a single pass.
func WithTransitiveRequires() Option {
	return func(s *Session) { s.transitive = true }
}
