package formbind

import (
	"context"

	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

type contextKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *validator.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by Middleware, or nil.
func FromContext(ctx context.Context) *validator.Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*validator.Session)
	return s
}
