package formbind

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

// RequestIDHeader is copied into the session logger when present.
const RequestIDHeader = "X-Request-ID"

// InvalidHandler writes the response for a request that failed validation.
type InvalidHandler func(w http.ResponseWriter, r *http.Request, s *validator.Session)

type options struct {
	log       *slog.Logger
	session   []validator.Option
	onInvalid InvalidHandler
}

// Option configures Middleware.
type Option func(*options)

// WithLogger sets the logger for request diagnostics and session tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSessionOptions passes options to every session the middleware creates.
func WithSessionOptions(opts ...validator.Option) Option {
	return func(o *options) {
		o.session = append(o.session, opts...)
	}
}

// OnInvalid replaces the default 422 JSON response.
func OnInvalid(h InvalidHandler) Option {
	return func(o *options) {
		if h != nil {
			o.onInvalid = h
		}
	}
}

// Middleware validates each request against schema before calling next.
//
// Malformed bodies get 400 and schema faults get 500. Requests with field
// failures are passed to the invalid handler instead of next.
func Middleware(schema validator.Schema, opts ...Option) func(http.Handler) http.Handler {
	o := &options{
		log:       slog.New(slog.DiscardHandler),
		onInvalid: RespondInvalid,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := o.log.With(
				logger.Component("formbind"),
				logger.RequestID(r.Header.Get(RequestIDHeader)),
			)

			input, err := InputFromRequest(r)
			if err != nil {
				log.WarnContext(r.Context(), "cannot read request input", logger.Error(err))
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}

			s := validator.NewSession(input, slices.Concat([]validator.Option{validator.WithLogger(log)}, o.session)...)
			if err := s.ValidateAll(schema); err != nil {
				log.ErrorContext(r.Context(), "schema rejected", logger.Error(err))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": http.StatusText(http.StatusInternalServerError)})
				return
			}
			defer func() {
				if err := s.Audit(); err != nil {
					log.ErrorContext(r.Context(), "validation failures left unhandled", logger.Error(err))
				}
			}()

			if s.HasErrors() {
				o.onInvalid(w, r, s)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// RespondInvalid writes 422 with {"errors": {field: message}}.
func RespondInvalid(w http.ResponseWriter, _ *http.Request, s *validator.Session) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"errors": validator.ExtractValidationErrors(s.Err()).Map(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
