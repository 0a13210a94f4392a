package failure

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Failure is a validation error bound to a single field.
// Field, Text, Message and Error mark it handled.
type Failure struct {
	field   string
	text    string
	origin  string
	handled atomic.Bool
}

// Option configures a Failure.
type Option func(*Failure)

// WithOrigin overrides the recorded source location.
// Empty values are ignored so that the constructor's own caller is kept.
func WithOrigin(origin string) Option {
	return func(f *Failure) {
		if origin != "" {
			f.origin = origin
		}
	}
}

// New creates an unhandled Failure for field with the given message text.
func New(field, text string, opts ...Option) *Failure {
	f := &Failure{
		field:  field,
		text:   text,
		origin: Caller(1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Caller returns "file:line" of the function skip frames above the caller.
// It returns an empty string when the frame is unavailable.
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Field returns the field name and marks the failure handled.
func (f *Failure) Field() string {
	f.handled.Store(true)
	return f.field
}

// Text returns the raw message text and marks the failure handled.
func (f *Failure) Text() string {
	f.handled.Store(true)
	return f.text
}

// Message returns the formatted "field: text" message and marks the failure handled.
func (f *Failure) Message() string {
	f.handled.Store(true)
	return fmt.Sprintf("%s: %s", f.field, f.text)
}

// Error implements the error interface. Like Message it marks the failure handled.
func (f *Failure) Error() string {
	return f.Message()
}

// Origin returns the source location where the failure was created.
func (f *Failure) Origin() string {
	return f.origin
}

func (f *Failure) Handle() {
	f.handled.Store(true)
}

// Unhandle resets the handled flag so the failure can be re-propagated.
func (f *Failure) Unhandle() {
	f.handled.Store(false)
}

func (f *Failure) IsHandled() bool {
	return f.handled.Load()
}

// Message is a plain error message that does not take part in the handling protocol.
type Message string

func (m Message) Error() string {
	return string(m)
}
