package logger

import "log/slog"

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Pattern records a pattern schema key under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Type records a declared field type under the key "type".
func Type(name string) slog.Attr {
	return slog.String("type", name)
}

// Outcome records a resolution outcome (valid, invalid, missing) under the key "outcome".
func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

// Requires records an unmet prerequisite field under the key "requires".
func Requires(field string) slog.Attr {
	return slog.String("requires", field)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
