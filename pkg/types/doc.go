// Package types holds the named type predicates used to check raw field values
// and the cast table applied to values that passed validation.
//
// A Registry is an explicit, closed mapping from type name to Predicate.
// Default returns the built-in set:
//
//	int, float, numeric, string, char, charnum, email, json, date, datetime,
//	time, unix_time, int_list, any, bool, uuid
//
// Predicates are pure and only ever see scalars; multi-value handling belongs
// to the caller. Numeric predicates test the textual form of a value against a
// numeral pattern instead of relying on loose conversions, so "12abc" is never
// an int.
//
// Cast converts a validated scalar to the Go type that matches its declared
// type name. It is idempotent: Cast(t, Cast(t, v)) == Cast(t, v).
package types
