// Package sanitizer provides the named filters that rewrite raw field input
// before it is validated.
//
// Filters are total, pure string transforms. A Registry is an explicit,
// closed mapping from filter name to transform; Default returns the built-in
// set:
//
//   - trim              remove leading and trailing whitespace
//   - strip-html        remove HTML tags, keeping their text content
//   - lowercase         Unicode-aware lower casing
//   - strip-non-digits  drop everything that is not an ASCII digit
//
// Filters only touch strings. Numbers, booleans and nil pass through with
// their Go type intact, so trimming the number 42 yields 42.
//
// The Compose helper builds reusable pipelines:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	clean("  Mixed CASE ") // "mixed case"
//
// Unknown or empty filter names are schema-authoring faults and are reported
// as ErrUnknownFilter and ErrEmptyFilter.
package sanitizer
