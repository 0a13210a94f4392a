package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonDigitRegex = regexp.MustCompile(`\D+`)
	htmlTagRegex  = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lower-cases a string using Unicode case mapping rules.
// A new Caser is created per call because Casers are not safe for concurrent use.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// StripHTML removes HTML tags. Entities are left as they are.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// StripNonDigits keeps only ASCII digits.
func StripNonDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Compose chains transforms left to right into one reusable function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		for _, transform := range transforms {
			value = transform(value)
		}
		return value
	}
}
