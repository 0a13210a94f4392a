package types

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	intRegex      = regexp.MustCompile(`^\d+$`)
	floatRegex    = regexp.MustCompile(`^\d+(\.\d+)?$`)
	numericRegex  = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
	wordRegex     = regexp.MustCompile(`\w`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}$`)
	timeRegex     = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)
	unixTimeRegex = regexp.MustCompile(`^\d{10}$`)
	intListRegex  = regexp.MustCompile(`^\d+(?:,\d+)*$`)

	tagValidator = validator.New()
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// text returns the textual form of a scalar. Non-scalars yield ok == false.
func text(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		// Booleans have no numeral form.
		return "", false
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	return s, true
}

func matches(re *regexp.Regexp, value any) bool {
	s, ok := text(value)
	return ok && re.MatchString(s)
}

// Int accepts non-negative whole numerals.
func Int(value any) bool { return matches(intRegex, value) }

// Float accepts non-negative decimals with an optional fraction.
func Float(value any) bool { return matches(floatRegex, value) }

// Numeric accepts any signed decimal or exponent numeral, tolerating surrounding whitespace.
func Numeric(value any) bool { return matches(numericRegex, value) }

// String accepts only values that already are strings.
func String(value any) bool {
	_, ok := value.(string)
	return ok
}

// Char accepts values containing at least one word character.
func Char(value any) bool { return matches(wordRegex, value) }

func CharNum(value any) bool { return matches(wordRegex, value) }

func Email(value any) bool {
	s, ok := text(value)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	return tagValidator.Var(s, "email") == nil
}

// JSON accepts text that decodes to a truthy JSON value.
// null, false, 0, "", "0" and [] are rejected like malformed input.
func JSON(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return false
	}
	switch v := decoded.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != "" && v != "0"
	case []any:
		return len(v) > 0
	}
	return true
}

// Date accepts YYYY-MM-DD that names a real calendar day.
func Date(value any) bool {
	s, ok := text(value)
	if !ok || !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// DateTime accepts "YYYY-MM-DD hh:mm:ss" that names a real moment.
func DateTime(value any) bool {
	s, ok := text(value)
	if !ok || !dateTimeRegex.MatchString(s) {
		return false
	}
	t, err := time.Parse(dateTimeLayout, s)
	return err == nil && t.Format(dateTimeLayout) == s
}

// Time accepts 24-hour hh:mm.
func Time(value any) bool { return matches(timeRegex, value) }

// UnixTime accepts positive ten-digit unix timestamps.
func UnixTime(value any) bool {
	s, ok := text(value)
	if !ok || !unixTimeRegex.MatchString(s) {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

// IntList accepts comma-joined non-negative integers without a trailing separator.
func IntList(value any) bool { return matches(intListRegex, value) }

func Any(any) bool { return true }

func Bool(value any) bool {
	if value == nil {
		return false
	}
	_, err := cast.ToBoolE(value)
	return err == nil
}

func UUID(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
