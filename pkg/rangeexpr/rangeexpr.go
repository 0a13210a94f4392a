// Package rangeexpr parses and evaluates compact numeric range expressions.
//
// Supported forms:
//
//	"2-10"  inclusive range
//	"10-"   lower bound only
//	"-9"    upper bound only
//	"11"    exact value, compared as Int or Float
//
// Bounds are non-negative decimals. The same expressions serve numeric
// range constraints and string length constraints.
package rangeexpr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when the expression matches none of the supported forms.
	ErrInvalidFormat = errors.New("invalid range format, expected from-to (e.g. 1-10)")

	// ErrInvalidOrder is returned when the start bound is greater than the end bound.
	ErrInvalidOrder = errors.New("range start is greater than range end")
)

var rangeRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)?(-)?(\d+(?:\.\d+)?)?$`)

// Kind selects how exact-value expressions are compared.
type Kind int

const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	if k == Float {
		return "float"
	}
	return "int"
}

// KindOf maps a declared field type to its numeric kind.
// Only "int" and "float" have one.
func KindOf(typeName string) (Kind, bool) {
	switch typeName {
	case "int":
		return Int, true
	case "float":
		return Float, true
	}
	return Int, false
}

// Spec is a parsed range expression. Nil bounds are open.
type Spec struct {
	Start *float64
	End   *float64
	Exact bool
	raw   string
}

// Parse parses a range expression.
func Parse(s string) (Spec, error) {
	m := rangeRegex.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[3] == "") {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	spec := Spec{raw: s, Exact: m[2] == ""}
	if m[1] != "" {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		spec.Start = &v
	}
	if m[3] != "" {
		v, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		spec.End = &v
	}

	// "5" without separator lands in group 1; "-" alone is rejected above.
	if spec.Exact && spec.Start == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if spec.Start != nil && spec.End != nil && *spec.Start > *spec.End {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
	return spec, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// Test reports whether value satisfies the range.
// Exact expressions compare truncated integers for Int and raw floats for Float.
func (s Spec) Test(value float64, kind Kind) bool {
	if s.Exact {
		if s.Start == nil {
			return false
		}
		if kind == Float {
			return value == *s.Start
		}
		return math.Trunc(value) == math.Trunc(*s.Start)
	}
	if s.Start != nil && value < *s.Start {
		return false
	}
	if s.End != nil && value > *s.End {
		return false
	}
	return true
}

func (s Spec) String() string {
	return s.raw
}
