package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

func TestConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		value any
		valid bool
	}{
		{"no constraints", validator.Rule{}, "anything", true},
		{"type mismatch", validator.Rule{Type: "int"}, "12a", false},

		{"exact length counts runes", validator.Rule{Length: "5"}, "héllo", true},
		{"exact length too long", validator.Rule{Length: "5"}, "hello!", false},
		{"min length", validator.Rule{Length: "3-"}, "ab", false},
		{"max length", validator.Rule{Length: "-3"}, "abc", true},
		{"length bounds", validator.Rule{Length: "2-4"}, "abcde", false},

		{"regex", validator.Rule{Regex: "/^[a-z]+$/"}, "abc", true},
		{"regex fails", validator.Rule{Regex: "/^[a-z]+$/"}, "ab1", false},
		{"regex with flags", validator.Rule{Regex: "/^abc$/i"}, "ABC", true},
		{"regex with alternate delimiter", validator.Rule{Regex: "#^a/b$#"}, "a/b", true},
		{"regex without delimiters", validator.Rule{Regex: `^\d+$`}, "123", true},

		{"int range", validator.Rule{Type: "int", Range: "18-65"}, "65", true},
		{"int range below", validator.Rule{Type: "int", Range: "18-65"}, "17", false},
		{"int lower bound only", validator.Rule{Type: "int", Range: "10-"}, "9", false},
		{"int upper bound only", validator.Rule{Type: "int", Range: "-9"}, "9", true},
		{"int exact", validator.Rule{Type: "int", Range: "11"}, "11", true},
		{"int exact miss", validator.Rule{Type: "int", Range: "11"}, "12", false},
		{"float range", validator.Rule{Type: "float", Range: "1-1.23"}, "1.2", true},
		{"float range above", validator.Rule{Type: "float", Range: "1-1.23"}, "1.3", false},
		{"float exact", validator.Rule{Type: "float", Range: "1.5"}, "1.5", true},

		{"match literal", validator.Rule{Match: []any{"red", "green"}}, "green", true},
		{"match literal miss", validator.Rule{Match: []any{"red", "green"}}, "blue", false},
		{"match int compares numerically", validator.Rule{Type: "int", Match: []any{10}}, "010", true},
		{"match string compares text", validator.Rule{Match: []any{10}}, "010", false},
		{"match float compares numerically", validator.Rule{Type: "float", Match: []any{1.5}}, "1.50", true},
		{"match bool literal", validator.Rule{Type: "bool", Match: []any{true}}, "true", true},
		{"match delimited pattern", validator.Rule{Type: "int", Match: []any{666, `/^\d{2}$/`}}, "19", true},
		{"match compiled regexp", validator.Rule{Match: []any{regexp.MustCompile(`^x+$`)}}, "xxx", true},
		{"match string callback", validator.Rule{Match: []any{func(s string) bool { return strings.HasPrefix(s, "ok") }}}, "okay", true},
		{"match any callback", validator.Rule{Match: []any{func(v any) bool { return v == "yes" }}}, "no", false},
		{"empty match never passes", validator.Rule{Match: []any{}}, "x", false},

		{"all constraints", validator.Rule{Type: "int", Match: []any{`/^\d+$/`}, Length: "2", Regex: "/^[1-9]/", Range: "10-20"}, "15", true},
		{"all constraints range fails", validator.Rule{Type: "int", Match: []any{`/^\d+$/`}, Length: "2", Regex: "/^[1-9]/", Range: "10-20"}, "25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validator.NewSession(validator.Input{"f": tt.value}, validator.WithPlainMessages())
			require.NoError(t, s.Validate("f", tt.rule))

			if tt.valid {
				assert.Contains(t, s.Valid, "f")
				assert.NotContains(t, s.Invalid, "f")
			} else {
				assert.Contains(t, s.Invalid, "f")
				assert.NotContains(t, s.Valid, "f")
			}
		})
	}
}

func TestConstraints_Order(t *testing.T) {
	t.Parallel()

	t.Run("match is skipped when the type fails", func(t *testing.T) {
		calls := 0
		rule := validator.Rule{Type: "int", Match: []any{func(any) bool { calls++; return true }}}

		s := validator.NewSession(validator.Input{"f": "x"}, validator.WithPlainMessages())
		require.NoError(t, s.Validate("f", rule))
		assert.Contains(t, s.Invalid, "f")
		assert.Zero(t, calls)
	})

	t.Run("match runs per element until one fails", func(t *testing.T) {
		var seen []string
		rule := validator.Rule{
			Multiple: true,
			Match: []any{func(s string) bool {
				seen = append(seen, s)
				return s != "b"
			}},
		}

		s := validator.NewSession(validator.Input{"f": []string{"a", "b", "c"}}, validator.WithPlainMessages())
		require.NoError(t, s.Validate("f", rule))
		assert.Contains(t, s.Invalid, "f")
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("first matching entry wins", func(t *testing.T) {
		calls := 0
		rule := validator.Rule{Match: []any{"a", func(any) bool { calls++; return false }}}

		s := validator.NewSession(validator.Input{"f": "a"})
		require.NoError(t, s.Validate("f", rule))
		assert.Equal(t, "a", s.Valid["f"])
		assert.Zero(t, calls)
	})
}
