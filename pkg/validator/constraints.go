package validator

import (
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/fieldguard/pkg/rangeexpr"
)

// testConstraints evaluates the declared constraints in the fixed order
// match, length, regex, range and stops at the first failure.
// A rule without constraints passes.
func (c *compiledRule) testConstraints(value any) bool {
	if c.hasMatch && !c.testMatch(value) {
		return false
	}
	if c.length != nil && !c.length.Test(float64(utf8.RuneCountInString(cast.ToString(value))), rangeexpr.Int) {
		return false
	}
	if c.regex != nil && !c.regex.MatchString(cast.ToString(value)) {
		return false
	}
	if c.rng != nil && !c.rng.Test(cast.ToFloat64(value), c.kind) {
		return false
	}
	return true
}

// testMatch passes when any entry matches. An empty match list never passes.
func (c *compiledRule) testMatch(value any) bool {
	for _, m := range c.matchers {
		if m(value) {
			return true
		}
	}
	return false
}
