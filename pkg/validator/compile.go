package validator

import (
	"fmt"
	"regexp"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/fieldguard/pkg/rangeexpr"
	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
	"github.com/dmitrymomot/fieldguard/pkg/types"
)

// compiledRule is a Rule with every name resolved and every expression parsed.
type compiledRule struct {
	Rule

	typeName string
	check    types.Predicate
	filter   sanitizer.Filter
	kind     rangeexpr.Kind
	length   *rangeexpr.Spec
	rng      *rangeexpr.Spec
	regex    *regexp.Regexp
	matchers []matcher
	hasMatch bool
}

// step is one schema entry ready to run.
type step struct {
	key     string
	pattern *regexp.Regexp
	rule    *compiledRule
}

// compileSchema resolves the whole schema before any input is touched.
func (s *Session) compileSchema(schema Schema) ([]step, error) {
	seen := make(map[string]struct{}, len(schema))
	steps := make([]step, 0, len(schema))

	for _, e := range schema {
		if e.Key == "" {
			return nil, schemaError(e.Key, ErrInvalidFieldName)
		}
		if _, dup := seen[e.Key]; dup {
			return nil, schemaError(e.Key, ErrDuplicateKey)
		}
		seen[e.Key] = struct{}{}

		if e.Rule.Disabled {
			continue
		}

		rule, err := s.compileRule(e.Rule)
		if err != nil {
			return nil, schemaError(e.Key, err)
		}

		st := step{key: e.Key, rule: rule}
		if IsPattern(e.Key) {
			if _, ok := s.input[e.Key]; ok {
				return nil, schemaError(e.Key, ErrPatternCollision)
			}
			if st.pattern, err = compilePattern(e.Key, false); err != nil {
				return nil, schemaError(e.Key, err)
			}
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func (s *Session) compileRule(r Rule) (*compiledRule, error) {
	c := &compiledRule{Rule: r, typeName: r.TypeName()}

	check, err := s.types.Lookup(c.typeName)
	if err != nil {
		return nil, err
	}
	c.check = check

	if r.Filter != nil {
		if c.filter, err = s.filters.Chain(r.Filter...); err != nil {
			return nil, err
		}
	}

	if r.Range != "" {
		kind, ok := rangeexpr.KindOf(c.typeName)
		if !ok {
			return nil, fmt.Errorf("%w: got %q", ErrRangeType, c.typeName)
		}
		spec, err := rangeexpr.Parse(r.Range)
		if err != nil {
			return nil, err
		}
		c.kind, c.rng = kind, &spec
	}

	if r.Length != "" {
		spec, err := rangeexpr.Parse(r.Length)
		if err != nil {
			return nil, err
		}
		c.length = &spec
	}

	if r.Regex != "" {
		if c.regex, err = compilePattern(r.Regex, true); err != nil {
			return nil, err
		}
	}

	if r.Match != nil {
		c.hasMatch = true
		for _, entry := range r.Match {
			m, err := compileMatcher(entry, c.typeName)
			if err != nil {
				return nil, err
			}
			c.matchers = append(c.matchers, m)
		}
	}

	return c, nil
}

// matcher reports whether a single value satisfies one match entry.
type matcher func(value any) bool

func compileMatcher(entry any, typeName string) (matcher, error) {
	switch m := entry.(type) {
	case *regexp.Regexp:
		if m == nil {
			return nil, fmt.Errorf("%w: nil regexp", ErrInvalidMatch)
		}
		return func(v any) bool { return m.MatchString(cast.ToString(v)) }, nil
	case func(string) bool:
		return func(v any) bool { return m(cast.ToString(v)) }, nil
	case func(any) bool:
		return m, nil
	case string:
		if IsPattern(m) {
			re, err := compilePattern(m, false)
			if err != nil {
				return nil, err
			}
			return func(v any) bool { return re.MatchString(cast.ToString(v)) }, nil
		}
		return literalMatcher(m, typeName), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return literalMatcher(m, typeName), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidMatch, entry)
}

// literalMatcher compares as the declared type: int and float numerically,
// everything else by textual form.
func literalMatcher(literal any, typeName string) matcher {
	switch typeName {
	case "int":
		want := types.Cast("int", literal)
		return func(v any) bool { return types.Cast("int", v) == want }
	case "float":
		want := types.Cast("float", literal)
		return func(v any) bool { return types.Cast("float", v) == want }
	}
	want := cast.ToString(literal)
	return func(v any) bool { return cast.ToString(v) == want }
}
