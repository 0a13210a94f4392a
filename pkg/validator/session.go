package validator

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/fieldguard/pkg/failure"
	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
	"github.com/dmitrymomot/fieldguard/pkg/types"
)

// Input maps field names to raw values: scalars or lists of scalars.
// Filters rewrite entries in place.
type Input map[string]any

// Session validates one input bag against schemas and holds the results.
//
// Every field key appears in at most one of Valid and Invalid, and Errors has
// an entry only for keys present in Invalid. Pattern keys hold aggregates:
// map[string]any in Valid and Invalid, failure.Group in Errors.
type Session struct {
	Valid   map[string]any
	Invalid map[string]any
	Errors  map[string]error

	input      Input
	types      *types.Registry
	filters    *sanitizer.Registry
	log        *slog.Logger
	plain      bool
	transitive bool

	edges   []edge
	members map[string][]string
	origin  string
}

// NewSession creates a session that owns input for its lifetime.
func NewSession(input Input, opts ...Option) *Session {
	if input == nil {
		input = Input{}
	}
	s := &Session{
		input:   input,
		types:   types.Default(),
		filters: sanitizer.Default(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// Input returns the input bag, including any rewrites made by filters.
func (s *Session) Input() Input {
	return s.input
}

// ValidateAll compiles schema, resets previous results and validates every
// entry in order, then resolves dependencies.
// Schema faults are returned before any input is read or mutated, except
// ErrUnmarkedList, which depends on the input. It leaves the results empty,
// but filters applied to earlier fields stay applied to the input.
func (s *Session) ValidateAll(schema Schema) error {
	s.origin = failure.Caller(1)

	steps, err := s.compileSchema(schema)
	if err != nil {
		return err
	}

	s.reset()
	for _, st := range steps {
		var err error
		if st.pattern == nil {
			err = s.resolve(st.key, st.rule)
		} else {
			err = s.resolvePattern(st)
		}
		if err != nil {
			// Faults that depend on the input surface mid-pass; drop partial results.
			s.reset()
			return err
		}
	}
	s.resolveDependencies()

	s.log.Debug("validation finished",
		logger.Count("valid", len(s.Valid)),
		logger.Count("invalid", len(s.Invalid)),
	)
	return nil
}

// Validate validates a single literal field, keeping results of other fields.
// Dependencies declared by rule are resolved immediately.
func (s *Session) Validate(field string, rule Rule) error {
	s.origin = failure.Caller(1)

	if field == "" {
		return schemaError(field, ErrInvalidFieldName)
	}
	if rule.Disabled {
		return nil
	}
	c, err := s.compileRule(rule)
	if err != nil {
		return schemaError(field, err)
	}
	if err := s.resolve(field, c); err != nil {
		return err
	}
	s.resolveDependencies()
	return nil
}

// resolvePattern runs a pattern rule over every matching input field in name
// order and aggregates the results under the pattern key.
func (s *Session) resolvePattern(st step) error {
	names := slices.Sorted(maps.Keys(s.input))
	for _, field := range names {
		if !st.pattern.MatchString(field) {
			continue
		}
		s.log.Debug("pattern matched", logger.Pattern(st.key), logger.Field(field))
		if err := s.resolve(field, st.rule); err != nil {
			return err
		}
		s.aggregate(st.key, field)
		if st.rule.RemoveOriginal {
			s.dropLiteral(field)
		}
	}
	return nil
}

func (s *Session) aggregate(pattern, field string) {
	if v, ok := s.Valid[field]; ok {
		subMap(s.Valid, pattern)[field] = v
	}
	if v, ok := s.Invalid[field]; ok {
		subMap(s.Invalid, pattern)[field] = v
	}
	if err, ok := s.Errors[field]; ok {
		subGroup(s.Errors, pattern)[field] = err
	}
	if !slices.Contains(s.members[field], pattern) {
		s.members[field] = append(s.members[field], pattern)
	}
}

// Clear removes results of the given fields, or of everything when called
// without arguments. The input bag is left untouched.
func (s *Session) Clear(fields ...string) {
	if len(fields) == 0 {
		s.reset()
		return
	}
	for _, field := range fields {
		s.dropLiteral(field)
		for _, pattern := range s.members[field] {
			s.dropMember(pattern, field)
		}
		delete(s.members, field)
	}
}

func (s *Session) HasErrors() bool {
	return len(s.Errors) > 0
}

// Err returns the accumulated failures as ValidationErrors, or nil.
// Reading the failures acknowledges them.
func (s *Session) Err() error {
	var out ValidationErrors
	for _, key := range slices.Sorted(maps.Keys(s.Errors)) {
		switch e := s.Errors[key].(type) {
		case failure.Group:
			for _, field := range e.Fields() {
				if _, literal := s.Errors[field]; literal {
					continue
				}
				out.Add(s.detach(field, e[field], s.memberValue(key, field)))
			}
		default:
			out.Add(s.detach(key, e, s.Invalid[key]))
		}
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

// Audit reports every failure in Errors that was never acknowledged.
// It is the explicit end-of-lifecycle check for the handling protocol.
func (s *Session) Audit() error {
	errs := make([]error, 0, len(s.Errors))
	for _, key := range slices.Sorted(maps.Keys(s.Errors)) {
		errs = append(errs, s.Errors[key])
	}
	return failure.Audit(errs...)
}

// MustAudit panics if any failure is unacknowledged.
func (s *Session) MustAudit() {
	if err := s.Audit(); err != nil {
		panic(err)
	}
}

func (s *Session) detach(field string, err error, value any) ValidationError {
	ve := ValidationError{Field: field, Value: value}
	if f, ok := err.(*failure.Failure); ok {
		ve.Message = f.Text()
	} else {
		ve.Message = err.Error()
	}
	return ve
}

func (s *Session) memberValue(pattern, field string) any {
	if m, ok := s.Invalid[pattern].(map[string]any); ok {
		return m[field]
	}
	return nil
}

func (s *Session) reset() {
	s.Valid = make(map[string]any)
	s.Invalid = make(map[string]any)
	s.Errors = make(map[string]error)
	s.edges = nil
	s.members = make(map[string][]string)
}

func (s *Session) dropLiteral(field string) {
	delete(s.Valid, field)
	delete(s.Invalid, field)
	delete(s.Errors, field)
}

func (s *Session) dropMember(pattern, field string) {
	if m, ok := s.Valid[pattern].(map[string]any); ok {
		delete(m, field)
		if len(m) == 0 {
			delete(s.Valid, pattern)
		}
	}
	if m, ok := s.Invalid[pattern].(map[string]any); ok {
		delete(m, field)
		if len(m) == 0 {
			delete(s.Invalid, pattern)
		}
	}
	if g, ok := s.Errors[pattern].(failure.Group); ok {
		delete(g, field)
		if len(g) == 0 {
			delete(s.Errors, pattern)
		}
	}
}

func subMap(results map[string]any, pattern string) map[string]any {
	m, ok := results[pattern].(map[string]any)
	if !ok {
		m = make(map[string]any)
		results[pattern] = m
	}
	return m
}

func subGroup(errs map[string]error, pattern string) failure.Group {
	g, ok := errs[pattern].(failure.Group)
	if !ok {
		g = make(failure.Group)
		errs[pattern] = g
	}
	return g
}
