package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fieldguard/pkg/failure"
	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
	"github.com/dmitrymomot/fieldguard/pkg/types"
)

type outcome int

const (
	outcomeMissing outcome = iota
	outcomeInvalid
	outcomeValid
)

func (o outcome) String() string {
	switch o {
	case outcomeValid:
		return "valid"
	case outcomeInvalid:
		return "invalid"
	}
	return "missing"
}

// resolve runs the single-field decision procedure and records the outcome.
func (s *Session) resolve(field string, c *compiledRule) error {
	if c.Disabled {
		return nil
	}

	override := c.Value
	if c.filter != nil {
		var err error
		if override != nil {
			if override, err = applyFilter(field, c, override); err != nil {
				return err
			}
			// A filtered override replaces the input value as well.
			s.input[field] = override
		} else if raw, ok := s.input[field]; ok && raw != nil {
			if s.input[field], err = applyFilter(field, c, raw); err != nil {
				return err
			}
		}
	}

	value := override
	if value == nil {
		value = s.input[field]
	}
	if isAbsent(value) && c.Default != nil && !c.IsRequired() {
		value = c.Default
	}

	result := c.validity(value)
	s.log.Debug("field resolved",
		logger.Field(field),
		logger.Type(c.typeName),
		logger.Outcome(result.String()),
	)

	switch {
	case result == outcomeValid:
		s.setValid(field, castValue(c.typeName, value))
		if len(c.Requires) > 0 {
			s.edges = append(s.edges, edge{field: field, requires: c.Requires})
		}
	case result == outcomeInvalid:
		s.setInvalid(field, c.invalidMessage(field), value)
	case c.IsRequired():
		s.setInvalid(field, c.missingMessage(field), nil)
	default:
		s.setValid(field, nil)
	}
	return nil
}

// validity decides valid, invalid or missing for an already filtered value.
func (c *compiledRule) validity(value any) outcome {
	if isAbsent(value) {
		return outcomeMissing
	}

	list, isList := asList(value)
	switch {
	case c.Multiple && c.IsRequired() && !isList:
		return outcomeMissing
	case isList && !c.Multiple:
		return outcomeInvalid
	case !isList:
		list = []any{value}
	}

	for _, v := range list {
		if !c.check(v) {
			return outcomeInvalid
		}
		if !c.testConstraints(v) {
			return outcomeInvalid
		}
	}
	return outcomeValid
}

func (s *Session) setValid(field string, value any) {
	delete(s.Invalid, field)
	delete(s.Errors, field)
	s.Valid[field] = value
}

func (s *Session) setInvalid(field, msg string, value any) {
	delete(s.Valid, field)
	s.Invalid[field] = value
	s.Errors[field] = s.newError(field, msg)
}

func (s *Session) newError(field, msg string) error {
	if s.plain {
		return failure.Message(msg)
	}
	return failure.New(field, msg, failure.WithOrigin(s.origin))
}

func applyFilter(field string, c *compiledRule, value any) (any, error) {
	list, isList := asList(value)
	if !isList {
		return sanitizer.Run(c.filter, value), nil
	}
	if !c.Multiple {
		return nil, fmt.Errorf("%w: %q", ErrUnmarkedList, field)
	}
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = sanitizer.Run(c.filter, v)
	}
	return out, nil
}

func castValue(typeName string, value any) any {
	if list, ok := asList(value); ok {
		return types.CastAll(typeName, list)
	}
	return types.Cast(typeName, value)
}

// isAbsent treats nil and the empty string as a missing value.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// asList normalizes any slice or array (except []byte) to []any.
func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
