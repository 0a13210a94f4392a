package validator

import "github.com/dmitrymomot/fieldguard/pkg/logger"

// edge records that field, which passed validation, requires other fields.
type edge struct {
	field    string
	requires []string
}

// resolveDependencies demotes valid fields whose prerequisites are not valid.
// Edges are processed in recording order and then discarded. A single pass
// does not revisit fields checked before a later demotion; with
// WithTransitiveRequires passes repeat until nothing changes.
func (s *Session) resolveDependencies() {
	defer func() { s.edges = nil }()

	for {
		demoted := false
		for _, e := range s.edges {
			value, literal, ok := s.validValue(e.field)
			if !ok {
				continue
			}
			for _, required := range e.requires {
				if _, ok := s.Valid[required]; ok {
					continue
				}
				s.demote(e.field, required, value, literal)
				demoted = true
				break
			}
		}
		if !s.transitive || !demoted {
			return
		}
	}
}

// validValue finds the valid value of field, either as a literal entry or,
// when remove_original dropped it, inside a pattern aggregate.
func (s *Session) validValue(field string) (value any, literal, ok bool) {
	if v, ok := s.Valid[field]; ok {
		return v, true, true
	}
	for _, pattern := range s.members[field] {
		if m, ok := s.Valid[pattern].(map[string]any); ok {
			if v, ok := m[field]; ok {
				return v, false, true
			}
		}
	}
	return nil, false, false
}

// demote moves a valid field to Invalid, keeping its cast value as payload,
// and mirrors the move in every pattern aggregate the field belongs to.
// Fields without a literal entry are demoted in the aggregates only.
func (s *Session) demote(field, required string, value any, literal bool) {
	s.log.Warn("dependency not satisfied",
		logger.Field(field),
		logger.Requires(required),
	)

	err := s.newError(field, "Missing required field: "+required)
	if literal {
		delete(s.Valid, field)
		s.Invalid[field] = value
		s.Errors[field] = err
	}
	for _, pattern := range s.members[field] {
		s.dropMember(pattern, field)
		subMap(s.Invalid, pattern)[field] = value
		subGroup(s.Errors, pattern)[field] = err
	}
}
