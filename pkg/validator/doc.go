// Package validator implements a declarative field-validation engine.
//
// Given a bag of untrusted input values and an ordered Schema describing, per
// field, a type, constraints, filters, a default and cross-field dependencies,
// a Session partitions the fields into valid, invalid and missing. Valid
// fields carry typed, cast values; invalid and missing fields carry an error.
//
// # Resolution order
//
// For every schema entry the session runs, per matched field:
//
//  1. Disabled rules produce no result at all.
//  2. Named filters rewrite the raw input in place.
//  3. Presence: an explicit Value override wins over the input, "" counts as
//     absent, and absent optional fields fall back to Default.
//  4. Validity: the type predicate, then constraints in the fixed order
//     match, length, regex, range, for every element of a multiple field.
//  5. Outcome: the cast value goes to Valid, the raw value to Invalid, and
//     missing required fields get nil in Invalid.
//
// After every entry is processed, fields whose Requires prerequisites did not
// end up valid are demoted to Invalid.
//
// # Pattern keys
//
// A key wrapped in a delimiter pair (/…/, #…# or %…%) is a pattern. It is
// applied to every input field whose name matches, and the per-field results
// are additionally aggregated under the pattern key itself.
//
// # Errors
//
// Schema-authoring faults (unknown type or filter, malformed range, unknown
// rule option, …) are returned immediately from ValidateAll and nothing is
// accumulated. Field failures are accumulated in Errors as *failure.Failure
// values that must be acknowledged; Audit reports any that were not. With
// WithPlainMessages errors are inert failure.Message strings instead.
//
// # Usage
//
//	s := validator.NewSession(validator.Input{"age": "25"})
//	err := s.ValidateAll(validator.Schema{
//	    validator.Field("age", validator.Rule{Type: "int", Range: "18-65"}),
//	})
//	if err != nil {
//	    // broken schema
//	}
//	if s.HasErrors() {
//	    verrs := validator.ExtractValidationErrors(s.Err())
//	    _ = verrs
//	}
//	age := s.Valid["age"].(int)
//
// A Session is not safe for concurrent use. Validate independent copies of
// the input in independent sessions instead.
package validator
