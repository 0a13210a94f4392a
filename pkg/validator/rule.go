package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// DefaultType is used when a rule does not declare one.
const DefaultType = "string"

// Rule describes how to filter, validate and cast one field.
// The set of options is closed; RuleFromMap rejects anything else.
type Rule struct {
	// Type names a predicate in the type registry. Empty means DefaultType.
	Type string `rule:"type"`
	// Required defaults to true when nil.
	Required *bool `rule:"required"`

	// Constraints, evaluated in the order Match, Length, Regex, Range.
	Match  []any  `rule:"match"`
	Length string `rule:"length"`
	Regex  string `rule:"regex"`
	Range  string `rule:"range"`

	// Multiple accepts a list of values; every element must pass.
	Multiple bool `rule:"multiple"`
	// Filter names are applied in order to the raw input before validation.
	Filter []string `rule:"filter"`
	// Value overrides the input value.
	Value any `rule:"value"`
	// Default replaces an absent value of an optional field.
	Default any `rule:"default"`

	Msg     string `rule:"msg"`
	MsgMiss string `rule:"msg_miss"`

	// Requires lists fields that must also end up valid.
	Requires []string `rule:"requires"`
	Disabled bool     `rule:"disabled"`
	// RemoveOriginal drops per-field entries of a pattern rule, keeping only the aggregate.
	RemoveOriginal bool `rule:"remove_original"`
}

// Bool returns a pointer to b, for Rule.Required.
func Bool(b bool) *bool {
	return &b
}

// IsRequired reports the effective required flag.
func (r Rule) IsRequired() bool {
	return r.Required == nil || *r.Required
}

// TypeName returns the effective type name.
func (r Rule) TypeName() string {
	if r.Type == "" {
		return DefaultType
	}
	return r.Type
}

func (r Rule) invalidMessage(field string) string {
	if r.Msg != "" {
		return r.Msg
	}
	return "Invalid field " + field
}

func (r Rule) missingMessage(field string) string {
	if r.MsgMiss != "" {
		return r.MsgMiss
	}
	return r.invalidMessage(field)
}

// RuleFromMap decodes a generic rule document, for example one parsed from
// YAML. Scalars are accepted where lists are expected and numbers where
// strings are expected. Unrecognized keys yield ErrUnknownOption.
func RuleFromMap(m map[string]any) (Rule, error) {
	var (
		rule Rule
		md   mapstructure.Metadata
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "rule",
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &rule,
	})
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	if err := dec.Decode(m); err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(md.Unused, ", "))
	}
	return rule, nil
}
