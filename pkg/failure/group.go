package failure

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Group holds the errors of several fields keyed by field name.
type Group map[string]error

// Error joins member messages in field order. Members that are Failures are
// marked handled as a side effect.
func (g Group) Error() string {
	if len(g) == 0 {
		return "no errors"
	}
	parts := make([]string, 0, len(g))
	for _, field := range g.Fields() {
		parts = append(parts, g[field].Error())
	}
	return strings.Join(parts, "; ")
}

// Fields returns member field names in sorted order.
func (g Group) Fields() []string {
	fields := make([]string, 0, len(g))
	for field := range g {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Handle marks every member Failure handled.
func (g Group) Handle() {
	for _, err := range g {
		if f, ok := err.(*Failure); ok {
			f.Handle()
		}
	}
}

// Audit reports every unhandled Failure among errs, descending into groups.
// It never marks anything handled. The returned error wraps ErrUnhandled once
// per unhandled Failure; nil means every failure was acknowledged.
func Audit(errs ...error) error {
	seen := make(map[*Failure]struct{})
	var found []*Failure

	var walk func(err error)
	walk = func(err error) {
		switch e := err.(type) {
		case *Failure:
			if _, ok := seen[e]; ok {
				return
			}
			seen[e] = struct{}{}
			if !e.IsHandled() {
				found = append(found, e)
			}
		case Group:
			for _, field := range e.Fields() {
				walk(e[field])
			}
		}
	}
	for _, err := range errs {
		walk(err)
	}

	if len(found) == 0 {
		return nil
	}

	out := make([]error, 0, len(found))
	for _, f := range found {
		out = append(out, fmt.Errorf("%w: field %q created at %s", ErrUnhandled, f.field, f.origin))
	}
	return errors.Join(out...)
}

// MustAudit panics with the Audit error if any failure is unhandled.
func MustAudit(errs ...error) {
	if err := Audit(errs...); err != nil {
		panic(err)
	}
}
