package types

import (
	"fmt"
	"maps"
	"slices"
)

// Predicate reports whether a scalar value belongs to a type.
type Predicate func(value any) bool

// Registry maps type names to predicates.
// It is safe for concurrent reads once construction is finished.
type Registry struct {
	predicates map[string]Predicate
}

// New creates a registry with the built-in types plus extra.
// Extra entries must not shadow built-in names.
func New(extra map[string]Predicate) (*Registry, error) {
	r := Default()
	for name, p := range extra {
		if err := r.Register(name, p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a fresh registry with the built-in types.
func Default() *Registry {
	return &Registry{predicates: map[string]Predicate{
		"int":       Int,
		"float":     Float,
		"numeric":   Numeric,
		"string":    String,
		"char":      Char,
		"charnum":   CharNum,
		"email":     Email,
		"json":      JSON,
		"date":      Date,
		"datetime":  DateTime,
		"time":      Time,
		"unix_time": UnixTime,
		"int_list":  IntList,
		"any":       Any,
		"bool":      Bool,
		"uuid":      UUID,
	}}
}

// Register adds a named predicate. Nil predicates and duplicate names are rejected.
func (r *Registry) Register(name string, p Predicate) error {
	if name == "" || p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	if _, ok := r.predicates[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, name)
	}
	r.predicates[name] = p
	return nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.predicates[name]
	return ok
}

// Check runs the named predicate against value.
func (r *Registry) Check(name string, value any) (bool, error) {
	p, ok := r.predicates[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return p(value), nil
}

// Lookup returns the predicate for name.
func (r *Registry) Lookup(name string) (Predicate, error) {
	p, ok := r.predicates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return p, nil
}

// Names returns registered type names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.predicates))
}
