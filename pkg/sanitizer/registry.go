package sanitizer

import (
	"fmt"
	"maps"
	"slices"
)

// Filter is a pure string transform.
type Filter func(string) string

// Registry maps filter names to transforms.
// It is safe for concurrent reads once construction is finished.
type Registry struct {
	filters map[string]Filter
}

// Default returns a fresh registry with the built-in filters.
func Default() *Registry {
	return &Registry{filters: map[string]Filter{
		"trim":             Trim,
		"strip-html":       StripHTML,
		"lowercase":        ToLower,
		"strip-non-digits": StripNonDigits,
	}}
}

// Register adds a named filter. Empty names, nil filters and duplicates are rejected.
func (r *Registry) Register(name string, f Filter) error {
	if name == "" || f == nil {
		return fmt.Errorf("%w: %q", ErrEmptyFilter, name)
	}
	if _, ok := r.filters[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFilter, name)
	}
	r.filters[name] = f
	return nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.filters[name]
	return ok
}

// Names returns registered filter names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.filters))
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Filter, error) {
	if name == "" {
		return nil, ErrEmptyFilter
	}
	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f, nil
}

// Chain resolves names in order and composes them into a single filter.
func (r *Registry) Chain(names ...string) (Filter, error) {
	if len(names) == 0 {
		return nil, ErrEmptyFilter
	}
	chain := make([]func(string) string, 0, len(names))
	for _, name := range names {
		f, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	return Compose(chain...), nil
}

// Apply runs the named filter on a scalar value.
// Only strings are filtered; nil and other scalars pass through unchanged.
func (r *Registry) Apply(name string, value any) (any, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Run(f, value), nil
}

// Run applies f to a scalar value using the same conversion rules as Apply.
func Run(f Filter, value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return f(s)
}
