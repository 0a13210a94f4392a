package schema

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

// Parse decodes a schema document in the given format.
// Entries keep document order. A null rule is the default rule.
func Parse(data []byte, f Format) (validator.Schema, error) {
	entries, err := decode(data, f)
	if err != nil {
		return nil, err
	}
	if err := checkShape(entries); err != nil {
		return nil, err
	}

	out := make(validator.Schema, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.key]; dup {
			return nil, &validator.SchemaError{Key: e.key, Err: validator.ErrDuplicateKey}
		}
		seen[e.key] = struct{}{}

		opts, _ := e.value.(map[string]any)
		if opts == nil {
			opts = map[string]any{}
		}
		rule, err := validator.RuleFromMap(opts)
		if err != nil {
			return nil, &validator.SchemaError{Key: e.key, Err: err}
		}
		out = append(out, validator.Field(e.key, rule))
	}
	return out, nil
}

// LoadFile reads and parses a schema file, picking the format from its extension.
func LoadFile(path string) (validator.Schema, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data, f)
}
