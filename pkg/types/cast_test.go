package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldguard/pkg/types"
)

func TestCast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   string
		value any
		want  any
	}{
		{"int from text", "int", "25", 25},
		{"int keeps base 10", "int", "010", 10},
		{"int from number", "int", 666, 666},
		{"float from text", "float", "1.23", 1.23},
		{"float from int", "float", 7, 7.0},
		{"string from number", "string", 42, "42"},
		{"char", "char", "x", "x"},
		{"bool", "bool", "true", true},
		{"bool from zero", "bool", "0", false},
		{"numeric whole", "numeric", "42", 42},
		{"numeric fraction", "numeric", "4.5", 4.5},
		{"numeric padded", "numeric", " 7 ", 7},
		{"numeric whole fraction stays float", "numeric", "5.0", 5.0},
		{"numeric exponent", "numeric", "1e3", 1000.0},
		{"numeric float keeps kind", "numeric", 5.0, 5.0},
		{"numeric int keeps kind", "numeric", int64(9), 9},
		{"unknown tag falls back to text", "email", "a@b.co", "a@b.co"},
		{"nil stays nil", "int", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.Cast(tt.typ, tt.value))
		})
	}
}

func TestCast_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := map[string][]any{
		"int":     {"25", "0", 13},
		"float":   {"1.5", "2", 3.25},
		"numeric": {"10", "10.5", " 3 ", "5.0", "1e3", "007", "2.50"},
		"string":  {"abc", 12},
		"bool":    {"true", "false", "1"},
		"date":    {"2024-01-01"},
	}

	for typ, values := range inputs {
		for _, v := range values {
			once := types.Cast(typ, v)
			assert.Equal(t, once, types.Cast(typ, once), "type %s value %#v", typ, v)
		}
	}
}

func TestCastAll(t *testing.T) {
	t.Parallel()

	got := types.CastAll("int", []any{"1", "2", 3})
	assert.Equal(t, []any{1, 2, 3}, got)
}
