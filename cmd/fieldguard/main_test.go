package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/config"
)

const rulesYAML = `
age:
  type: int
  range: 18-65
nick:
  required: false
  default: anon
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, result, string) {
	t.Helper()
	t.Setenv("FIELDGUARD_SCHEMA", "")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)

	var res result
	if stdout.Len() > 0 {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	}
	return code, res, stderr.String()
}

func TestRun_Valid(t *testing.T) {
	rules := writeFile(t, "rules.yaml", rulesYAML)

	code, res, _ := runCLI(t, `{"age": "30"}`, "-schema", rules)

	assert.Equal(t, exitValid, code)
	assert.Equal(t, map[string]any{"age": float64(30), "nick": "anon"}, res.Valid)
	assert.Empty(t, res.Invalid)
	assert.Empty(t, res.Errors)
}

func TestRun_Invalid(t *testing.T) {
	rules := writeFile(t, "rules.yaml", rulesYAML)
	input := writeFile(t, "input.json", `{"age": 15}`)

	code, res, stderr := runCLI(t, "", "-schema", rules, "-input", input)

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, map[string]any{"age": float64(15)}, res.Invalid)
	assert.Equal(t, map[string]string{"age": "Invalid field age"}, res.Errors)
	assert.NotContains(t, stderr, "left unhandled")
}

func TestRun_PlainMessages(t *testing.T) {
	rules := writeFile(t, "rules.yaml", rulesYAML)

	code, res, _ := runCLI(t, `{}`, "-schema", rules, "-plain")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, map[string]string{"age": "Invalid field age"}, res.Errors)
}

func TestRun_Errors(t *testing.T) {
	rules := writeFile(t, "rules.yaml", rulesYAML)
	broken := writeFile(t, "broken.yaml", "age: {type: nope}\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"missing schema flag", "{}", nil},
		{"unknown flag", "{}", []string{"-nope"}},
		{"unreadable schema", "{}", []string{"-schema", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"schema fault", "{}", []string{"-schema", broken}},
		{"malformed input", "{", []string{"-schema", rules}},
		{"missing input file", "", []string{"-schema", rules, "-input", filepath.Join(t.TempDir(), "none.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.stdin, tt.args...)
			assert.Equal(t, exitError, code)
		})
	}
}
