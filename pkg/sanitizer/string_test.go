package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii", input: "HELLO World", expected: "hello world"},
		{name: "unicode", input: "ÀÉÎ ÇA", expected: "àéî ça"},
		{name: "already lower", input: "abc", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ToLower(tt.input))
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes tags", input: "<b>bold</b> text", expected: "bold text"},
		{name: "removes script tags but keeps body", input: "<script>x</script>", expected: "x"},
		{name: "keeps entities", input: "a &amp; b", expected: "a &amp; b"},
		{name: "plain text", input: "plain", expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "15551234567", sanitizer.StripNonDigits("+1 (555) 123-4567"))
	assert.Equal(t, "", sanitizer.StripNonDigits("abc"))
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
	assert.Equal(t, "mixed case", clean("  Mixed CASE "))

	identity := sanitizer.Compose[string]()
	assert.Equal(t, "x", identity("x"))
}
