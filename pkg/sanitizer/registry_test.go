package sanitizer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/sanitizer"
)

func TestRegistry_Apply(t *testing.T) {
	t.Parallel()

	r := sanitizer.Default()

	t.Run("applies named filter", func(t *testing.T) {
		got, err := r.Apply("trim", " 10 ")
		require.NoError(t, err)
		assert.Equal(t, "10", got)
	})

	t.Run("non-string scalars keep their type", func(t *testing.T) {
		for _, v := range []any{666, 12.0, true} {
			got, err := r.Apply("trim", v)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("nil passes through", func(t *testing.T) {
		got, err := r.Apply("lowercase", nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := r.Apply("rot13", "x")
		assert.True(t, errors.Is(err, sanitizer.ErrUnknownFilter))
	})

	t.Run("empty filter", func(t *testing.T) {
		_, err := r.Apply("", "x")
		assert.True(t, errors.Is(err, sanitizer.ErrEmptyFilter))
	})
}

func TestRegistry_Chain(t *testing.T) {
	t.Parallel()

	r := sanitizer.Default()

	f, err := r.Chain("strip-html", "trim", "lowercase")
	require.NoError(t, err)
	assert.Equal(t, "hello", f("  <p>HeLLo</p> "))

	_, err = r.Chain()
	assert.True(t, errors.Is(err, sanitizer.ErrEmptyFilter))

	_, err = r.Chain("trim", "nope")
	assert.True(t, errors.Is(err, sanitizer.ErrUnknownFilter))
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := sanitizer.Default()
	require.NoError(t, r.Register("uppercase", strings.ToUpper))
	assert.True(t, r.Has("uppercase"))
	assert.Equal(t, []string{"lowercase", "strip-html", "strip-non-digits", "trim", "uppercase"}, r.Names())

	got, err := r.Apply("uppercase", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	assert.True(t, errors.Is(r.Register("trim", strings.TrimSpace), sanitizer.ErrDuplicateFilter))
	assert.True(t, errors.Is(r.Register("", strings.TrimSpace), sanitizer.ErrEmptyFilter))
	assert.False(t, sanitizer.Default().Has("uppercase"))
}
