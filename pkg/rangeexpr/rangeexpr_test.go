package rangeexpr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/rangeexpr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		exact   bool
	}{
		{name: "closed range", input: "2-10"},
		{name: "lower bound", input: "10-"},
		{name: "upper bound", input: "-9"},
		{name: "exact", input: "11", exact: true},
		{name: "decimals", input: "1-1.23"},
		{name: "order violation", input: "10-5", wantErr: rangeexpr.ErrInvalidOrder},
		{name: "empty", input: "", wantErr: rangeexpr.ErrInvalidFormat},
		{name: "separator only", input: "-", wantErr: rangeexpr.ErrInvalidFormat},
		{name: "garbage", input: "abc", wantErr: rangeexpr.ErrInvalidFormat},
		{name: "negative numbers unsupported", input: "-5-10", wantErr: rangeexpr.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := rangeexpr.Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exact, spec.Exact)
			assert.Equal(t, tt.input, spec.String())
		})
	}
}

func TestSpec_Test(t *testing.T) {
	t.Parallel()

	t.Run("lower bound", func(t *testing.T) {
		spec := rangeexpr.MustParse("10-")
		assert.True(t, spec.Test(10, rangeexpr.Int))
		assert.True(t, spec.Test(1000, rangeexpr.Int))
		assert.False(t, spec.Test(9, rangeexpr.Int))
	})

	t.Run("upper bound", func(t *testing.T) {
		spec := rangeexpr.MustParse("-9")
		assert.True(t, spec.Test(0, rangeexpr.Int))
		assert.True(t, spec.Test(9, rangeexpr.Int))
		assert.False(t, spec.Test(10, rangeexpr.Int))
	})

	t.Run("exact int", func(t *testing.T) {
		spec := rangeexpr.MustParse("11")
		assert.True(t, spec.Test(11, rangeexpr.Int))
		assert.False(t, spec.Test(10, rangeexpr.Int))
		assert.False(t, spec.Test(12, rangeexpr.Int))
	})

	t.Run("exact float", func(t *testing.T) {
		spec := rangeexpr.MustParse("1.5")
		assert.True(t, spec.Test(1.5, rangeexpr.Float))
		assert.False(t, spec.Test(1.0, rangeexpr.Float))
		assert.True(t, spec.Test(1.0, rangeexpr.Int))
	})

	t.Run("closed range is inclusive", func(t *testing.T) {
		spec := rangeexpr.MustParse("18-65")
		assert.True(t, spec.Test(18, rangeexpr.Int))
		assert.True(t, spec.Test(65, rangeexpr.Int))
		assert.False(t, spec.Test(15, rangeexpr.Int))
		assert.False(t, spec.Test(65.5, rangeexpr.Float))
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	k, ok := rangeexpr.KindOf("int")
	assert.True(t, ok)
	assert.Equal(t, rangeexpr.Int, k)

	k, ok = rangeexpr.KindOf("float")
	assert.True(t, ok)
	assert.Equal(t, rangeexpr.Float, k)

	_, ok = rangeexpr.KindOf("string")
	assert.False(t, ok)

	assert.Panics(t, func() { rangeexpr.MustParse("9-1") })
}
