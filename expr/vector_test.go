// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vexpr/expr"
)

func TestNewVector_ZeroFilled(t *testing.T) {
	t.Parallel()

	v, err := expr.NewVector(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []float32{0, 0, 0}, v.Values())

	_, err = expr.NewVector(0)
	require.ErrorIs(t, err, expr.ErrBadLength)
}

func TestFromValues_InitPolicy(t *testing.T) {
	t.Parallel()

	_, err := expr.FromValues(3, []float32{1, 2})
	require.ErrorIs(t, err, expr.ErrLengthMismatch)

	v, err := expr.FromValues(3, []float32{1, 2}, expr.WithLenientInit())
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 0}, v.Values())

	v, err = expr.FromValues(2, []float32{1, 2, 3}, expr.WithLenientInit())
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, v.Values())

	_, err = expr.FromValues(-2, nil, expr.WithLenientInit())
	require.ErrorIs(t, err, expr.ErrBadLength)
}

func TestVector_Accessors(t *testing.T) {
	t.Parallel()

	v := expr.MustFromValues(1, 2, 3)
	v.SetAt(0, 10)
	require.NoError(t, v.Set(1, 20))

	got, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, float32(20), got)
	assert.Equal(t, float32(10), v.At(0))

	_, err = v.Get(3)
	require.ErrorIs(t, err, expr.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), expr.ErrOutOfRange)
	assert.Panics(t, func() { _ = v.At(5) })

	assert.Equal(t, "[10, 20, 3]", v.String())
}

func TestMustFromValues_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { expr.MustFromValues() })
}

// Each entry point has its own option type; mixing them does not compile.
var (
	_ expr.InitOption = expr.WithLenientInit()
	_ expr.InitOption = expr.WithStrictInit()
	_ expr.Option     = expr.WithShapePolicy(expr.ShapeFromRight)
)

func TestInitOptions_LastWinsAndNilSkipped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    []expr.InitOption
		wantErr error
	}{
		{name: "default strict", wantErr: expr.ErrLengthMismatch},
		{name: "lenient", opts: []expr.InitOption{expr.WithLenientInit()}},
		{name: "strict after lenient", opts: []expr.InitOption{expr.WithLenientInit(), expr.WithStrictInit()}, wantErr: expr.ErrLengthMismatch},
		{name: "nil skipped", opts: []expr.InitOption{nil, expr.WithLenientInit(), nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := expr.FromValues(3, []float32{1}, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []float32{1, 0, 0}, v.Values())
		})
	}
}
