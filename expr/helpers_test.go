// SPDX-License-Identifier: MIT
// Test fixtures: small-integer vectors so every sum is exact in float32.

package expr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vexpr/expr"
	"github.com/katalvlaran/vexpr/vector"
)

// randomInts returns n integers in [-1000, 1000] as float32.
func randomInts(rng *rand.Rand, n int) []float32 {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(rng.Intn(2001) - 1000)
	}

	return vals
}

// randomLeaf builds an expr.Vector of length n or fails the test.
func randomLeaf(t *testing.T, rng *rand.Rand, n int) *expr.Vector {
	t.Helper()

	v, err := expr.FromValues(n, randomInts(rng, n))
	require.NoError(t, err)

	return v
}

// eagerTwin copies an expr.Vector into an equivalent vector.Dense.
func eagerTwin(t *testing.T, v *expr.Vector) *vector.Dense {
	t.Helper()

	d, err := vector.FromValues(v.Len(), v.Values())
	require.NoError(t, err)

	return d
}
