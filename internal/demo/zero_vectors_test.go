package demo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroVectors_ChecksEveryConstructorCall(t *testing.T) {
	t.Parallel()

	errCtor := errors.New("ctor failed")
	for failAt := 0; failAt < 3; failAt++ {
		calls := 0
		newFn := func(n int) (int, error) {
			defer func() { calls++ }()
			if calls == failAt {
				return 0, errCtor
			}
			return n, nil
		}

		vs, err := zeroVectors(3, newFn)
		require.ErrorIs(t, err, errCtor, "failAt=%d", failAt)
		assert.Nil(t, vs)
		assert.Equal(t, failAt+1, calls, "stops at the first failure")
	}
}

func TestZeroVectors_AllBuilt(t *testing.T) {
	t.Parallel()

	vs, err := zeroVectors(3, func(n int) (int, error) { return n, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{Size, Size, Size}, vs)
}
