// SPDX-License-Identifier: MIT
// Vector is the concrete leaf of an expression tree.

package expr

import (
	"strconv"
	"strings"
)

// Vector is a fixed-length float32 vector that satisfies Expr.
// Use *Vector as an operand: Sum then holds a reference, not a copy.
type Vector struct {
	data []float32 // owned storage, len == N, never resized
}

// NewVector returns a zero-initialized vector of length n.
// Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, exprErrorf("NewVector", ErrBadLength)
	}

	return &Vector{data: make([]float32, n)}, nil
}

// FromValues returns a vector of length n holding values in order.
// Strict by default (len(values) must equal n); see WithLenientInit.
// Complexity: O(n).
func FromValues(n int, values []float32, opts ...InitOption) (*Vector, error) {
	o := gatherInitOptions(opts...)
	if n <= 0 {
		return nil, exprErrorf("FromValues", ErrBadLength)
	}
	if o.strictInit && len(values) != n {
		return nil, exprErrorf("FromValues", ErrLengthMismatch)
	}

	v := &Vector{data: make([]float32, n)}
	copy(v.data, values)

	return v, nil
}

// MustFromValues builds a vector of length len(values); panics when empty.
func MustFromValues(values ...float32) *Vector {
	v, err := FromValues(len(values), values)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns N.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i. It is the leaf case of Expr.At.
// Precondition: 0 <= i < N; otherwise the runtime bounds check panics.
func (v *Vector) At(i int) float32 { return v.data[i] }

// SetAt writes element i. Precondition: 0 <= i < N.
func (v *Vector) SetAt(i int, x float32) { v.data[i] = x }

// Get returns element i or a wrapped ErrOutOfRange.
func (v *Vector) Get(i int) (float32, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf("Get", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns x to element i or returns a wrapped ErrOutOfRange.
func (v *Vector) Set(i int, x float32) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf("Set", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements in index order.
func (v *Vector) Values() []float32 {
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// String implements fmt.Stringer, e.g. "[5, 7, 9]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	sb.WriteByte(']')

	return sb.String()
}
