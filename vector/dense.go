// SPDX-License-Identifier: MIT
// Dense is the eager, fixed-length float32 vector.
// Storage is a single owned slice whose length never changes after construction.

package vector

import (
	"strconv"
	"strings"
)

// Dense is a fixed-length vector of float32 values with value semantics.
// The zero value is not usable; construct with New or FromValues.
type Dense struct {
	data []float32 // owned backing storage, len == N
}

// New returns a zero-initialized vector of length n.
// Stage 1 (Validate): n > 0.
// Stage 2 (Prepare): allocate backing slice (zeroed by the runtime).
// Complexity: O(n) time and memory.
func New(n int) (*Dense, error) {
	if n <= 0 {
		return nil, vectorErrorf("New", ErrBadLength)
	}

	return &Dense{data: make([]float32, n)}, nil
}

// FromValues returns a vector of length n holding values in order.
// Under the default strict policy len(values) must equal n; with
// WithLenientInit extra values are dropped and missing ones stay zero.
// The input slice is copied, never retained.
// Complexity: O(n).
func FromValues(n int, values []float32, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if n <= 0 {
		return nil, vectorErrorf("FromValues", ErrBadLength)
	}
	if o.strictInit && len(values) != n {
		return nil, vectorErrorf("FromValues", ErrLengthMismatch)
	}

	v := &Dense{data: make([]float32, n)}
	copy(v.data, values) // copies min(n, len(values))

	return v, nil
}

// MustFromValues builds a vector of length len(values) and panics when values
// is empty. Intended for literals in examples and tests.
func MustFromValues(values ...float32) *Dense {
	v, err := FromValues(len(values), values)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns N.
// Complexity: O(1).
func (v *Dense) Len() int { return len(v.data) }

// At returns element i without a checked error path.
// Precondition: 0 <= i < N; otherwise the runtime bounds check panics.
func (v *Dense) At(i int) float32 { return v.data[i] }

// SetAt writes element i without a checked error path.
// Precondition: 0 <= i < N; otherwise the runtime bounds check panics.
func (v *Dense) SetAt(i int, x float32) { v.data[i] = x }

// Get returns element i or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (v *Dense) Get(i int) (float32, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf("Get", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns x to element i or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (v *Dense) Set(i int, x float32) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf("Set", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent copy of all N elements.
// Complexity: O(N).
func (v *Dense) Clone() *Dense {
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return &Dense{data: out}
}

// Values returns a copy of the elements in index order.
// Complexity: O(N).
func (v *Dense) Values() []float32 {
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// String implements fmt.Stringer, e.g. "[1, 2, 3]".
func (v *Dense) String() string {
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
