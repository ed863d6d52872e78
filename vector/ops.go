// SPDX-License-Identifier: MIT
// Package: vector
//
// Eager element-wise kernels. Every call allocates its result up front and
// runs one fixed i=0..N-1 loop; nothing is deferred.

package vector

// Add returns a new vector c with c[i] = a[i] + b[i] for every i in [0, N).
// Stage 1 (Validate): both non-nil, equal length.
// Stage 2 (Execute): allocate one vector of length N and fill it.
// Complexity: O(N) time, exactly one allocation of N elements.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf("Add", err)
	}

	out := make([]float32, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}

	return &Dense{data: out}, nil
}

// Sum folds vs left-to-right with Add: Sum(a, b, c) == Add(Add(a, b), c).
// Every intermediate is materialized, so k >= 2 operands allocate exactly
// k-1 vectors. A single operand is returned as a clone; no operands is
// ErrNilVector.
// Complexity: O(k*N).
func Sum(vs ...*Dense) (*Dense, error) {
	if len(vs) == 0 {
		return nil, vectorErrorf("Sum", ErrNilVector)
	}
	if len(vs) == 1 {
		if err := ValidateNotNil(vs[0]); err != nil {
			return nil, vectorErrorf("Sum", err)
		}
		return vs[0].Clone(), nil
	}

	// The first Add produces the accumulator; no up-front clone.
	acc, err := Add(vs[0], vs[1])
	if err != nil {
		return nil, vectorErrorf("Sum", err)
	}
	for _, v := range vs[2:] {
		if acc, err = Add(acc, v); err != nil {
			return nil, vectorErrorf("Sum", err)
		}
	}

	return acc, nil
}

// Equal reports whether a and b have the same length and a[i] == b[i] at
// every index (IEEE-754 comparison, so NaN never equals NaN).
// Complexity: O(N).
func Equal(a, b *Dense) bool {
	if ValidateSameLen(a, b) != nil {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
