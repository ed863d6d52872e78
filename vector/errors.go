// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All public checked APIs return these sentinels (optionally wrapped with
// call-site context); tests match them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a requested length N is not positive.
	ErrBadLength = errors.New("vector: length must be > 0")

	// ErrOutOfRange indicates an index outside [0, N).
	// Checked accessors (Get/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch indicates operands (or an initializer list) whose
	// length differs from the required N.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrNilVector indicates that a nil *Dense was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps an underlying error with the public operation name.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps an underlying error with Dense accessor context.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, i, err)
}
