// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.
// Checked entry points (Get/Set, AddChecked, Validate, Materialize, Assign)
// return these sentinels, optionally wrapped with call-site context.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a vector or expression length is not positive.
	ErrBadLength = errors.New("expr: length must be > 0")

	// ErrOutOfRange indicates an index outside [0, N).
	ErrOutOfRange = errors.New("expr: index out of range")

	// ErrLengthMismatch indicates operands (or a destination) of different lengths.
	ErrLengthMismatch = errors.New("expr: length mismatch")

	// ErrNilVector indicates that a nil *Vector destination was supplied.
	ErrNilVector = errors.New("expr: nil vector")
)

// exprErrorf wraps an underlying error with the public operation name.
func exprErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps an underlying error with Vector accessor context.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// mismatchErrorf reports the two lengths that disagreed.
func mismatchErrorf(left, right int) error {
	return fmt.Errorf("left=%d right=%d: %w", left, right, ErrLengthMismatch)
}
