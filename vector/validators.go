// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for operand checks shared by Add, Sum and Equal.
//   - Return plain (tagged) sentinels so call sites can wrap uniformly.

package vector

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the vector reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(v *Dense) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameLen ensures a and b are non-nil and have equal length.
// Complexity: O(1).
func ValidateSameLen(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameLen", ErrLengthMismatch)
	}

	return nil
}
