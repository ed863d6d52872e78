// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCapacity is returned by NewRegistry for a capacity <= 0.
	ErrBadCapacity = errors.New("dispatch: capacity must be > 0")

	// ErrRegistryFull is returned by Register once capacity slots are used.
	ErrRegistryFull = errors.New("dispatch: registry is full")

	// ErrNilDoer is returned when a nil Doer is registered or invoked.
	ErrNilDoer = errors.New("dispatch: nil doer")

	// ErrNilRegistry is returned by RunDynamic for a nil *Registry.
	ErrNilRegistry = errors.New("dispatch: nil registry")
)

// dispatchErrorf wraps an underlying error with the operation and variant.
func dispatchErrorf(op, name string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, name, err)
}
