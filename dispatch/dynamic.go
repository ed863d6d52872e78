// SPDX-License-Identifier: MIT
// Run-time dispatch over an owned, fixed-capacity set of variants.

package dispatch

import "io"

// Registry owns up to capacity Doer values and keeps registration order.
// Not safe for concurrent mutation.
type Registry struct {
	doers []Doer // len <= cap(doers) == capacity
}

// NewRegistry allocates an empty registry with a fixed capacity.
// Complexity: O(capacity).
func NewRegistry(capacity int) (*Registry, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Registry{doers: make([]Doer, 0, capacity)}, nil
}

// NewDefaultRegistry returns a registry holding First then Second,
// each allocated on the heap and reached only through the Doer interface.
func NewDefaultRegistry() *Registry {
	r := &Registry{doers: make([]Doer, 0, 2)}
	r.doers = append(r.doers, &First{}, &Second{})

	return r
}

// Register appends d. Fails with ErrNilDoer (nil interface or a nil
// *First / *Second) or ErrRegistryFull.
// Complexity: O(1).
func (r *Registry) Register(d Doer) error {
	if isNilDoer(d) {
		return ErrNilDoer
	}
	if len(r.doers) == cap(r.doers) {
		return dispatchErrorf("Register", d.Name(), ErrRegistryFull)
	}
	r.doers = append(r.doers, d)

	return nil
}

// Len returns the number of registered variants.
func (r *Registry) Len() int { return len(r.doers) }

// Cap returns the fixed capacity.
func (r *Registry) Cap() int { return cap(r.doers) }

// RunDynamic invokes every registered variant in registration order through
// the Doer interface, stopping at the first write error.
// Complexity: O(len).
func RunDynamic(w io.Writer, r *Registry) error {
	if r == nil {
		return ErrNilRegistry
	}
	for _, d := range r.doers {
		if err := d.DoSomething(w); err != nil {
			return dispatchErrorf("RunDynamic", d.Name(), err)
		}
	}

	return nil
}
