// SPDX-License-Identifier: MIT
// Package: expr
//
// Materialization: the explicit evaluation points of an expression tree.
// Both entry points run a single deterministic i = 0..N-1 pass and read each
// index through the whole tree exactly once.

package expr

import (
	"fmt"
	"runtime"
	"strings"
)

// Materialize evaluates e into a newly allocated Vector of length e.Len().
// Stage 1 (Validate): e.Len() > 0; under ShapeStrict the whole tree.
// Stage 2 (Execute): out[i] = e.At(i) for i in order.
// Complexity: O(N·k) time for k additions, O(N) memory.
func Materialize[E Expr](e E, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	n := e.Len()
	if n <= 0 {
		return nil, exprErrorf("Materialize", ErrBadLength)
	}
	if err := checkPolicy(e, o); err != nil {
		return nil, exprErrorf("Materialize", err)
	}

	out := &Vector{data: make([]float32, n)}
	if err := evalInto(out.data, e); err != nil {
		return nil, exprErrorf("Materialize", err)
	}

	return out, nil
}

// Assign evaluates e into the existing vector dst, whose length N is fixed:
// e.Len() must equal N. dst may appear inside e (dst = dst + x) because every
// node reads only index i before index i is written.
// On error dst may be partially written only under ShapeFromRight.
// Complexity: O(N·k), no allocation.
func Assign[E Expr](dst *Vector, e E, opts ...Option) error {
	o := gatherOptions(opts...)
	if dst == nil {
		return exprErrorf("Assign", ErrNilVector)
	}
	if n := e.Len(); n != dst.Len() {
		return exprErrorf("Assign", mismatchErrorf(dst.Len(), n))
	}
	if err := checkPolicy(e, o); err != nil {
		return exprErrorf("Assign", err)
	}

	if err := evalInto(dst.data, e); err != nil {
		return exprErrorf("Assign", err)
	}

	return nil
}

// Eval materializes e under the default policy and returns its values.
// Panics on error; intended for tests, examples and demos.
func Eval[E Expr](e E) []float32 {
	v, err := Materialize(e)
	if err != nil {
		panic(err)
	}

	return v.data
}

// checkPolicy runs the tree validation required by o.shape.
func checkPolicy[E Expr](e E, o Options) error {
	if o.shape != ShapeStrict {
		return nil
	}
	if s, ok := any(e).(shaper); ok {
		return s.checkShape()
	}

	return nil
}

// evalInto fills dst[i] = e.At(i). An index panic raised by a shorter
// operand is converted to ErrOutOfRange; any other panic propagates.
func evalInto[E Expr](dst []float32, e E) (err error) {
	var i int
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "index out of range") {
			err = fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
			return
		}
		panic(r)
	}()

	for i = range dst {
		dst[i] = e.At(i)
	}

	return nil
}
