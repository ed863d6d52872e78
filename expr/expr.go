// SPDX-License-Identifier: MIT
// Package expr: the expression capability and tree inspection helpers.

package expr

// Expr is any vector-like value that can be read element by element.
//
// Contract:
//   - Len and At are pure: any number of calls, no side effects, same result
//     as long as the underlying leaves are not mutated.
//   - At is defined for 0 <= i < Len(); outside that range it may panic.
//
// Expr is meant to be used as a type-parameter constraint (see Add,
// Materialize) so compositions are resolved by the compiler.
type Expr interface {
	// Len returns the number of elements the expression yields.
	Len() int

	// At returns element i. Sum nodes recompute it on every call.
	At(i int) float32
}

// shaper is implemented by interior nodes that can check their own operands.
type shaper interface {
	checkShape() error
}

// counter is implemented by interior nodes that know how many additions
// a single At call performs beneath them.
type counter interface {
	additions() int
}

// Validate walks e and returns a wrapped ErrLengthMismatch for the first
// Sum node (depth-first, left before right) whose operands disagree on Len.
// Leaves are always valid.
// Complexity: O(number of nodes).
func Validate[E Expr](e E) error {
	if s, ok := any(e).(shaper); ok {
		if err := s.checkShape(); err != nil {
			return exprErrorf("Validate", err)
		}
	}

	return nil
}

// Additions returns how many float additions one At call on e performs,
// i.e. the number of Sum nodes in the tree. Leaves report 0.
// Complexity: O(number of nodes).
func Additions[E Expr](e E) int {
	if c, ok := any(e).(counter); ok {
		return c.additions()
	}

	return 0
}
