// SPDX-License-Identifier: MIT
// Sum is the interior node of an expression tree and Add its constructor.

package expr

// Sum is the deferred element-wise sum of two expressions.
//
// Left and Right are stored exactly as passed to Add. With *Vector leaves
// they are non-owning references; nested Sum values are small and copied.
// A Sum must not be relied on after its leaves were mutated unless that
// mutation is intended to show through.
type Sum[L, R Expr] struct {
	Left  L
	Right R
}

// Add returns the unevaluated sum l + r. No element is read, nothing is
// allocated and lengths are not compared. Chains associate left to right:
//
//	Add(Add(a, b), c)  // (a + b) + c
//
// Complexity: O(1).
func Add[L, R Expr](l L, r R) Sum[L, R] {
	return Sum[L, R]{Left: l, Right: r}
}

// AddChecked is Add with an up-front length comparison of the two operands.
// Returns a wrapped ErrLengthMismatch when l.Len() != r.Len().
// Complexity: O(1) plus the cost of the operands' Len.
func AddChecked[L, R Expr](l L, r R) (Sum[L, R], error) {
	if ll, rl := l.Len(), r.Len(); ll != rl {
		return Sum[L, R]{}, exprErrorf("AddChecked", mismatchErrorf(ll, rl))
	}

	return Sum[L, R]{Left: l, Right: r}, nil
}

// Len returns the RIGHT operand's length. The left operand is neither
// consulted nor compared; use Validate or ShapeStrict to catch mismatches.
func (s Sum[L, R]) Len() int { return s.Right.Len() }

// At returns Left.At(i) + Right.At(i), recomputed on every call.
// Complexity: O(k) for k additions in the subtree.
func (s Sum[L, R]) At(i int) float32 { return s.Left.At(i) + s.Right.At(i) }

// checkShape validates the left subtree, then the right one, then this node.
func (s Sum[L, R]) checkShape() error {
	if sh, ok := any(s.Left).(shaper); ok {
		if err := sh.checkShape(); err != nil {
			return err
		}
	}
	if sh, ok := any(s.Right).(shaper); ok {
		if err := sh.checkShape(); err != nil {
			return err
		}
	}
	if ll, rl := s.Left.Len(), s.Right.Len(); ll != rl {
		return mismatchErrorf(ll, rl)
	}

	return nil
}

func (s Sum[L, R]) additions() int {
	return 1 + Additions(s.Left) + Additions(s.Right)
}
