// Package expr implements lazily evaluated vector addition with expression
// templates resolved at compile time through generics.
//
// 🚀 What is an expression template?
//
//	Instead of materializing a new vector for every '+', Add builds a tiny
//	value describing the sum. Nothing is computed until an element is read
//	(At) or the whole tree is materialized into a concrete Vector:
//
//	  a, b, c := expr.MustFromValues(1, 2), expr.MustFromValues(3, 4), expr.MustFromValues(5, 6)
//	  e := expr.Add(expr.Add(a, b), c)       // Sum[Sum[*Vector, *Vector], *Vector]; no loop ran
//	  v, err := expr.Materialize(e)          // one pass, one allocation: [9, 12]
//
// ✨ Capability, not inheritance:
//
//	Every node satisfies Expr (Len, At). Sum is generic over its operand
//	types, so the composed type is known to the compiler and no interface
//	boxing or dynamic dispatch happens inside a tree.
//
// ⚠️ Operands are borrowed:
//
//	Sum stores its operands as given. For *Vector leaves that is a pointer,
//	so the tree observes mutations made before it is read. Materialize (or
//	Assign) before storing a result that must not change.
//
// Length policy:
//
//	Sum.Len reports the RIGHT operand's length and never compares it with the
//	left one. Materialize and Assign validate the whole tree by default
//	(ShapeStrict); WithShapePolicy(ShapeFromRight) keeps the unchecked
//	behaviour and turns an out-of-range read into ErrOutOfRange.
//
// Complexity:
//
//	Add: O(1), no allocation.
//	Sum.At: O(k) for a tree with k additions; never cached.
//	Materialize: O(N·k) time, O(N) memory.
package expr
