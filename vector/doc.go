// Package vector provides an eagerly evaluated, fixed-length float32 vector.
//
// What & Why:
//
//	Dense owns N float32 elements and has value semantics: Clone duplicates
//	all N elements and Add materializes a brand-new vector immediately.
//	Chaining therefore pays one allocation per '+':
//
//	  a + b + c  ==  Add(Add(a, b), c)   // two vectors of length N allocated
//
//	This is the baseline the expr package improves on by deferring
//	evaluation until the result is read.
//
// Length:
//
//	N is fixed at construction (New, FromValues) and never changes.
//	N must be > 0.
//
// Accessors:
//
//	At / SetAt   — unchecked, O(1); an index outside [0, N) panics.
//	Get / Set    — checked, O(1); return ErrOutOfRange instead of panicking.
//
// Complexity:
//
//	Add and Sum run in O(N) per operand pair; Clone and Values in O(N).
//
//	go get github.com/katalvlaran/vexpr/vector
package vector
