// SPDX-License-Identifier: MIT

// Package expr: functional configuration for leaf construction and
// materialization.
//
// Notes:
//   - Two option types keep the entry points apart: InitOption configures
//     FromValues, Option configures Materialize/Assign. Passing one where the
//     other is expected does not compile.
//   - Init policy mirrors package vector: strict by default, lenient on request.
//   - Shape policy decides what Materialize/Assign do with trees whose operands
//     disagree on length. Sum.Len itself is never affected: it always reports
//     the right operand.
package expr

import "fmt"

// ShapePolicy selects how materialization treats operand lengths.
type ShapePolicy int

const (
	// ShapeStrict validates every Sum node (left.Len() == right.Len()) before
	// evaluating anything and fails with ErrLengthMismatch otherwise.
	ShapeStrict ShapePolicy = iota

	// ShapeFromRight trusts Len() of the root, which follows the rightmost
	// operand. A shorter left operand surfaces as ErrOutOfRange during the
	// pass; a longer one is silently truncated.
	ShapeFromRight
)

// String implements fmt.Stringer.
func (p ShapePolicy) String() string {
	switch p {
	case ShapeStrict:
		return "strict"
	case ShapeFromRight:
		return "from-right"
	default:
		return fmt.Sprintf("ShapePolicy(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShapePolicy validates trees before materialization.
	DefaultShapePolicy = ShapeStrict

	// DefaultStrictInit rejects initializer lists whose length differs from N.
	DefaultStrictInit = true
)

const panicShapePolicyInvalid = "expr: WithShapePolicy: unknown policy"

// Option configures materialization (Materialize, Assign).
// Safe to apply repeatedly (idempotent). Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective materialization configuration.
type Options struct {
	shape ShapePolicy // DefaultShapePolicy
}

// InitOption configures leaf construction (FromValues).
type InitOption func(*InitOptions)

// InitOptions stores the effective construction configuration.
type InitOptions struct {
	strictInit bool // DefaultStrictInit
}

// WithShapePolicy selects the materialization shape policy.
// Panics if p is not ShapeStrict or ShapeFromRight.
func WithShapePolicy(p ShapePolicy) Option {
	if p != ShapeStrict && p != ShapeFromRight {
		panic(panicShapePolicyInvalid)
	}

	return func(o *Options) { o.shape = p }
}

// WithStrictInit makes FromValues reject len(values) != n. Default.
func WithStrictInit() InitOption {
	return func(o *InitOptions) { o.strictInit = true }
}

// WithLenientInit makes FromValues drop extra values and zero-fill missing ones.
func WithLenientInit() InitOption {
	return func(o *InitOptions) { o.strictInit = false }
}

// gatherOptions resolves opts left-to-right over the defaults, skipping nils.
func gatherOptions(opts ...Option) Options {
	o := Options{shape: DefaultShapePolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// gatherInitOptions is gatherOptions for InitOption.
func gatherInitOptions(opts ...InitOption) InitOptions {
	o := InitOptions{strictInit: DefaultStrictInit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
