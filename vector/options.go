// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - The only policy today is how FromValues treats an initializer list whose
//     length differs from N. Strict (the default) rejects it with
//     ErrLengthMismatch; lenient truncates extra values and leaves missing
//     trailing elements at zero.
package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictInit rejects initializer lists whose length differs from N.
	DefaultStrictInit = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strictInit bool // DefaultStrictInit
}

// WithStrictInit makes FromValues reject len(values) != n with ErrLengthMismatch.
// This is the default.
// Complexity: O(1).
func WithStrictInit() Option {
	return func(o *Options) { o.strictInit = true }
}

// WithLenientInit makes FromValues copy min(n, len(values)) values:
// extra values are dropped, missing trailing elements stay zero.
// Complexity: O(1).
func WithLenientInit() Option {
	return func(o *Options) { o.strictInit = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{strictInit: DefaultStrictInit}
}

// gatherOptions resolves opts left-to-right over the defaults.
// nil options are skipped so callers can build option slices conditionally.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
