// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"io"
)

// Doer is the shared capability of every variant.
type Doer interface {
	// Name identifies the variant in its output line.
	Name() string

	// DoSomething writes exactly one line identifying the variant.
	DoSomething(w io.Writer) error
}

// First is the first demonstration variant.
type First struct{}

// Name returns "first".
func (First) Name() string { return "first" }

// DoSomething writes "first: doing something".
func (f First) DoSomething(w io.Writer) error { return writeLine(w, f.Name()) }

// Second is the second demonstration variant.
type Second struct{}

// Name returns "second".
func (Second) Name() string { return "second" }

// DoSomething writes "second: doing something".
func (s Second) DoSomething(w io.Writer) error { return writeLine(w, s.Name()) }

// isNilDoer reports a nil interface or a nil pointer to a known variant.
// Value methods called through such a pointer would panic.
func isNilDoer(d Doer) bool {
	switch v := d.(type) {
	case nil:
		return true
	case *First:
		return v == nil
	case *Second:
		return v == nil
	default:
		return false
	}
}

func writeLine(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s: doing something\n", name)
	return err
}
