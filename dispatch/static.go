// SPDX-License-Identifier: MIT
// Compile-time dispatch: the variant is a type argument, not an interface value.

package dispatch

import "io"

// Invoke calls v.DoSomething with T fixed at the call site.
// A nil *First or *Second yields ErrNilDoer.
func Invoke[T Doer](w io.Writer, v T) error {
	if isNilDoer(v) {
		return ErrNilDoer
	}
	if err := v.DoSomething(w); err != nil {
		return dispatchErrorf("Invoke", v.Name(), err)
	}

	return nil
}

// RunStatic2 invokes a then b, stopping at the first write error.
// The closed two-variant set is spelled out in the signature.
func RunStatic2[A, B Doer](w io.Writer, a A, b B) error {
	if err := Invoke(w, a); err != nil {
		return err
	}

	return Invoke(w, b)
}
