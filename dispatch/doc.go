// Package dispatch contrasts two ways of invoking an operation on one of
// several variants without the caller naming the variant.
//
//   - Dynamic: variants are stored as Doer interface values in a
//     fixed-capacity Registry and invoked through the interface at run time.
//     Suits open sets that grow at run time.
//   - Static: Invoke and RunStatic2 are generic over the Doer constraint, so
//     the concrete variant is fixed at compile time and no interface value is
//     built. Suits closed sets known at build time.
//
// Both paths write the same lines in the same order:
//
//	first: doing something
//	second: doing something
package dispatch
