// Package vexpr compares two ways of adding fixed-length float32 vectors.
//
// 🚀 What is inside?
//
//	vector/   — eager Dense vector: every Add materializes a new vector now
//	expr/     — lazy expression templates: Add builds a Sum[L, R] value,
//	            evaluation happens on At or Materialize/Assign
//	dispatch/ — run-time (interface) vs compile-time (generic) dispatch
//	cmd/vexpr — console trace of the fixed scenarios
//
// Quick comparison:
//
//	eager:  v, _ := vector.Sum(a, b, c)                    // 2 intermediate vectors
//	lazy:   v, _ := expr.Materialize(expr.Add(expr.Add(a, b), c)) // 1 result vector
//
//	go get github.com/katalvlaran/vexpr
package vexpr
