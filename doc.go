// Package sparsemat stores and manipulates integer matrices whose
// non-zero entries are rare relative to their dimensions.
//
// 🚀 What is sparsemat?
//
//	A small, focused library built around the Dictionary-of-Keys (DOK)
//	representation:
//		• Entry store: only non-zero values are kept, keyed by (row, col)
//		• Textual format: a strict, whitespace-tolerant (row, col, value) grammar
//		• Arithmetic: Add, Sub and Mul that never densify their operands
//		• Statistics: density and value-range summaries
//
// ✨ Why choose sparsemat?
//
//   - Predictable guarantees – no stored zeros, bounds checked everywhere
//   - Exact round-trips – canonical row-major serialization
//   - Sparse-first algorithms – multiplication cost scales with entries,
//     not with dimensions
//
// Everything is organized under two directories:
//
//	sparse/        — the DOK matrix, parser, serializer, ops & statistics
//	cmd/sparsemat/ — file-based CLI: add, sub, mul, stats and spy plots
//
// Quick ASCII example:
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(2, 1, -7)
//
//	represents a 3×3 matrix with two non-zero cells.
//
//	go get github.com/katalvlaran/sparsemat/sparse
package sparsemat
