// Package sparse implements integer matrices in Dictionary-of-Keys (DOK)
// form. Only non-zero values are stored, keyed by their (row, col)
// coordinates; an absent key reads as zero.
//
// The package maintains two invariants at every mutation point:
//
//   - I1: no stored entry holds the value 0 — assigning zero deletes
//     the key, so entry enumeration never yields a zero.
//   - I2: every stored key lies strictly inside [0, rows) × [0, cols);
//     dimensions are fixed at construction and never change.
//
// Text format:
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(row, col, value)
//	(row, col, value)
//
// All whitespace outside numeric tokens is insignificant, blank lines are
// skipped, and entry lines may appear in any order. Serialize always
// emits entries in row-major order, so Parse(m.Serialize()) reproduces m
// exactly.
//
// Arithmetic (Add, Sub, Mul) never mutates its operands and never
// densifies: Mul pairs non-zero entries through their shared contraction
// index, so its cost is bounded by the number of matching entry pairs
// rather than by rows×cols×cols.
//
// Numeric policy: values are int64 with two's-complement wraparound on
// overflow. Callers needing arbitrary precision should scale inputs or
// track magnitudes externally.
package sparse
