// Package sparse: core DOK container and its element-level contract.
package sparse

import "fmt"

// coord is the composite map key for one stored cell.
type coord struct {
	r int // row index
	c int // column index
}

// Entry is a single non-zero cell as exposed to callers.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Matrix is an integer matrix in Dictionary-of-Keys form.
// rows and cols are fixed at construction; entries holds only non-zero
// values (invariant I1) with keys strictly in bounds (invariant I2).
// Matrices do not share state: arithmetic and Clone always return
// independent instances. Concurrent use of distinct matrices is safe;
// concurrent mutation of one Matrix must be serialized by the caller.
type Matrix struct {
	rows, cols int
	entries    map[coord]int64
}

// matrixErrorf wraps a sentinel with method and coordinate context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an empty rows×cols matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, entries: make(map[coord]int64)}, nil
}

// Rows returns the fixed row count.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the fixed column count.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns both dimensions in one call.
// Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Matrix) Len() int { return len(m.entries) }

// inBounds reports whether (row, col) lies inside the matrix.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the value at (row, col), zero when no entry is stored.
// Returns ErrIndexOutOfBounds on invalid coordinates.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, matrixErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.entries[coord{row, col}], nil
}

// Set assigns v at (row, col). A zero v deletes the stored entry if any,
// preserving invariant I1; a non-zero v inserts or overwrites.
// Returns ErrIndexOutOfBounds on invalid coordinates.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inBounds(row, col) {
		return matrixErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	if v == 0 {
		delete(m.entries, coord{row, col})

		return nil
	}
	m.entries[coord{row, col}] = v

	return nil
}

// bump adds delta to the entry at (row, col), deleting the key when the
// total reaches zero. Coordinates must already be validated; arithmetic
// kernels use this to keep I1 without re-checking bounds per entry.
func (m *Matrix) bump(row, col int, delta int64) {
	k := coord{row, col}
	total := m.entries[k] + delta
	if total == 0 {
		delete(m.entries, k)

		return
	}
	m.entries[k] = total
}

// NonZero returns all stored entries in unspecified order.
// Callers needing a canonical order should sort (see Serialize).
// Complexity: O(n) for n stored entries.
func (m *Matrix) NonZero() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.r, Col: k.c, Value: v})
	}

	return out
}

// Clone returns a deep, independent copy of the matrix.
// Complexity: O(n) for n stored entries.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{rows: m.rows, cols: m.cols, entries: make(map[coord]int64, len(m.entries))}
	for k, v := range m.entries {
		cp.entries[k] = v
	}

	return cp
}

// Equal reports whether m and other have identical dimensions and
// identical non-zero entries. A nil other is never equal.
// Complexity: O(n).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		if other.entries[k] != v {
			return false
		}
	}

	return true
}
