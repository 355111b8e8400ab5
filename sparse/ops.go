package sparse

import "fmt"

// Operation tags used in wrapped error context.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// opErrorf wraps a sentinel with the failing operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("sparse: %s: %w", op, err)
}

// validateOperands rejects nil operands before any shape comparison.
func validateOperands(a, b *Matrix, op string) error {
	if a == nil || b == nil {
		return opErrorf(op, ErrNilMatrix)
	}

	return nil
}

// addSub computes a + sign*b over stored entries only.
// Both operands stay untouched; the result is freshly allocated and
// keeps invariant I1 (cancellations remove the key via bump).
// Complexity: O(nA + nB) over stored entry counts.
func addSub(a, b *Matrix, sign int64, op string) (*Matrix, error) {
	if err := validateOperands(a, b, op); err != nil {
		return nil, err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}

	res := a.Clone()
	for k, v := range b.entries {
		res.bump(k.r, k.c, sign*v)
	}

	return res, nil
}

// Add returns the element-wise sum of a and b as a new Matrix.
// Fails with ErrDimensionMismatch unless shapes are identical.
// Keys whose sum is zero are omitted from the result.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a - b as a new Matrix.
// Same shape contract as Add; zero-valued results are omitted.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b as a new (a.Rows × b.Cols) Matrix.
// Fails with ErrDimensionMismatch unless a.Cols() == b.Rows().
//
// The kernel exploits sparsity instead of iterating every (i, k, j)
// triple: a's entries are grouped by column index k and b's entries by
// row index k; only contraction indices present on both sides produce
// work, each contributing the cross-product of its two entry lists into
// an accumulator keyed by (i, j). Accumulator cells that total zero are
// dropped, preserving invariant I1.
// Complexity: O(nA + nB + P) where P is the number of entry pairs
// sharing a contraction index.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validateOperands(a, b, opMul); err != nil {
		return nil, err
	}
	if a.cols != b.rows {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	// Group a by column and b by row: byCol[k] holds (i, a[i,k]),
	// byRow[k] holds (j, b[k,j]).
	type cell struct {
		idx int
		val int64
	}
	byCol := make(map[int][]cell)
	for k, v := range a.entries {
		byCol[k.c] = append(byCol[k.c], cell{idx: k.r, val: v})
	}
	byRow := make(map[int][]cell)
	for k, v := range b.entries {
		byRow[k.r] = append(byRow[k.r], cell{idx: k.c, val: v})
	}

	res := &Matrix{rows: a.rows, cols: b.cols, entries: make(map[coord]int64)}
	for k, lhs := range byCol {
		rhs, ok := byRow[k]
		if !ok {
			continue
		}
		for _, l := range lhs {
			for _, r := range rhs {
				res.bump(l.idx, r.idx, l.val*r.val)
			}
		}
	}

	return res, nil
}
