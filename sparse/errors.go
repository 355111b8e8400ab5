package sparse

import "errors"

// Sentinel errors for sparse matrix construction, parsing and arithmetic.
// All functions in this package return these sentinels (possibly wrapped
// with positional context via fmt.Errorf and %w); callers match them with
// errors.Is. No user-triggered condition panics.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are not positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a (row, col) pair outside [0,rows)×[0,cols).
	// Returned by At/Set on direct misuse and by Parse on out-of-range triples.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with differing dimensions, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrMissingDimension indicates the rows=/cols= declarations are absent
	// or not the first two significant lines of the input.
	ErrMissingDimension = errors.New("sparse: missing rows=/cols= declaration")

	// ErrInvalidDimension indicates a declared dimension is not a positive integer.
	ErrInvalidDimension = errors.New("sparse: dimension is not a positive integer")

	// ErrMalformedEntry indicates a data line that is not a parenthesized
	// comma-separated triple after whitespace removal.
	ErrMalformedEntry = errors.New("sparse: entry line does not match (row, col, value)")

	// ErrNonIntegerValue indicates a row, col or value token that does not
	// parse as an integer.
	ErrNonIntegerValue = errors.New("sparse: non-integer token in entry")

	// ErrDuplicateEntry indicates a repeated (row, col) coordinate during
	// parsing under the Reject duplicate policy.
	ErrDuplicateEntry = errors.New("sparse: duplicate (row, col) entry")
)
