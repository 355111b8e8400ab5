package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// DuplicatePolicy selects how Parse resolves a repeated (row, col)
// coordinate in the input. The grammar itself leaves this open, so the
// choice is explicit and test-pinned rather than implied.
type DuplicatePolicy int

const (
	// LastWins keeps the value of the final occurrence, mirroring
	// repeated Set calls on the same cell. This is the default.
	LastWins DuplicatePolicy = iota

	// Reject fails the whole parse with ErrDuplicateEntry on the first
	// repeated coordinate, including coordinates whose value was zero.
	Reject
)

// ParseOptions configures grammar-level behavior that the format leaves
// unspecified.
type ParseOptions struct {
	// Duplicates resolves repeated (row, col) coordinates.
	Duplicates DuplicatePolicy
}

// DefaultParseOptions returns the default configuration: LastWins.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Duplicates: LastWins}
}

// parseErrorf wraps a sentinel with the 1-based input line number.
func parseErrorf(line int, err error) error {
	return fmt.Errorf("sparse: line %d: %w", line, err)
}

// stripSpace removes every whitespace rune from s. The grammar treats all
// whitespace outside numeric tokens as insignificant.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// Parse converts grammar-conformant text into a Matrix using the default
// options. See ParseWith for the grammar and failure modes.
func Parse(text string) (*Matrix, error) {
	return ParseWith(strings.NewReader(text), DefaultParseOptions())
}

// ParseReader is Parse over an io.Reader, using the default options.
func ParseReader(r io.Reader) (*Matrix, error) {
	return ParseWith(r, DefaultParseOptions())
}

// ParseWith reads the textual matrix grammar from r and builds a Matrix.
//
// Grammar (after whitespace removal, blank lines skipped):
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(<int>,<int>,<int>)   — zero or more, any order
//
// Failure modes, all matched via errors.Is and all-or-nothing (no partial
// matrix is ever returned):
//
//   - ErrMissingDimension  — rows=/cols= absent or out of position
//   - ErrInvalidDimension  — a dimension is not a positive integer
//   - ErrMalformedEntry    — a data line is not a parenthesized triple
//   - ErrNonIntegerValue   — a triple token fails integer parsing
//   - ErrIndexOutOfBounds  — a triple addresses a cell outside the
//     declared dimensions
//   - ErrDuplicateEntry    — repeated coordinate under Reject
//
// A triple with value 0 is legal input and simply stores nothing,
// enforcing invariant I1 at ingestion.
// Complexity: O(L) over input lines.
func ParseWith(r io.Reader, opts ParseOptions) (*Matrix, error) {
	var (
		m       *Matrix
		seen    map[coord]bool
		scanner = bufio.NewScanner(r)
		lineNo  int
		sigNo   int // significant (non-blank) line counter
	)
	if opts.Duplicates == Reject {
		seen = make(map[coord]bool)
	}

	for scanner.Scan() {
		lineNo++
		line := stripSpace(scanner.Text())
		if line == "" {
			continue
		}
		sigNo++

		switch sigNo {
		case 1, 2:
			// The first two significant lines declare dimensions, in
			// fixed order: rows= then cols=.
			want := "rows="
			if sigNo == 2 {
				want = "cols="
			}
			if !strings.HasPrefix(line, want) {
				return nil, parseErrorf(lineNo, ErrMissingDimension)
			}
			n, err := strconv.Atoi(strings.TrimPrefix(line, want))
			if err != nil || n <= 0 {
				return nil, parseErrorf(lineNo, ErrInvalidDimension)
			}
			if sigNo == 1 {
				m = &Matrix{rows: n, entries: make(map[coord]int64)}
			} else {
				m.cols = n
			}
		default:
			row, col, val, err := parseTriple(line)
			if err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			if !m.inBounds(row, col) {
				return nil, parseErrorf(lineNo, ErrIndexOutOfBounds)
			}
			if seen != nil {
				if seen[coord{row, col}] {
					return nil, parseErrorf(lineNo, ErrDuplicateEntry)
				}
				seen[coord{row, col}] = true
			}
			// Set enforces I1: a zero value removes rather than stores.
			if err = m.Set(row, col, val); err != nil {
				return nil, parseErrorf(lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sparse: read input: %w", err)
	}
	if sigNo < 2 {
		return nil, ErrMissingDimension
	}

	return m, nil
}

// parseTriple decodes one whitespace-stripped "(row,col,value)" line.
// Shape violations yield ErrMalformedEntry; token violations yield
// ErrNonIntegerValue.
func parseTriple(line string) (row, col int, val int64, err error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, 0, 0, ErrMalformedEntry
	}
	parts := strings.Split(line[1:len(line)-1], ",")
	if len(parts) != 3 {
		return 0, 0, 0, ErrMalformedEntry
	}
	if row, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, ErrNonIntegerValue
	}
	if col, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, ErrNonIntegerValue
	}
	if val, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return 0, 0, 0, ErrNonIntegerValue
	}

	return row, col, val, nil
}
