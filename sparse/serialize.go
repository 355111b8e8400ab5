package sparse

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Serialize renders the matrix in the textual grammar: the two dimension
// declarations followed by one "(row, col, value)" line per stored entry
// in canonical row-major order (ascending row, then ascending col).
// Invariant I1 guarantees no zero-valued line is ever emitted, and the
// fixed ordering makes output deterministic: Parse(m.Serialize())
// reconstructs m exactly.
// Complexity: O(n log n) for n stored entries.
func (m *Matrix) Serialize() string {
	entries := m.NonZero()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Row != entries[j].Row {
			return entries[i].Row < entries[j].Row
		}

		return entries[i].Col < entries[j].Col
	})

	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\n", m.rows)
	fmt.Fprintf(&b, "cols=%d\n", m.cols)
	for _, e := range entries {
		fmt.Fprintf(&b, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}

	return b.String()
}

// WriteTo writes the canonical serialization to w, implementing
// io.WriterTo for streaming callers (files, network, pipes).
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Serialize())

	return int64(n), err
}

// String implements fmt.Stringer using the canonical serialization,
// which doubles as a readable debug form.
func (m *Matrix) String() string {
	return m.Serialize()
}
