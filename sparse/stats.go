package sparse

// Stats summarizes a matrix: shape, fill and value range.
// Min and Max are only meaningful when NonZero > 0; both are 0 for an
// empty matrix.
type Stats struct {
	Rows    int     // row dimension
	Cols    int     // column dimension
	NonZero int     // stored entry count
	Total   int64   // rows*cols cell count
	Density float64 // NonZero / Total, in [0, 1]
	Min     int64   // smallest stored value
	Max     int64   // largest stored value
}

// Density returns the proportion of cells holding a non-zero value.
// Complexity: O(1).
func (m *Matrix) Density() float64 {
	return float64(len(m.entries)) / (float64(m.rows) * float64(m.cols))
}

// Stats returns a full statistical summary of the matrix.
// Complexity: O(n) for n stored entries.
func (m *Matrix) Stats() Stats {
	s := Stats{
		Rows:    m.rows,
		Cols:    m.cols,
		NonZero: len(m.entries),
		Total:   int64(m.rows) * int64(m.cols),
		Density: m.Density(),
	}
	first := true
	for _, v := range m.entries {
		if first {
			s.Min, s.Max = v, v
			first = false

			continue
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	return s
}
