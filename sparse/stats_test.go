package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStats_Empty verifies the empty-matrix summary: zero density and
// zero-valued Min/Max.
func TestStats_Empty(t *testing.T) {
	m, err := sparse.New(4, 5)
	require.NoError(t, err)

	s := m.Stats()
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 5, s.Cols)
	assert.Equal(t, 0, s.NonZero)
	assert.Equal(t, int64(20), s.Total)
	assert.Equal(t, 0.0, s.Density)
	assert.Equal(t, int64(0), s.Min)
	assert.Equal(t, int64(0), s.Max)
}

// TestStats_Populated checks count, density and value range.
func TestStats_Populated(t *testing.T) {
	m, err := sparse.New(2, 5)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, -8))
	require.NoError(t, m.Set(0, 4, 3))
	require.NoError(t, m.Set(1, 2, 15))

	s := m.Stats()
	assert.Equal(t, 3, s.NonZero)
	assert.InDelta(t, 0.3, s.Density, 1e-12)
	assert.Equal(t, int64(-8), s.Min)
	assert.Equal(t, int64(15), s.Max)
	assert.InDelta(t, m.Density(), s.Density, 0)
}
