package sparse_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// randomMatrix fills an n×n matrix with k non-zero entries drawn from a
// deterministic source.
func randomMatrix(b *testing.B, n, k int, seed int64) *sparse.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := sparse.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < k; i++ {
		v := int64(rng.Intn(1999) - 999)
		if v == 0 {
			v = 1
		}
		if err = m.Set(rng.Intn(n), rng.Intn(n), v); err != nil {
			b.Fatalf("setup Set failed: %v", err)
		}
	}

	return m
}

// BenchmarkSet measures single-cell insert/overwrite/delete throughput.
func BenchmarkSet(b *testing.B) {
	const n = 1000
	m, err := sparse.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Set(i%n, (i*7)%n, int64(i%5)) // i%5==0 exercises deletion
	}
}

// BenchmarkMul measures the sparse product of two 1000×1000 matrices
// holding ~5000 entries each; cost tracks matching entry pairs, not n³.
func BenchmarkMul(b *testing.B) {
	const n, k = 1000, 5000
	x := randomMatrix(b, n, k, 42)
	y := randomMatrix(b, n, k, 43)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkParse measures grammar ingestion of a ~5000-entry document.
func BenchmarkParse(b *testing.B) {
	const n, k = 1000, 5000
	text := randomMatrix(b, n, k, 44).Serialize()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Parse(text); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkSerialize measures canonical text emission.
func BenchmarkSerialize(b *testing.B) {
	const n, k = 1000, 5000
	m := randomMatrix(b, n, k, 45)

	b.ResetTimer()
	var s string
	for i := 0; i < b.N; i++ {
		s = m.Serialize()
	}
	if !strings.HasPrefix(s, "rows=") {
		b.Fatal("unexpected serialization")
	}
}
