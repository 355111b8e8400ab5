package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// ExampleParse demonstrates ingesting the textual grammar and reading
// individual cells, including an implicit zero.
func ExampleParse() {
	m, err := sparse.Parse("rows=3\ncols=3\n(0, 0, 5)\n(2, 1, -7)\n")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v00, _ := m.At(0, 0)
	v11, _ := m.At(1, 1)
	fmt.Println("m[0,0] =", v00)
	fmt.Println("m[1,1] =", v11)
	fmt.Println("stored =", m.Len())
	// Output:
	// m[0,0] = 5
	// m[1,1] = 0
	// stored = 2
}

// ExampleAdd shows element-wise addition with automatic removal of a
// cancelled cell.
func ExampleAdd() {
	a, _ := sparse.Parse("rows=2\ncols=2\n(0,0,1)\n(1,1,2)\n")
	b, _ := sparse.Parse("rows=2\ncols=2\n(0,0,-1)\n(1,0,4)\n")

	sum, err := sparse.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(sum.Serialize())
	// Output:
	// rows=2
	// cols=2
	// (1, 0, 4)
	// (1, 1, 2)
}

// ExampleMul multiplies a 2×3 matrix by a 3×2 matrix, touching only
// non-zero entry pairs.
func ExampleMul() {
	a, _ := sparse.Parse("rows=2\ncols=3\n(0,0,1)\n(0,2,2)\n(1,1,-3)\n")
	b, _ := sparse.Parse("rows=3\ncols=2\n(0,1,4)\n(1,0,1)\n(2,0,5)\n")

	prod, err := sparse.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(prod.Serialize())
	// Output:
	// rows=2
	// cols=2
	// (0, 0, 10)
	// (0, 1, 4)
	// (1, 0, -3)
}

// ExampleMatrix_Serialize round-trips a matrix through its canonical text.
func ExampleMatrix_Serialize() {
	m, _ := sparse.New(2, 2)
	_ = m.Set(1, 1, 2)
	_ = m.Set(0, 0, 1)

	text := m.Serialize()
	back, _ := sparse.Parse(text)
	fmt.Print(text)
	fmt.Println("round-trip equal:", m.Equal(back))
	// Output:
	// rows=2
	// cols=2
	// (0, 0, 1)
	// (1, 1, 2)
	// round-trip equal: true
}
