// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// ExampleFromRows builds a literal in column-major storage; the logical view is unchanged.
func ExampleFromRows() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}}, matrix.WithColMajor())
	fmt.Print(m)
	fmt.Println(m.Data())
	// Output:
	// Matrix<int>[2][3] // ColMajor, Dynamic
	// 1 2 3
	// 4 5 6
	// [1 4 2 5 3 6]
}

// ExampleMatrix_InsertRow shows zero padding of short rows.
func ExampleMatrix_InsertRow() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	_ = m.InsertRow(1, []float64{9})
	_ = m.AppendCol([]float64{7, 7, 7})
	fmt.Print(m)
	// Output:
	// Matrix<float64>[3][3] // RowMajor, Dynamic
	// 1 2 7
	// 9 0 7
	// 3 4 7
}

// ExampleMatrix_Reshape keeps the row-major walk of the elements.
func ExampleMatrix_Reshape() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	_ = m.Reshape(3, 2)
	fmt.Print(m)
	// Output:
	// Matrix<int>[3][2] // RowMajor, Dynamic
	// 1 2
	// 3 4
	// 5 6
}

// ExampleMatrix_Mul multiplies a 2×3 by a 3×1.
func ExampleMatrix_Mul() {
	a, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.FromRows([][]int{{1}, {0}, {-1}})
	p, _ := a.Mul(b)
	fmt.Print(p)
	// Output:
	// Matrix<int>[2][1] // RowMajor, Dynamic
	// -2
	// -2
}

// ExampleMatrix_Div rejects integer division by zero.
func ExampleMatrix_Div() {
	m, _ := matrix.FromRows([][]int{{4, 8}}, matrix.WithFixed())
	_, err := m.Div(0)
	fmt.Println(err)
	h, _ := m.Div(4)
	fmt.Print(h)
	// Output:
	// Matrix.Div: ValidateDivisor: matrix: integer division by zero
	// Matrix<int>[1][2] // RowMajor, Static
	// 1 2
}
