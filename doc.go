// Package mafs is a small dense linear-algebra toolkit built on Go generics.
//
// What is inside:
//
//	matrix/         Matrix[T] over Dynamic, Fixed or memory-mapped storage,
//	                row-major or column-major, with bounds-checked access,
//	                row/column swaps, arithmetic and structural edits
//	matrix/linalg/  Transpose, triangular extraction, LU with partial
//	                pivoting (Doolittle), Solve, Determinant, Inverse,
//	                Multiply and Identity
//	matrix/opmode/  build-time selection of the elementwise backend
//	                (basic; accelerated is a stub)
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	det, _ := linalg.Determinant(a) // -6
//
// Everything is single-threaded and synchronous; matrices need external
// synchronization when shared between goroutines.
//
//	go get github.com/katalvlaran/mafs
package mafs
