// Package linalg provides stateless dense linear-algebra kernels for matrix.Matrix.
//
// Kernels:
//
//   - Transpose, UpperTriangular, LowerTriangular.
//   - LUP: Doolittle LU decomposition with partial pivoting, written into a
//     caller-owned LU buffer, plus a Pivot vector (row permutation and swap count).
//   - SplitLU, MakePivotMatrix.
//   - Solve / SolveSystem, Determinant / DeterminantLU, Inverse / InverseFromLU.
//   - Multiply, MultiplyAs (independent output element type), Identity.
//
// The LU family is restricted to matrix.Float element types. Singular or
// near-singular inputs are not detected: they produce ±Inf or NaN entries.
//
// Every kernel works only through the public matrix API and never retains its
// arguments. Errors are the matrix sentinels (matrix.ErrDomain,
// matrix.ErrInvalidArgument, ...) wrapped with the kernel name.
package linalg
