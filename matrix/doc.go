// Package matrix offers generic dense matrices over pluggable storage.
//
// The matrix package provides:
//
//   - Matrix[T], a facade over one storage Container that maps (row, col)
//     onto a flat buffer in RowMajor or ColMajor order, chosen once at
//     construction.
//   - Containers: Dynamic (resizable), Fixed (shape set once) and Mapped
//     (a fixed container living in a memory-mapped file).
//   - Element access with bounds checking, Fill, SwapRows/SwapCols.
//   - Arithmetic (Add, Sub, Mul, Scale, Div and in-place forms) and exact or
//     tolerance-based equality.
//   - Structural edits on Dynamic storage: insert/remove/append/prepend/pop a
//     row or column, Reshape, TransposeInPlace and Resize.
//
// Element types satisfy Number (all integer and floating-point kinds).
// Failures are reported as wrapped sentinel errors (ErrOutOfRange,
// ErrDimensionMismatch, ...) to be matched with errors.Is; nothing panics on
// user input except WithOrder given an unknown order.
//
// Linear-algebra kernels (LU with partial pivoting, Solve, Determinant,
// Inverse, Multiply) live in the linalg sub-package; the backend dispatcher for
// elementwise operations lives in opmode.
//
// Logging goes through log/slog and is silent until SetLogger is called.
package matrix
