// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the storage-order tag.
// This file contains ONLY domain-facing types shared by the containers, the
// Matrix facade and the sub-packages (linalg, opmode).
package matrix

import "strconv"

// Integer is the set of built-in integer kinds usable as matrix elements.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds. The LU family in linalg is
// restricted to Float so a zero pivot can never trigger an integer-division panic.
type Float interface {
	~float32 | ~float64
}

// Number is any element type a Matrix can hold.
// Elements are plain values without pointers, which the Mapped container relies on.
type Number interface {
	Integer | Float
}

// Order selects how (row, col) coordinates map onto the linear buffer.
// It is fixed for the lifetime of a Matrix.
type Order uint8

const (
	// RowMajor stores consecutive columns of a row side by side (offset = row*cols + col).
	RowMajor Order = iota
	// ColMajor stores consecutive rows of a column side by side (offset = col*rows + row).
	ColMajor
)

// String returns "RowMajor" or "ColMajor"; unknown values render as "Order(n)".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// valid reports whether o is one of the declared orders.
func (o Order) valid() bool { return o == RowMajor || o == ColMajor }

// isIntegral reports whether T truncates division (all Integer kinds).
// 1/2 is 0 for integers and 0.5 for floats.
func isIntegral[T Number]() bool {
	var one T = 1
	return one/(one+one) == 0
}
