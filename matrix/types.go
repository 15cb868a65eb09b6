// SPDX-License-Identifier: MIT

// Package matrix: numeric constraints and the Matrix interface shared with
// the vector package. Errors live in errors.go, storage in dense.go.
package matrix

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Signed is a constraint for signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Number is the element constraint for matrices and vectors.
// Every type in the set is totally ordered by < and > except for NaN.
type Number interface {
	Integer | Float
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v T) error
}

// compile-time interface checks
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int32]   = (*Dense[int32])(nil)
)
