// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/katalvlaran/lvlgeom/matrix"
)

// New returns a vector holding a copy of coords.
func New[T Number, A Array[T]](coords A) Vector[T, A] {
	return Vector[T, A]{coords: coords}
}

// FromSlice copies the first Size() elements of s into a new vector.
// Passing fewer than Size() elements is a contract violation and panics.
// Complexity: O(N).
func FromSlice[A Array[T], T Number](s []T) Vector[T, A] {
	var v Vector[T, A]
	n := v.Size()
	_ = s[n-1] // single bounds check up front
	for i := 0; i < n; i++ {
		v.coords[i] = s[i]
	}

	return v
}

// FromMatrix copies the elements of an N×1 (or 1×N) matrix into a new vector.
// Any other shape returns ErrShapeMismatch.
// Complexity: O(N).
func FromMatrix[A Array[T], T Number](m matrix.Matrix[T]) (Vector[T, A], error) {
	var v Vector[T, A]
	if err := v.Assign(m); err != nil {
		return v, err
	}

	return v, nil
}

// Assign overwrites v with a copy of the elements of an N×1 (or 1×N) matrix.
// A *matrix.Dense is copied straight from its flat storage; any other Matrix
// is read through At. On error v is left unchanged.
// Complexity: O(N).
func (v *Vector[T, A]) Assign(m matrix.Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	d, isDense := m.(*matrix.Dense[T])
	if isDense && d == nil {
		return ErrNilMatrix
	}

	n := v.Size()
	rows, cols := m.Rows(), m.Cols()
	if !(rows == n && cols == 1) && !(rows == 1 && cols == n) {
		return fmt.Errorf("Vector.Assign(%d×%d) into size %d: %w", rows, cols, n, ErrShapeMismatch)
	}

	// Dense fast-path: N×1 and 1×N share the same flat layout.
	if isDense {
		data := d.Data()
		for i := 0; i < n; i++ {
			v.coords[i] = data[i]
		}
		return nil
	}

	// Generic fallback via At; read into a scratch copy so a failing At
	// leaves v untouched.
	tmp := v.coords
	for i := 0; i < n; i++ {
		r, c := i, 0
		if rows == 1 {
			r, c = 0, i
		}
		x, err := m.At(r, c)
		if err != nil {
			return fmt.Errorf("Vector.Assign: %w", err)
		}
		tmp[i] = x
	}
	v.coords = tmp

	return nil
}

// Size returns N. It depends on the type only, never on the content.
// Complexity: O(1).
func (v Vector[T, A]) Size() int {
	return len(v.coords)
}

// At returns the element at index i. An index outside [0, Size()) panics.
// Complexity: O(1).
func (v Vector[T, A]) At(i int) T {
	return v.coords[i]
}

// Set stores x at index i. An index outside [0, Size()) panics.
func (v *Vector[T, A]) Set(i int, x T) {
	v.coords[i] = x
}

// AtChecked is At with an explicit error instead of a panic.
func (v Vector[T, A]) AtChecked(i int) (T, error) {
	if i < 0 || i >= len(v.coords) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrIndexOutOfBounds)
	}

	return v.coords[i], nil
}

// SetChecked is Set with an explicit error instead of a panic.
func (v *Vector[T, A]) SetChecked(i int, x T) error {
	if i < 0 || i >= len(v.coords) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	v.coords[i] = x

	return nil
}

// Array returns a copy of the coordinates.
func (v Vector[T, A]) Array() A {
	return v.coords
}

// Slice returns the coordinates as a slice sharing v's storage.
// Complexity: O(1), no copy.
func (v *Vector[T, A]) Slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.coords)), len(v.coords))
}

// AsMatrix returns an N×1 matrix view over v's storage. No data is copied:
// writes through the matrix change v and writes to v are seen by the matrix.
// The view must not outlive v.
// Complexity: O(1), one small allocation for the matrix header.
func (v *Vector[T, A]) AsMatrix() *matrix.Dense[T] {
	return v.view(len(v.coords), 1)
}

// AsTransposedMatrix returns a 1×N matrix view over v's storage, with the same
// sharing rules as AsMatrix.
func (v *Vector[T, A]) AsTransposedMatrix() *matrix.Dense[T] {
	return v.view(1, len(v.coords))
}

func (v *Vector[T, A]) view(rows, cols int) *matrix.Dense[T] {
	m, err := matrix.View(rows, cols, v.Slice())
	if err != nil {
		// rows*cols == len(coords) > 0 by construction
		panic(err)
	}

	return m
}

// String formats v as "(x0, x1, ...)".
func (v Vector[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < len(v.coords); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v.coords[i])
	}
	sb.WriteByte(')')

	return sb.String()
}
