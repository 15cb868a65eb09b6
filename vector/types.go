// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvlgeom/matrix"

// Number is the element constraint, shared with the matrix package.
type Number = matrix.Number

// Array enumerates the supported storage shapes [N]T, 1 ≤ N ≤ 8.
// Every member has the same element type, which is what allows indexing a
// value of the type parameter.
type Array[T Number] interface {
	[1]T | [2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T
}

// Vector is an ordered tuple of exactly len(A) elements of type T.
// The zero value is the zero vector.
type Vector[T Number, A Array[T]] struct {
	coords A
}

// Common shapes.
type (
	Vec1[T Number] = Vector[T, [1]T]
	Vec2[T Number] = Vector[T, [2]T]
	Vec3[T Number] = Vector[T, [3]T]
	Vec4[T Number] = Vector[T, [4]T]
)
