// SPDX-License-Identifier: MIT

package vector

import "math"

// Add returns v + o element-wise.
// Complexity: O(N).
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] += o.coords[i]
	}

	return v
}

// Sub returns v - o element-wise.
// Complexity: O(N).
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] -= o.coords[i]
	}

	return v
}

// Dot returns the scalar product Σ v[i]*o[i].
// Complexity: O(N).
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var sum T
	for i := 0; i < len(v.coords); i++ {
		sum += v.coords[i] * o.coords[i]
	}

	return sum
}

// Scale returns v * s element-wise.
// Complexity: O(N).
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] *= s
	}

	return v
}

// Div returns v / s element-wise.
// Complexity: O(N).
func (v Vector[T, A]) Div(s T) Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] /= s
	}

	return v
}

// Neg returns -v. The receiver is not modified.
// For unsigned element types negation wraps modulo 2ⁿ.
// Complexity: O(N).
func (v Vector[T, A]) Neg() Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] = -v.coords[i]
	}

	return v
}

// AddAssign adds o to v in place and returns v.
// Complexity: O(N), no allocation.
func (v *Vector[T, A]) AddAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] += o.coords[i]
	}

	return v
}

// SubAssign subtracts o from v in place and returns v.
// Complexity: O(N), no allocation.
func (v *Vector[T, A]) SubAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] -= o.coords[i]
	}

	return v
}

// ScaleAssign multiplies every element of v by s in place and returns v.
// Complexity: O(N), no allocation.
func (v *Vector[T, A]) ScaleAssign(s T) *Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] *= s
	}

	return v
}

// DivAssign divides every element of v by s in place and returns v.
// Complexity: O(N), no allocation.
func (v *Vector[T, A]) DivAssign(s T) *Vector[T, A] {
	for i := 0; i < len(v.coords); i++ {
		v.coords[i] /= s
	}

	return v
}

// LengthSquared returns Σ v[i]². Use it instead of Length when only
// relative magnitudes matter.
// Complexity: O(N).
func (v Vector[T, A]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm of v. The square root is taken in
// float64 and converted back to T, so integer element types truncate toward
// zero: the int vector (3, 3) has length 4.
// Complexity: O(N) plus one square root.
func (v Vector[T, A]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}
