// SPDX-License-Identifier: MIT
// Package matrix: small linear-algebra kernels over *Dense.
//
// Notes:
//   - Kernels never mutate their inputs and always allocate a fresh result.
//   - Errors are the package sentinels wrapped with the operation name.
//   - Decompositions (LU, QR, eigen) are intentionally absent: callers of this
//     module only need products and transposes of small fixed shapes.

package matrix

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEqual     = "Equal"
)

// Mul returns the matrix product a·b.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Loop order i→k→j keeps both operands row-major.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// For N×1 and 1×N matrices the flat data is identical, only the shape changes.
// Complexity: O(r*c).
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and element-wise equal values.
// NaN elements never compare equal.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
func Equal[T Number](a, b *Dense[T]) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opEqual, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false, nil
		}
	}

	return true, nil
}
