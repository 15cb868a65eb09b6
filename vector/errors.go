// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrIndexOutOfBounds is returned by the checked accessors for i<0 or i>=Size().
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrShapeMismatch is returned when a matrix is neither N×1 nor 1×N.
	ErrShapeMismatch = errors.New("vector: matrix shape does not match vector size")

	// ErrNilMatrix is returned when a nil matrix is passed as a source.
	ErrNilMatrix = errors.New("vector: nil matrix")
)
