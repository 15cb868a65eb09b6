// SPDX-License-Identifier: MIT

package vector

// Equal reports whether every element pair of v and o is equal.
// NaN never equals anything, and +0 equals -0.
// Complexity: O(N), stops at the first differing element.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	for i := 0; i < len(v.coords); i++ {
		if v.coords[i] != o.coords[i] {
			return false
		}
	}

	return true
}

// NotEqual is !v.Equal(o).
func (v Vector[T, A]) NotEqual(o Vector[T, A]) bool {
	return !v.Equal(o)
}

// Compare orders v and o lexicographically: the first index where one element
// is < or > the other decides, returning -1 or +1. It returns 0 when no index
// decides, which for non-NaN elements means v.Equal(o).
// Complexity: O(N), stops at the first deciding index.
func (v Vector[T, A]) Compare(o Vector[T, A]) int {
	for i := 0; i < len(v.coords); i++ {
		switch {
		case v.coords[i] < o.coords[i]:
			return -1
		case v.coords[i] > o.coords[i]:
			return +1
		}
	}

	return 0
}

// Less reports whether v orders strictly before o.
func (v Vector[T, A]) Less(o Vector[T, A]) bool {
	return v.Compare(o) < 0
}

// LessEqual reports whether v orders before o or no index decides.
func (v Vector[T, A]) LessEqual(o Vector[T, A]) bool {
	return v.Compare(o) <= 0
}

// Greater reports whether v orders strictly after o.
func (v Vector[T, A]) Greater(o Vector[T, A]) bool {
	return v.Compare(o) > 0
}

// GreaterEqual reports whether v orders after o or no index decides.
func (v Vector[T, A]) GreaterEqual(o Vector[T, A]) bool {
	return v.Compare(o) >= 0
}
