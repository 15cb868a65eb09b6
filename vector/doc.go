// Package vector provides Vector, a numeric tuple whose length is fixed by its
// type rather than stored at run time.
//
// The length is carried by the array type parameter: Vector[float32, [3]float32]
// (or the alias Vec3[float32]) always holds exactly three elements, lives on
// the stack or inline in its owner, and never allocates.
//
// What you get:
//
//   - Element access: At/Set (runtime bounds checked, panic on misuse) and
//     AtChecked/SetChecked (error on misuse).
//   - Element-wise Add/Sub, scalar Scale/Div, dot product Dot, and their
//     in-place forms AddAssign/SubAssign/ScaleAssign/DivAssign.
//   - Lexicographic ordering: Compare, Less, LessEqual, Greater, GreaterEqual.
//   - LengthSquared / Length.
//   - Zero-copy matrix views: AsMatrix (N×1) and AsTransposedMatrix (1×N)
//     share storage with the vector, so writes through either side are seen
//     by the other.
//
// Value semantics: assigning a Vector copies it. All operations without the
// Assign suffix (including Neg) leave their operands untouched.
//
// Numeric edge cases follow the element type: float division by zero yields
// ±Inf or NaN, integer division by zero panics, integer overflow wraps.
//
//	a := vector.Vec3[float64]{}
//	a.Set(0, 1)
//	b := vector.New[float64]([3]float64{0, 1, 0})
//	fmt.Println(a.Add(b), a.Dot(b)) // (1, 1, 0) 0
package vector
