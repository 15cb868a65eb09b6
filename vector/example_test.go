package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/vector"
)

func ExampleVector_Add() {
	a := vector.New[float64]([3]float64{1, 0, 0})
	b := vector.New[float64]([3]float64{0, 1, 0})

	fmt.Println(a.Add(b), a.Dot(b), a.Sub(b).LengthSquared())
	// Output:
	// (1, 1, 0) 0 2
}

func ExampleVector_AsMatrix() {
	v := vector.New[int]([2]int{1, 0})
	rot, _ := matrix.NewDenseFrom(2, 2, []int{0, -1, 1, 0})

	r, _ := matrix.Mul(rot, v.AsMatrix())
	_ = v.Assign(r)
	fmt.Println(v)
	// Output:
	// (0, 1)
}

func ExampleVector_Length() {
	f := vector.New[float64]([2]float64{3, 3})
	i := vector.New[int]([2]int{3, 3})

	fmt.Printf("%.4f %d\n", f.Length(), i.Length())
	// Output:
	// 4.2426 4
}
