// Package lvlgeom is a small numeric toolkit for resource-constrained
// programs: fixed-size vectors whose length lives in the type, fixed-shape
// matrices that can alias vector storage, and a levelled logging façade with
// both build-time and run-time gates.
//
// Everything is organized under subpackages:
//
//	matrix/            generic row-major Dense[T], Mul, Transpose, Equal
//	vector/            Vector[T, [N]T] arithmetic, ordering, zero-copy matrix views
//	logger/            Level, Stream, Logger, the Debug/Info/Warning/Error channels
//	logger/ringsink/   memory-mapped circular sink for logger.Stream
//	examples/          runnable demo wiring the three together
//
// Quick example:
//
//	v := vector.New[float64]([3]float64{1, 2, 2})
//	logger.Info().Print("|v| = ", v.Length(), "\n") // |v| = 3
//
//	go get github.com/katalvlaran/lvlgeom
package lvlgeom
