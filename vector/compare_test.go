package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v3(x, y, z int) vector.Vec3[int] {
	return vector.New[int]([3]int{x, y, z})
}

func TestEqual(t *testing.T) {
	assert.True(t, v3(1, 2, 3).Equal(v3(1, 2, 3)))
	assert.False(t, v3(1, 2, 3).Equal(v3(1, 2, 4)))
	assert.True(t, v3(1, 2, 3).NotEqual(v3(0, 2, 3)))

	nan := vector.New[float64]([1]float64{math.NaN()})
	assert.False(t, nan.Equal(nan))
	pz := vector.New[float64]([1]float64{0})
	nz := vector.New[float64]([1]float64{math.Copysign(0, -1)})
	assert.True(t, pz.Equal(nz))
}

func TestLexicographicOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b vector.Vec3[int]
		want int
	}{
		{"equal", v3(1, 2, 3), v3(1, 2, 3), 0},
		{"first decides less", v3(0, 9, 9), v3(1, 0, 0), -1},
		{"first decides greater", v3(2, 0, 0), v3(1, 9, 9), +1},
		{"middle decides", v3(1, 2, 9), v3(1, 3, 0), -1},
		{"last decides", v3(1, 2, 4), v3(1, 2, 3), +1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.want <= 0, tt.a.LessEqual(tt.b))
			assert.Equal(t, tt.want > 0, tt.a.Greater(tt.b))
			assert.Equal(t, tt.want >= 0, tt.a.GreaterEqual(tt.b))
		})
	}
}

func TestStrictOnEqual(t *testing.T) {
	a := v3(4, 5, 6)
	assert.False(t, a.Less(a))
	assert.False(t, a.Greater(a))
	assert.True(t, a.LessEqual(a))
	assert.True(t, a.GreaterEqual(a))
}

// TestOrderingProperties checks totality and the <=, >= reductions on
// random small-range input so that ties are frequent.
func TestOrderingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 2000; k++ {
		a := v3(rng.Intn(3), rng.Intn(3), rng.Intn(3))
		b := v3(rng.Intn(3), rng.Intn(3), rng.Intn(3))

		n := 0
		for _, h := range []bool{a.Less(b), a.Equal(b), b.Less(a)} {
			if h {
				n++
			}
		}
		require.Equal(t, 1, n, "exactly one of a<b, a==b, b<a for a=%v b=%v", a, b)

		require.Equal(t, a.Less(b) || a.Equal(b), a.LessEqual(b), "a=%v b=%v", a, b)
		require.Equal(t, a.Greater(b) || a.Equal(b), a.GreaterEqual(b), "a=%v b=%v", a, b)
		require.Equal(t, a.Less(b), b.Greater(a))
	}
}

// TestCompareSkipsNaN documents that an index holding NaN never decides.
func TestCompareSkipsNaN(t *testing.T) {
	a := vector.New[float64]([2]float64{math.NaN(), 1})
	b := vector.New[float64]([2]float64{0, 2})
	assert.Equal(t, -1, a.Compare(b))

	c := vector.New[float64]([2]float64{math.NaN(), 2})
	assert.Equal(t, 0, c.Compare(b))
	assert.True(t, c.LessEqual(b))
	assert.False(t, c.Equal(b))
}
