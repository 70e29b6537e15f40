package intr

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the coordinate type of points, vectors and
// lines. Any floating-point type, including named ones, satisfies it.
type Scalar interface {
	constraints.Float
}

var (
	maxFloat32 = math.MaxFloat32
	maxFloat64 = math.MaxFloat64
)

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Scalar]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(maxFloat32)
	}
	return T(maxFloat64)
}

// LowestValue returns the most negative finite value representable by T.
func LowestValue[T Scalar]() T {
	return -MaxValue[T]()
}

func sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}

func isFinite[T Scalar](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
