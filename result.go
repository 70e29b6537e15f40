package intr

import "math"

// InfiniteIntersections is the intersection count reported for coincident lines.
const InfiniteIntersections int32 = math.MaxInt32

// Kind classifies how two lines intersect.
type Kind int

const (
	// NoIntersection means the lines are parallel and distinct.
	NoIntersection Kind = iota

	// UniquePoint means the lines cross in exactly one point.
	UniquePoint

	// Coincident means both lines describe the same point set.
	Coincident
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case NoIntersection:
		return "None"
	case UniquePoint:
		return "Point"
	case Coincident:
		return "Coincident"
	default:
		return "Unknown"
	}
}

func kindOf(numIntersections int32) Kind {
	switch numIntersections {
	case 0:
		return NoIntersection
	case 1:
		return UniquePoint
	default:
		return Coincident
	}
}

// TestResult is the result of TestIntersection.
//
//	lines do not intersect:  Intersect = false, NumIntersections = 0
//	single point:            Intersect = true,  NumIntersections = 1
//	same line:               Intersect = true,  NumIntersections = InfiniteIntersections
type TestResult struct {
	Intersect        bool
	NumIntersections int32
}

// Kind returns the classification of the result.
func (r TestResult) Kind() Kind {
	return kindOf(r.NumIntersections)
}

// FindResult is the result of FindIntersection.
//
// For a single point with parameters s0 and s1:
//
//	Line0Parameter = {s0, s0}
//	Line1Parameter = {s1, s1}
//	Point = line0.At(s0) = line1.At(s1)
//
// For coincident lines both parameter pairs are {LowestValue, MaxValue},
// meaning the whole line, and Point is zero. When the lines do not
// intersect the parameters and Point are zero. Parameters and Point are
// only meaningful when Intersect is true, and Point only for UniquePoint.
type FindResult[T Scalar] struct {
	Intersect        bool
	NumIntersections int32
	Line0Parameter   [2]T
	Line1Parameter   [2]T
	Point            Point[T]
}

// Kind returns the classification of the result.
func (r FindResult[T]) Kind() Kind {
	return kindOf(r.NumIntersections)
}

// TestResult drops the geometric data and returns the classification only.
func (r FindResult[T]) TestResult() TestResult {
	return TestResult{Intersect: r.Intersect, NumIntersections: r.NumIntersections}
}
