// Package intr computes the intersection of two infinite lines in the plane.
//
// # Overview
//
// Two queries are provided, both pure functions over value inputs:
//
//   - [TestIntersection] classifies the pair: no intersection, a single
//     point, or the same line (infinitely many points).
//   - [FindIntersection] performs the same classification and also returns
//     the parameter of the intersection on each line and the point itself.
//
// # Quick Start
//
//	import "github.com/gogpu/intr"
//
//	l0 := intr.NewLine(intr.Pt(0.0, 0.0), intr.V2(1.0, 0.0))
//	l1 := intr.NewLine(intr.Pt(0.0, 1.0), intr.V2(0.0, 1.0))
//
//	r := intr.FindIntersection(l0, l1)
//	if r.Intersect && r.NumIntersections == 1 {
//	    fmt.Println(r.Point) // {0 0}
//	}
//
// # Numerics
//
// Parallelism is decided by an exact comparison of the perpendicular dot
// product against zero. Nearly parallel lines may therefore be reported as
// crossing at a very distant point. Callers that need tolerance must apply
// it themselves. Directions must be non-zero; see [Line.Validate].
//
// The scalar type is any floating-point type. Coincident lines report the
// parameter span {LowestValue, MaxValue} of that type.
package intr
