package intr

import (
	"context"
	"log/slog"
)

// The intersection of two lines solves P0 + s0*D0 = P1 + s1*D1, rewritten
// as s0*D0 - s1*D1 = P1 - P0 = Q. With D = DotPerp(D0, D1):
//   - D != 0: single point, s0 = DotPerp(Q, D1)/D, s1 = DotPerp(Q, D0)/D
//   - D == 0 and DotPerp(Q, D1) != 0: parallel and distinct
//   - D == 0 and DotPerp(Q, D1) == 0: the same line
//
// All comparisons against zero are exact.

// TestIntersection reports whether line0 and line1 intersect and how many
// points they share, without computing any coordinates.
func TestIntersection[T Scalar](line0, line1 Line[T]) TestResult {
	diff := line1.Origin.Sub(line0.Origin)
	d0DotPerpD1 := line0.Direction.DotPerp(line1.Direction)
	if d0DotPerpD1 != 0 {
		return TestResult{Intersect: true, NumIntersections: 1}
	}

	// Parallel. The offset is normalized so the zero test does not depend
	// on the distance between the origins.
	logParallel(line0, line1, diff)
	diffN := diff.Normalize()
	if diffN.DotPerp(line1.Direction) != 0 {
		return TestResult{Intersect: false, NumIntersections: 0}
	}
	return TestResult{Intersect: true, NumIntersections: InfiniteIntersections}
}

// FindIntersection classifies line0 and line1 like TestIntersection and
// also computes the parameter of the intersection on each line and the
// intersection point.
func FindIntersection[T Scalar](line0, line1 Line[T]) FindResult[T] {
	var result FindResult[T]

	q := line1.Origin.Sub(line0.Origin)
	d0DotPerpD1 := line0.Direction.DotPerp(line1.Direction)
	if d0DotPerpD1 != 0 {
		s0 := q.DotPerp(line1.Direction) / d0DotPerpD1
		s1 := q.DotPerp(line0.Direction) / d0DotPerpD1
		result.Intersect = true
		result.NumIntersections = 1
		result.Line0Parameter = [2]T{s0, s0}
		result.Line1Parameter = [2]T{s1, s1}
		result.Point = line0.At(s0)
		return result
	}

	logParallel(line0, line1, q)
	if q.DotPerp(line1.Direction) != 0 {
		return result
	}

	lo, hi := LowestValue[T](), MaxValue[T]()
	result.Intersect = true
	result.NumIntersections = InfiniteIntersections
	result.Line0Parameter = [2]T{lo, hi}
	result.Line1Parameter = [2]T{lo, hi}
	return result
}

// logParallel records degenerate inputs seen on the parallel branch.
func logParallel[T Scalar](line0, line1 Line[T], diff Vec2[T]) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if line0.Direction.IsZero() || line1.Direction.IsZero() {
		l.Debug("intr: zero line direction",
			slog.Any("direction0", line0.Direction),
			slog.Any("direction1", line1.Direction))
	}
	if diff.IsZero() {
		l.Debug("intr: parallel lines share an origin",
			slog.Any("origin", line0.Origin))
	}
}
