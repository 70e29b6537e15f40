package intr

// Line is an infinite line origin + s*direction for all real s.
//
// The direction does not need to be unit length. Parameters reported by
// FindIntersection are then scaled by the direction's magnitude rather than
// being arc length.
type Line[T Scalar] struct {
	Origin    Point[T]
	Direction Vec2[T]
}

// NewLine creates a line from an origin and a direction.
func NewLine[T Scalar](origin Point[T], direction Vec2[T]) Line[T] {
	return Line[T]{Origin: origin, Direction: direction}
}

// LineThrough returns the line through p0 and p1, parameterized so that
// At(0) == p0 and At(1) == p1.
func LineThrough[T Scalar](p0, p1 Point[T]) Line[T] {
	return Line[T]{Origin: p0, Direction: p1.Sub(p0)}
}

// At returns the point origin + s*direction.
func (l Line[T]) At(s T) Point[T] {
	return l.Origin.Add(l.Direction.Mul(s))
}

// Validate reports whether l satisfies the preconditions of the
// intersection queries. The queries do not call it.
func (l Line[T]) Validate() error {
	if !isFinite(l.Origin.X) || !isFinite(l.Origin.Y) ||
		!isFinite(l.Direction.X) || !isFinite(l.Direction.Y) {
		return ErrNonFinite
	}
	if l.Direction.IsZero() {
		return ErrZeroDirection
	}
	return nil
}
