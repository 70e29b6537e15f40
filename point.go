package intr

// Point represents a 2D position.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the point translated by v.
func (p Point[T]) Add(v Vec2[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Vec2[T] {
	return Vec2[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point[T]) Distance(q Point[T]) T {
	return p.Sub(q).Length()
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point[T]) Approx(q Point[T], epsilon T) bool {
	return abs(p.X-q.X) < epsilon && abs(p.Y-q.Y) < epsilon
}
