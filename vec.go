package intr

// Vec2 represents a 2D displacement vector, such as the direction of a line.
// Unlike Point which represents a position, Vec2 represents a direction and magnitude.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// DotPerp returns the perpendicular dot product v.X*w.Y - v.Y*w.X.
// It is the signed area of the parallelogram spanned by v and w and is zero
// exactly when the vectors are parallel or either one is zero.
func (v Vec2[T]) DotPerp(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// Length returns the length (magnitude) of the vector.
func (v Vec2[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2[T]) Normalize() Vec2[T] {
	length := v.Length()
	if length == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{X: v.X / length, Y: v.Y / length}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2[T]) Approx(w Vec2[T], epsilon T) bool {
	return abs(v.X-w.X) < epsilon && abs(v.Y-w.Y) < epsilon
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
