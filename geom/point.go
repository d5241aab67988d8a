package geom

import (
	"fmt"
	"image"
)

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// FromImagePoint converts an image.Point into a Point.
func FromImagePoint[T Scalar](p image.Point) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the componentwise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether p and q are equal.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// WithX returns a copy of p with X set to v.
func (p Point[T]) WithX(v T) Point[T] {
	p.X = v
	return p
}

// WithY returns a copy of p with Y set to v.
func (p Point[T]) WithY(v T) Point[T] {
	p.Y = v
	return p
}

// ImagePoint converts p into an image.Point, truncating non-integer
// coordinates.
func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
