package geom

import "fmt"

// Line is a directed segment from (X1, Y1) to (X2, Y2). The endpoints
// are not ordered in any way.
type Line[T Scalar] struct {
	X1, Y1, X2, Y2 T
}

// Ln is shorthand for Line[T]{X1: x1, Y1: y1, X2: x2, Y2: y2}.
func Ln[T Scalar](x1, y1, x2, y2 T) Line[T] {
	return Line[T]{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// LnPts returns a line from p1 to p2.
func LnPts[T Scalar](p1, p2 Point[T]) Line[T] {
	return Line[T]{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// VLn returns a vertical line at column x from y1 to y2.
func VLn[T Scalar](x, y1, y2 T) Line[T] {
	return Line[T]{X1: x, Y1: y1, X2: x, Y2: y2}
}

func (l Line[T]) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", l.X1, l.Y1, l.X2, l.Y2)
}

// Start returns the first endpoint of l.
func (l Line[T]) Start() Point[T] { return Point[T]{X: l.X1, Y: l.Y1} }

// End returns the second endpoint of l.
func (l Line[T]) End() Point[T] { return Point[T]{X: l.X2, Y: l.Y2} }

// ShiftX moves l horizontally by amount.
func (l *Line[T]) ShiftX(amount T) {
	l.X1 += amount
	l.X2 += amount
}

// WithShiftedX returns a copy of l moved horizontally by amount.
func (l Line[T]) WithShiftedX(amount T) Line[T] {
	l.ShiftX(amount)
	return l
}

// WithX1 returns a copy of l with X1 set to v.
func (l Line[T]) WithX1(v T) Line[T] { l.X1 = v; return l }

// WithY1 returns a copy of l with Y1 set to v.
func (l Line[T]) WithY1(v T) Line[T] { l.Y1 = v; return l }

// WithX2 returns a copy of l with X2 set to v.
func (l Line[T]) WithX2(v T) Line[T] { l.X2 = v; return l }

// WithY2 returns a copy of l with Y2 set to v.
func (l Line[T]) WithY2(v T) Line[T] { l.Y2 = v; return l }
