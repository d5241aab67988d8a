package geom

import "fmt"

// Border describes an inset amount for each of the four sides of a
// rectangle. It is consumed by [Rect.ReduceBorder] and
// [Rect.ReducedBorder].
type Border[T Scalar] struct {
	Top, Right, Bottom, Left T
}

// Bd returns a border with each side set independently, in clockwise
// order starting from the top.
func Bd[T Scalar](top, right, bottom, left T) Border[T] {
	return Border[T]{Top: top, Right: right, Bottom: bottom, Left: left}
}

// BdAll returns a border with all four sides set to v.
func BdAll[T Scalar](v T) Border[T] {
	return Bd(v, v, v, v)
}

// BdXY returns a border with the left and right sides set to x and the
// top and bottom sides set to y.
func BdXY[T Scalar](x, y T) Border[T] {
	return Bd(y, x, y, x)
}

func (b Border[T]) String() string {
	return fmt.Sprintf("border(%v,%v,%v,%v)", b.Top, b.Right, b.Bottom, b.Left)
}

// Horizontal returns the combined width of the left and right sides.
func (b Border[T]) Horizontal() T { return b.Left + b.Right }

// Vertical returns the combined height of the top and bottom sides.
func (b Border[T]) Vertical() T { return b.Top + b.Bottom }
