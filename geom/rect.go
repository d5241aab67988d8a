package geom

import (
	"fmt"
	"image"
	"iter"
)

// Rect is an axis-aligned rectangle with its top-left corner at
// (X, Y) and a size of W by H. It covers the half-open area
// [X, X+W) x [Y, Y+H).
//
// A Rect is valid only if both W and H are positive. The zero value
// is invalid and is returned by operations that have no geometric
// result, such as the intersection of two disjoint rectangles.
type Rect[T Scalar] struct {
	X, Y, W, H T
}

// Rt is shorthand for Rect[T]{X: x, Y: y, W: w, H: h}.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// RtPts returns the rectangle with its top-left corner at tl and its
// exclusive bottom-right corner at br.
func RtPts[T Scalar](tl, br Point[T]) Rect[T] {
	return Rect[T]{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}

// FromImageRect converts an image.Rectangle into a Rect.
func FromImageRect[T Scalar](r image.Rectangle) Rect[T] {
	return Rect[T]{X: T(r.Min.X), Y: T(r.Min.Y), W: T(r.Dx()), H: T(r.Dy())}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v+%vx%v", r.Position(), r.W, r.H)
}

// XW returns the exclusive right edge, X+W.
func (r Rect[T]) XW() T { return r.X + r.W }

// YH returns the exclusive bottom edge, Y+H.
func (r Rect[T]) YH() T { return r.Y + r.H }

// IsValid returns true if r has a positive width and height.
func (r Rect[T]) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// Eq reports whether r and o have identical geometry.
func (r Rect[T]) Eq(o Rect[T]) bool {
	return r == o
}

// Area returns W*H, or zero if r is not valid.
func (r Rect[T]) Area() T {
	if !r.IsValid() {
		return 0
	}
	return r.W * r.H
}

// Position returns the top-left corner of r.
func (r Rect[T]) Position() Point[T] { return Point[T]{X: r.X, Y: r.Y} }

// Size returns the width and height of r as a Point.
func (r Rect[T]) Size() Point[T] { return Point[T]{X: r.W, Y: r.H} }

// TopLeft returns the corner at (X, Y).
func (r Rect[T]) TopLeft() Point[T] { return Point[T]{X: r.X, Y: r.Y} }

// TopRight returns the corner at (XW(), Y).
func (r Rect[T]) TopRight() Point[T] { return Point[T]{X: r.XW(), Y: r.Y} }

// BottomLeft returns the corner at (X, YH()).
func (r Rect[T]) BottomLeft() Point[T] { return Point[T]{X: r.X, Y: r.YH()} }

// BottomRight returns the corner at (XW(), YH()).
func (r Rect[T]) BottomRight() Point[T] { return Point[T]{X: r.XW(), Y: r.YH()} }

// Center returns the point halfway between r's corners.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopLine returns the line from TopLeft to TopRight.
func (r Rect[T]) TopLine() Line[T] { return LnPts(r.TopLeft(), r.TopRight()) }

// BottomLine returns the line from BottomLeft to BottomRight.
func (r Rect[T]) BottomLine() Line[T] { return LnPts(r.BottomLeft(), r.BottomRight()) }

// LeftLine returns the line from TopLeft to BottomLeft.
func (r Rect[T]) LeftLine() Line[T] { return LnPts(r.TopLeft(), r.BottomLeft()) }

// RightLine returns the line from TopRight to BottomRight.
func (r Rect[T]) RightLine() Line[T] { return LnPts(r.TopRight(), r.BottomRight()) }

// WidthAsLine returns a horizontal line along the top row of r, from
// X to the last unit inside it, XW()-1. Note that this differs from
// TopLine, which ends at the exclusive edge.
func (r Rect[T]) WidthAsLine() Line[T] {
	return Ln(r.X, r.Y, r.XW()-1, r.Y)
}

// HeightAsLine returns a vertical line along the left column of r,
// from Y to YH()-1.
func (r Rect[T]) HeightAsLine() Line[T] {
	return VLn(r.X, r.Y, r.YH()-1)
}

// WidthAsRange returns [X, XW()), or the zero Range if r has no
// width.
func (r Rect[T]) WidthAsRange() Range[T] {
	if r.X >= r.XW() {
		return Range[T]{}
	}
	return Range[T]{A: r.X, B: r.XW()}
}

// HeightAsRange returns [Y, YH()), or the zero Range if r has no
// height.
func (r Rect[T]) HeightAsRange() Range[T] {
	if r.Y >= r.YH() {
		return Range[T]{}
	}
	return Range[T]{A: r.Y, B: r.YH()}
}

// Contains returns true if p is inside r. The right and bottom edges
// are exclusive.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.X <= p.X && p.X < r.XW() &&
		r.Y <= p.Y && p.Y < r.YH()
}

// ContainsLine returns true if both endpoints of l are inside r.
func (r Rect[T]) ContainsLine(l Line[T]) bool {
	return r.Contains(l.Start()) && r.Contains(l.End())
}

// ContainsRect returns true if o lies entirely inside r. Unlike
// Contains, the right and bottom edges are inclusive, so a rectangle
// contains itself.
func (r Rect[T]) ContainsRect(o Rect[T]) bool {
	return r.X <= o.X && r.Y <= o.Y &&
		r.XW() >= o.XW() && r.YH() >= o.YH()
}

// Intersection returns the area shared by r and o. If they do not
// overlap, including if they only touch along an edge, it returns the
// zero Rect.
func (r Rect[T]) Intersection(o Rect[T]) Rect[T] {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	w := min(r.XW(), o.XW()) - x
	h := min(r.YH(), o.YH()) - y
	if w <= 0 || h <= 0 {
		return Rect[T]{}
	}
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Intersect is like Intersection but also reports whether there was
// an intersection at all.
func (r Rect[T]) Intersect(o Rect[T]) (Rect[T], bool) {
	i := r.Intersection(o)
	return i, i.IsValid()
}

// Intersects returns true if r and o overlap.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return r.Intersection(o).IsValid()
}

// Union returns the smallest rectangle containing both r and o. If
// either is invalid, the other is returned.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	if !r.IsValid() {
		return o
	}
	if !o.IsValid() {
		return r
	}

	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect[T]{
		X: x,
		Y: y,
		W: max(r.XW(), o.XW()) - x,
		H: max(r.YH(), o.YH()) - y,
	}
}

// ImageRect converts r into an image.Rectangle, truncating
// non-integer coordinates.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.XW()), int(r.YH()))
}

// Points yields every integer point inside r in row-major order. It
// yields nothing if r is not valid.
func Points[T Integer](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !r.IsValid() {
			return
		}

		for y := r.Y; y < r.YH(); y++ {
			for x := r.X; x < r.XW(); x++ {
				if !yield(Point[T]{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
