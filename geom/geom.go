// Package geom provides small generic value types for layout
// arithmetic: points, lines, borders, half-open ranges, and
// rectangles described by position and size.
//
// It is patterned after image.Point and image.Rectangle, but stores
// rectangles as an origin plus a width and height, which is what most
// layout code actually wants to manipulate. Every type works over any
// [Scalar], so the same code handles pixel grids and floating point
// coordinate spaces alike.
//
// Values are never shared. Methods with value receivers return
// modified copies, usually named With... or in the past tense, such
// as [Rect.Reduced]. Methods with pointer receivers modify the
// receiver in place.
//
// The zero values of [Range] and [Rect] are invalid and are used to
// signal that an operation, such as an intersection, produced no
// geometry. Check IsValid before trusting such a result.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has returns true if every edge in mask is set in e.
func (e Edges) Has(mask Edges) bool {
	return e&mask == mask
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	add := func(edge Edges, name string) {
		if e&edge == 0 {
			return
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, name...)
	}
	add(EdgeTop, "top")
	add(EdgeBottom, "bottom")
	add(EdgeLeft, "left")
	add(EdgeRight, "right")
	return string(buf)
}
