package geom

import "fmt"

// Range is the half-open interval [A, B). A range is valid only if
// A < B. The zero value, and any other range with A >= B, is invalid
// and represents the absence of an interval rather than an empty one.
type Range[T Scalar] struct {
	A, B T
}

// Rg returns the range [a, b). It panics if a >= b. Use the zero
// value if an invalid range is needed.
func Rg[T Scalar](a, b T) Range[T] {
	if a >= b {
		panic(fmt.Errorf("geom.Rg: invalid bounds [%v,%v)", a, b))
	}
	return Range[T]{A: a, B: b}
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v,%v)", r.A, r.B)
}

// Check returns an error if r is not valid.
func (r Range[T]) Check() error {
	if r.IsValid() {
		return nil
	}
	return fmt.Errorf("bad range: start must precede end %v", r)
}

// Len returns the length of r.
func (r Range[T]) Len() T {
	return r.B - r.A
}

// IsValid returns true if A < B.
func (r Range[T]) IsValid() bool {
	return r.A < r.B
}

// Eq reports whether r and o have the same bounds.
func (r Range[T]) Eq(o Range[T]) bool {
	return r == o
}

// Contains returns true if t lies in [A, B).
func (r Range[T]) Contains(t T) bool {
	return r.A <= t && t < r.B
}

// ContainsRange returns true if o lies entirely inside r. Unlike
// Contains, both bounds are compared inclusively, so a range contains
// itself.
func (r Range[T]) ContainsRange(o Range[T]) bool {
	return r.A <= o.A && r.B >= o.B
}

// Intersects returns true if r and o overlap. Ranges that only touch,
// such as [0,10) and [10,12), do not intersect.
func (r Range[T]) Intersects(o Range[T]) bool {
	return o.A < r.B && r.A < o.B
}

// Intersection returns the overlap of r and o, or the zero Range if
// they do not intersect.
func (r Range[T]) Intersection(o Range[T]) Range[T] {
	if !r.Intersects(o) {
		return Range[T]{}
	}
	return Range[T]{A: max(r.A, o.A), B: min(r.B, o.B)}
}

// Difference returns the symmetric difference of r and o as two
// ranges. left spans the gap between the two lower bounds and right
// spans the gap between the two upper bounds. Either one is the zero
// Range if its bounds coincide, and both are if r and o do not
// intersect at all.
func (r Range[T]) Difference(o Range[T]) (left, right Range[T]) {
	if !r.Intersects(o) {
		return Range[T]{}, Range[T]{}
	}

	if r.A != o.A {
		left = Range[T]{A: min(r.A, o.A), B: max(r.A, o.A)}
	}
	if r.B != o.B {
		right = Range[T]{A: min(r.B, o.B), B: max(r.B, o.B)}
	}
	return left, right
}

// Add returns r with both bounds shifted up by m.
func (r Range[T]) Add(m T) Range[T] {
	return Range[T]{A: r.A + m, B: r.B + m}
}

// Sub returns r with both bounds shifted down by m.
func (r Range[T]) Sub(m T) Range[T] {
	return Range[T]{A: r.A - m, B: r.B - m}
}

// Mul returns r with both bounds multiplied by m. The result is only
// valid if m is positive.
func (r Range[T]) Mul(m T) Range[T] {
	return Range[T]{A: r.A * m, B: r.B * m}
}

// Div returns r with both bounds divided by m. The result is only
// valid if m is positive and, for integer types, does not collapse
// the bounds.
func (r Range[T]) Div(m T) Range[T] {
	return Range[T]{A: r.A / m, B: r.B / m}
}
