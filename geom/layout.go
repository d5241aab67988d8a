package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// SplitH splits r into two rectangles arranged horizontally, the
// first of which is w wide.
func SplitH[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	return r.WithW(w), r.WithTrimmedLeft(w)
}

// SplitV splits r into two rectangles arranged vertically, the first
// of which is h tall.
func SplitV[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	return r.WithH(h), r.WithTrimmedTop(h)
}

func splitHHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return SplitH(r, r.W/2)
}

func splitVHalf[T Scalar](r Rect[T]) (top, bottom Rect[T]) {
	return SplitV(r, r.H/2)
}

// HorizontalGaps returns the parts of outer to the left and to the
// right of inner's horizontal extent. Either result is the zero Rect
// if there is no gap on that side, and both are if the two do not
// overlap horizontally or if either has no width.
func HorizontalGaps[T Scalar](outer, inner Rect[T]) (left, right Rect[T]) {
	outerR, innerR := outer.WidthAsRange(), inner.WidthAsRange()
	if !outerR.IsValid() || !innerR.IsValid() {
		return Rect[T]{}, Rect[T]{}
	}

	l, r := outerR.Difference(innerR)
	if l.IsValid() {
		left = outer.WithHorizontalRange(l)
	}
	if r.IsValid() {
		right = outer.WithHorizontalRange(r)
	}
	return left, right
}

// VerticalGaps is like HorizontalGaps but returns the parts of outer
// above and below inner's vertical extent.
func VerticalGaps[T Scalar](outer, inner Rect[T]) (top, bottom Rect[T]) {
	outerR, innerR := outer.HeightAsRange(), inner.HeightAsRange()
	if !outerR.IsValid() || !innerR.IsValid() {
		return Rect[T]{}, Rect[T]{}
	}

	t, b := outerR.Difference(innerR)
	if t.IsValid() {
		top = outer.WithVerticalRange(t)
	}
	if b.IsValid() {
		bottom = outer.WithVerticalRange(b)
	}
	return top, bottom
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := splitHHalf[T], splitVHalf[T]
		if numtiles == 1 {
			yield(r)
			return
		}

		c, n := split(r)
		for range numtiles - 2 {
			if !yield(c) {
				return
			}

			split, next = next, split
			c, n = split(n)
		}

		if yield(c) {
			yield(n)
		}
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the first takes up the left two-thirds of r and the rest are
// stacked evenly in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the tiles from an iterator.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		switch {
		case numtiles <= 0:
			return
		case numtiles == 1:
			yield(r)
			return
		}

		first, rem := SplitH(r, 2*r.W/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that they evenly split r into rows. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. It yields nothing if numtiles
// is not positive or cannot be represented as a T.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		n, ok := tileCount[T](numtiles)
		if !ok {
			return
		}

		c := r.WithH(r.H / n)
		for range numtiles {
			if !yield(c) {
				return
			}
			c.ShiftY(c.H)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that they evenly split r into columns. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator. Like
// [TiledEvenVertically], it yields nothing if numtiles does not fit in
// T.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		n, ok := tileCount[T](numtiles)
		if !ok {
			return
		}

		c := r.WithW(r.W / n)
		for range numtiles {
			if !yield(c) {
				return
			}
			c.ShiftX(c.W)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. Each
// row is split evenly into at most cols columns. When that number is
// exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := (numtiles + cols - 1) / cols
		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for {
			if !yield(first) {
				return
			}
			first.ShiftY(first.H)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first, widening them all to match the widest.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	w := rects[0].W
	for _, rect := range rects[1:] {
		w = max(w, rect.W)
	}

	rects[0].SetW(w)
	for i := 1; i < len(rects); i++ {
		prev := rects[i-1]
		rects[i] = Rt(prev.X, prev.YH(), w, rects[i].H)
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle if opposite
// edges are both specified. Along an axis with neither edge
// specified, inner is centered in outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner.CenterAt(outer.Center())

	switch {
	case edges.Has(EdgeTop | EdgeBottom):
		inner.Y, inner.H = outer.Y, outer.H
	case edges.Has(EdgeTop):
		inner.SetY(outer.Y)
	case edges.Has(EdgeBottom):
		inner.SetY(outer.YH() - inner.H)
	}

	switch {
	case edges.Has(EdgeLeft | EdgeRight):
		inner.X, inner.W = outer.X, outer.W
	case edges.Has(EdgeLeft):
		inner.SetX(outer.X)
	case edges.Has(EdgeRight):
		inner.SetX(outer.XW() - inner.W)
	}

	return inner
}

// tileCount converts numtiles to T. It reports false if numtiles is
// not positive or does not fit in T.
func tileCount[T Scalar](numtiles int) (T, bool) {
	n := T(numtiles)
	if numtiles <= 0 || n <= 0 || int(n) != numtiles {
		return 0, false
	}
	return n, true
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
