package geom

// This file contains the in-place edits of a Rect along with their
// copying counterparts. Each With... method applies the matching edit
// to a copy of its receiver.

// SetX moves r horizontally so that its left edge is at v.
func (r *Rect[T]) SetX(v T) { r.X = v }

// SetY moves r vertically so that its top edge is at v.
func (r *Rect[T]) SetY(v T) { r.Y = v }

// SetW sets the width of r, keeping its left edge in place.
func (r *Rect[T]) SetW(v T) { r.W = v }

// SetH sets the height of r, keeping its top edge in place.
func (r *Rect[T]) SetH(v T) { r.H = v }

// SetPosition moves r so that its top-left corner is at p.
func (r *Rect[T]) SetPosition(p Point[T]) {
	r.SetX(p.X)
	r.SetY(p.Y)
}

// SetSize resizes r without moving its top-left corner.
func (r *Rect[T]) SetSize(w, h T) {
	r.SetW(w)
	r.SetH(h)
}

// SetHorizontalRange replaces r's horizontal extent with rg.
func (r *Rect[T]) SetHorizontalRange(rg Range[T]) {
	r.X, r.W = rg.A, rg.Len()
}

// SetVerticalRange replaces r's vertical extent with rg.
func (r *Rect[T]) SetVerticalRange(rg Range[T]) {
	r.Y, r.H = rg.A, rg.Len()
}

// ShiftX moves r horizontally by amount.
func (r *Rect[T]) ShiftX(amount T) { r.X += amount }

// ShiftY moves r vertically by amount.
func (r *Rect[T]) ShiftY(amount T) { r.Y += amount }

// TrimLeft moves the left edge of r inwards by amount, leaving the
// right edge where it was.
func (r *Rect[T]) TrimLeft(amount T) {
	r.X += amount
	r.W -= amount
}

// TrimRight moves the right edge of r inwards by amount.
func (r *Rect[T]) TrimRight(amount T) {
	r.W -= amount
}

// TrimTop moves the top edge of r downwards by amount, leaving the
// bottom edge where it was.
func (r *Rect[T]) TrimTop(amount T) {
	r.Y += amount
	r.H -= amount
}

// TrimBottom moves the bottom edge of r upwards by amount.
func (r *Rect[T]) TrimBottom(amount T) {
	r.H -= amount
}

// Reduce shrinks r around its center by dx on the left and right and
// by dy on the top and bottom.
func (r *Rect[T]) Reduce(dx, dy T) {
	r.X += dx
	r.Y += dy
	r.W -= 2 * dx
	r.H -= 2 * dy
}

// ReduceUniform is the same as Reduce(amount, amount).
func (r *Rect[T]) ReduceUniform(amount T) {
	r.Reduce(amount, amount)
}

// ReduceBorder shrinks each side of r by the corresponding side of b.
func (r *Rect[T]) ReduceBorder(b Border[T]) {
	r.X += b.Left
	r.Y += b.Top
	r.W -= b.Horizontal()
	r.H -= b.Vertical()
}

// Expand grows r around its center. It is the inverse of Reduce.
func (r *Rect[T]) Expand(dx, dy T) {
	r.X -= dx
	r.Y -= dy
	r.W += 2 * dx
	r.H += 2 * dy
}

// ExpandUniform is the same as Expand(amount, amount).
func (r *Rect[T]) ExpandUniform(amount T) {
	r.Expand(amount, amount)
}

// Scale multiplies the position and size of r by factor. For integer
// types the results are truncated towards zero.
func (r *Rect[T]) Scale(factor float64) {
	r.X = T(float64(r.X) * factor)
	r.Y = T(float64(r.Y) * factor)
	r.W = T(float64(r.W) * factor)
	r.H = T(float64(r.H) * factor)
}

// CenterAt moves r so that its center is at p.
func (r *Rect[T]) CenterAt(p Point[T]) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
}

// WithX returns a copy of r with X set to v.
func (r Rect[T]) WithX(v T) Rect[T] { r.SetX(v); return r }

// WithY returns a copy of r with Y set to v.
func (r Rect[T]) WithY(v T) Rect[T] { r.SetY(v); return r }

// WithW returns a copy of r with W set to v.
func (r Rect[T]) WithW(v T) Rect[T] { r.SetW(v); return r }

// WithH returns a copy of r with H set to v.
func (r Rect[T]) WithH(v T) Rect[T] { r.SetH(v); return r }

// WithPosition returns a copy of r moved so that its top-left corner
// is at p.
func (r Rect[T]) WithPosition(p Point[T]) Rect[T] {
	r.SetPosition(p)
	return r
}

// WithSize returns a copy of r resized to w by h.
func (r Rect[T]) WithSize(w, h T) Rect[T] {
	r.SetSize(w, h)
	return r
}

// WithHorizontalRange returns a copy of r spanning rg horizontally.
func (r Rect[T]) WithHorizontalRange(rg Range[T]) Rect[T] {
	r.SetHorizontalRange(rg)
	return r
}

// WithVerticalRange returns a copy of r spanning rg vertically.
func (r Rect[T]) WithVerticalRange(rg Range[T]) Rect[T] {
	r.SetVerticalRange(rg)
	return r
}

// WithShiftedX returns a copy of r moved horizontally by amount.
func (r Rect[T]) WithShiftedX(amount T) Rect[T] { r.ShiftX(amount); return r }

// WithShiftedY returns a copy of r moved vertically by amount.
func (r Rect[T]) WithShiftedY(amount T) Rect[T] { r.ShiftY(amount); return r }

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	r.ShiftX(p.X)
	r.ShiftY(p.Y)
	return r
}

// WithTrimmedLeft returns a copy of r with the left edge moved in by
// amount.
func (r Rect[T]) WithTrimmedLeft(amount T) Rect[T] { r.TrimLeft(amount); return r }

// WithTrimmedRight returns a copy of r with the right edge moved in
// by amount.
func (r Rect[T]) WithTrimmedRight(amount T) Rect[T] { r.TrimRight(amount); return r }

// WithTrimmedTop returns a copy of r with the top edge moved down by
// amount.
func (r Rect[T]) WithTrimmedTop(amount T) Rect[T] { r.TrimTop(amount); return r }

// WithTrimmedBottom returns a copy of r with the bottom edge moved up
// by amount.
func (r Rect[T]) WithTrimmedBottom(amount T) Rect[T] { r.TrimBottom(amount); return r }

// Reduced returns a copy of r shrunk around its center. See Reduce.
func (r Rect[T]) Reduced(dx, dy T) Rect[T] {
	r.Reduce(dx, dy)
	return r
}

// ReducedUniform returns a copy of r shrunk by amount on every side.
func (r Rect[T]) ReducedUniform(amount T) Rect[T] {
	r.ReduceUniform(amount)
	return r
}

// ReducedBorder returns a copy of r with each side moved in by the
// corresponding side of b.
func (r Rect[T]) ReducedBorder(b Border[T]) Rect[T] {
	r.ReduceBorder(b)
	return r
}

// Expanded returns a copy of r grown around its center. See Expand.
func (r Rect[T]) Expanded(dx, dy T) Rect[T] {
	r.Expand(dx, dy)
	return r
}

// ExpandedUniform returns a copy of r grown by amount on every side.
func (r Rect[T]) ExpandedUniform(amount T) Rect[T] {
	r.ExpandUniform(amount)
	return r
}

// Scaled returns a copy of r with its position and size multiplied
// by factor.
func (r Rect[T]) Scaled(factor float64) Rect[T] {
	r.Scale(factor)
	return r
}

// CenteredAt returns a copy of r with its center moved to p.
func (r Rect[T]) CenteredAt(p Point[T]) Rect[T] {
	r.CenterAt(p)
	return r
}
