package geom_test

import (
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestRectEdit(t *testing.T) {
	base := geom.Rt(10, 20, 100, 200)

	tests := map[string]struct {
		edit     func(*geom.Rect[int])
		with     func(geom.Rect[int]) geom.Rect[int]
		expected geom.Rect[int]
	}{
		"X": {
			edit:     func(r *geom.Rect[int]) { r.SetX(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithX(5) },
			expected: geom.Rt(5, 20, 100, 200),
		},
		"Y": {
			edit:     func(r *geom.Rect[int]) { r.SetY(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithY(5) },
			expected: geom.Rt(10, 5, 100, 200),
		},
		"W": {
			edit:     func(r *geom.Rect[int]) { r.SetW(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithW(5) },
			expected: geom.Rt(10, 20, 5, 200),
		},
		"H": {
			edit:     func(r *geom.Rect[int]) { r.SetH(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithH(5) },
			expected: geom.Rt(10, 20, 100, 5),
		},
		"Position": {
			edit:     func(r *geom.Rect[int]) { r.SetPosition(geom.Pt(1, 2)) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithPosition(geom.Pt(1, 2)) },
			expected: geom.Rt(1, 2, 100, 200),
		},
		"Size": {
			edit:     func(r *geom.Rect[int]) { r.SetSize(3, 4) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithSize(3, 4) },
			expected: geom.Rt(10, 20, 3, 4),
		},
		"HorizontalRange": {
			edit:     func(r *geom.Rect[int]) { r.SetHorizontalRange(geom.Rg(30, 50)) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithHorizontalRange(geom.Rg(30, 50)) },
			expected: geom.Rt(30, 20, 20, 200),
		},
		"VerticalRange": {
			edit:     func(r *geom.Rect[int]) { r.SetVerticalRange(geom.Rg(0, 7)) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithVerticalRange(geom.Rg(0, 7)) },
			expected: geom.Rt(10, 0, 100, 7),
		},
		"ShiftX": {
			edit:     func(r *geom.Rect[int]) { r.ShiftX(-15) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithShiftedX(-15) },
			expected: geom.Rt(-5, 20, 100, 200),
		},
		"ShiftY": {
			edit:     func(r *geom.Rect[int]) { r.ShiftY(15) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithShiftedY(15) },
			expected: geom.Rt(10, 35, 100, 200),
		},
		"TrimLeft": {
			edit:     func(r *geom.Rect[int]) { r.TrimLeft(10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithTrimmedLeft(10) },
			expected: geom.Rt(20, 20, 90, 200),
		},
		"TrimRight": {
			edit:     func(r *geom.Rect[int]) { r.TrimRight(10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithTrimmedRight(10) },
			expected: geom.Rt(10, 20, 90, 200),
		},
		"TrimTop": {
			edit:     func(r *geom.Rect[int]) { r.TrimTop(10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithTrimmedTop(10) },
			expected: geom.Rt(10, 30, 100, 190),
		},
		"TrimBottom": {
			edit:     func(r *geom.Rect[int]) { r.TrimBottom(10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.WithTrimmedBottom(10) },
			expected: geom.Rt(10, 20, 100, 190),
		},
		"Reduce": {
			edit:     func(r *geom.Rect[int]) { r.Reduce(5, 10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.Reduced(5, 10) },
			expected: geom.Rt(15, 30, 90, 180),
		},
		"ReduceUniform": {
			edit:     func(r *geom.Rect[int]) { r.ReduceUniform(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.ReducedUniform(5) },
			expected: geom.Rt(15, 25, 90, 190),
		},
		"ReduceBorder": {
			edit:     func(r *geom.Rect[int]) { r.ReduceBorder(geom.Bd(1, 2, 3, 4)) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.ReducedBorder(geom.Bd(1, 2, 3, 4)) },
			expected: geom.Rt(14, 21, 94, 196),
		},
		"Expand": {
			edit:     func(r *geom.Rect[int]) { r.Expand(5, 10) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.Expanded(5, 10) },
			expected: geom.Rt(5, 10, 110, 220),
		},
		"ExpandUniform": {
			edit:     func(r *geom.Rect[int]) { r.ExpandUniform(5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.ExpandedUniform(5) },
			expected: geom.Rt(5, 15, 110, 210),
		},
		"Scale": {
			edit:     func(r *geom.Rect[int]) { r.Scale(0.5) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.Scaled(0.5) },
			expected: geom.Rt(5, 10, 50, 100),
		},
		"CenterAt": {
			edit:     func(r *geom.Rect[int]) { r.CenterAt(geom.Pt(0, 0)) },
			with:     func(r geom.Rect[int]) geom.Rect[int] { return r.CenteredAt(geom.Pt(0, 0)) },
			expected: geom.Rt(-50, -100, 100, 200),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := base
			tt.edit(&r)
			require.Equal(t, tt.expected, r)
			requireEdges(t, r)

			w := tt.with(base)
			require.Equal(t, tt.expected, w)
			require.Equal(t, geom.Rt(10, 20, 100, 200), base)
		})
	}
}

func TestRectTrimKeepsOppositeEdge(t *testing.T) {
	r := geom.Rt(10, 20, 100, 200)

	l := r.WithTrimmedLeft(30)
	require.Equal(t, r.XW(), l.XW())
	top := r.WithTrimmedTop(30)
	require.Equal(t, r.YH(), top.YH())

	right := r.WithTrimmedRight(30)
	require.Equal(t, r.XW()-30, right.XW())
	bottom := r.WithTrimmedBottom(30)
	require.Equal(t, r.YH()-30, bottom.YH())
}

func TestRectReducedBorder(t *testing.T) {
	r := geom.Rt(0, 0, 100, 100).ReducedBorder(geom.Bd(1, 2, 3, 4))
	require.Equal(t, 4, r.X)
	require.Equal(t, 1, r.Y)
	require.Equal(t, 94, r.W)
	require.Equal(t, 96, r.H)
	require.Equal(t, 98, r.XW())
	require.Equal(t, 97, r.YH())
}

func TestRectReduceDegenerate(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	require.False(t, r.ReducedUniform(5).IsValid())
	require.False(t, r.Reduced(6, 0).IsValid())
	require.True(t, r.ReducedUniform(4).IsValid())
}

func TestRectExpandInvertsReduce(t *testing.T) {
	r := geom.Rt[float64](1.5, 2.5, 10, 20)
	require.Equal(t, r, r.Reduced(1, 2).Expanded(1, 2))
	require.Equal(t, r, r.ExpandedUniform(3).ReducedUniform(3))
}

func TestRectScaleFloat(t *testing.T) {
	r := geom.Rt[float32](1, 2, 3, 4).Scaled(1.5)
	require.Equal(t, geom.Rt[float32](1.5, 3, 4.5, 6), r)
	requireEdges(t, r)

	i := geom.Rt(3, 3, 3, 3).Scaled(1.5)
	require.Equal(t, geom.Rt(4, 4, 4, 4), i)
}

func TestRectWithIdempotent(t *testing.T) {
	r := geom.Rt(1, 2, 3, 4)
	require.Equal(t, r.WithX(9), r.WithX(9).WithX(9))
	require.Equal(t, r.WithH(9), r.WithH(9).WithH(9))
	require.Equal(t, r.WithPosition(geom.Pt(7, 7)), r.WithPosition(geom.Pt(7, 7)).WithPosition(geom.Pt(7, 7)))
}

func TestRectAdd(t *testing.T) {
	require.Equal(t, geom.Rt(4, 6, 3, 4), geom.Rt(1, 2, 3, 4).Add(geom.Pt(3, 4)))
}
