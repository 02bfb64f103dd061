package geom

import (
	"github.com/vdobler/xychart"
	"gonum.org/v1/plot/vg"
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// transform converts widget pixels (origin top left, y down) of a
// width×height widget to points on the canvas rectangle dst (y up).
type transform struct {
	dst    vg.Rectangle
	sx, sy float64
}

func newTransform(width, height float64, dst vg.Rectangle) transform {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return transform{
		dst: dst,
		sx:  float64(dst.Max.X-dst.Min.X) / width,
		sy:  float64(dst.Max.Y-dst.Min.Y) / height,
	}
}

func (t transform) point(px xychart.Pixel) vg.Point {
	return vg.Point{
		X: t.dst.Min.X + vg.Length(px.X*t.sx),
		Y: t.dst.Max.Y - vg.Length(px.Y*t.sy),
	}
}

func (t transform) points(pxs []xychart.Pixel) []vg.Point {
	pts := make([]vg.Point, len(pxs))
	for i, px := range pxs {
		pts[i] = t.point(px)
	}
	return pts
}

func (t transform) rect(r xychart.Rect) vg.Rectangle {
	return CanonicRectangle(vg.Rectangle{Min: t.point(r.Min), Max: t.point(r.Max)})
}

// pixelsX and pixelsY convert a canvas length back to widget pixels.
func (t transform) pixelsX(l vg.Length) float64 { return unscale(l, t.sx) }
func (t transform) pixelsY(l vg.Length) float64 { return unscale(l, t.sy) }

func unscale(l vg.Length, s float64) float64 {
	if s == 0 {
		return float64(l)
	}
	return float64(l) / s
}
