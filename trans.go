// Coordinate transformations between data space and widget space.

package xychart

import "github.com/vdobler/xychart/data"

// linear maps x from the interval from to the interval to.
// A degenerate from interval is treated as having unit span.
func linear(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/from.Span()
}

// Mapper converts between data coordinates and widget pixels for one
// widget geometry and X range. The Y range is passed per call so that the
// same Mapper serves the global range and every Y-axis.
type Mapper struct {
	Width, Height float64
	Margins       Margins
	X             Interval
}

// PlotRect returns the plot area inside the margins.
func (m Mapper) PlotRect() Rect {
	return Rect{
		Min: Pixel{m.Margins.Left, m.Margins.Top},
		Max: Pixel{m.Width - m.Margins.Right, m.Height - m.Margins.Bottom},
	}
}

// ToPixel maps the data point p to a widget pixel using y as the Y range.
func (m Mapper) ToPixel(p data.Point, y Interval) Pixel {
	r := m.PlotRect()
	return Pixel{
		X: linear(m.X, Interval{r.Min.X, r.Max.X}, p.X),
		Y: linear(y, Interval{r.Max.Y, r.Min.Y}, p.Y),
	}
}

// ToData is the inverse of ToPixel.
func (m Mapper) ToData(px Pixel, y Interval) data.Point {
	r := m.PlotRect()
	w, h := r.Width(), r.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return data.Point{
		X: m.X.Min + (px.X-r.Min.X)/w*m.X.Span(),
		Y: y.Min + (r.Max.Y-px.Y)/h*y.Span(),
	}
}
