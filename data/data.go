// Package data contains the point types stored in chart series.
package data

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Point is a single (x,y) data sample.
type Point struct {
	X, Y float64
}

// Points is a sequence of samples in arrival order.
// It implements gonum's plotter.XYer.
type Points []Point

var _ plotter.XYer = Points(nil)

func (ps Points) Len() int                { return len(ps) }
func (ps Points) XY(i int) (x, y float64) { return ps[i].X, ps[i].Y }

// Clone returns a copy of ps which shares no storage with ps.
func (ps Points) Clone() Points {
	if ps == nil {
		return nil
	}
	return append(make(Points, 0, len(ps)), ps...)
}

// XYRange returns the minimum and maximum x and y values of xys.
// An empty xys yields NaN for all four values.
func XYRange(xys plotter.XYer) (xmin, xmax, ymin, ymax float64) {
	if xys == nil || xys.Len() == 0 {
		return math.NaN(), math.NaN(), math.NaN(), math.NaN()
	}
	return plotter.XYRange(xys)
}

// FromXYs converts any XYer, e.g. plotter.XYs, into Points.
func FromXYs(xys plotter.XYer) Points {
	if xys == nil {
		return nil
	}
	ps := make(Points, xys.Len())
	for i := range ps {
		ps[i].X, ps[i].Y = xys.XY(i)
	}
	return ps
}
