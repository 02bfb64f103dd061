package data

import (
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot/plotter"
)

var xyRangeTests = []struct {
	ps                     Points
	xmin, xmax, ymin, ymax float64
}{
	{Points{{1, 2}}, 1, 1, 2, 2},
	{Points{{1, 2}, {-3, 7}, {5, 0}}, -3, 5, 0, 7},
	{Points{{0, -1}, {0, -1}}, 0, 0, -1, -1},
}

func TestXYRange(t *testing.T) {
	for i, tc := range xyRangeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			xmin, xmax, ymin, ymax := XYRange(tc.ps)
			if xmin != tc.xmin || xmax != tc.xmax || ymin != tc.ymin || ymax != tc.ymax {
				t.Errorf("XYRange(%v) = %g %g %g %g, want %g %g %g %g",
					tc.ps, xmin, xmax, ymin, ymax, tc.xmin, tc.xmax, tc.ymin, tc.ymax)
			}
		})
	}
}

func TestXYRangeEmpty(t *testing.T) {
	xmin, xmax, ymin, ymax := XYRange(Points{})
	for _, v := range []float64{xmin, xmax, ymin, ymax} {
		if !math.IsNaN(v) {
			t.Errorf("XYRange(empty) = %g %g %g %g, want all NaN", xmin, xmax, ymin, ymax)
			break
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ps := Points{{1, 1}, {2, 2}}
	c := ps.Clone()
	c[0].X = 99
	if ps[0].X != 1 {
		t.Errorf("modifying clone changed original: %v", ps)
	}
	if Points(nil).Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

func TestFromXYs(t *testing.T) {
	xys := plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}
	got := FromXYs(xys)
	if len(got) != 2 || got[1] != (Point{3, 4}) {
		t.Errorf("FromXYs(%v) = %v", xys, got)
	}
}
