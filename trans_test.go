package xychart

import (
	"fmt"
	"math"
	"testing"

	"github.com/vdobler/xychart/data"
)

var linearTests = []struct {
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{10, 20, 10, 20, 12, 12},
	{10, 20, 100, 200, 12, 120},
	{3, 5, 0, 1, 3, 0},
	{3, 5, 0, 1, 4, 0.5},
	{3, 5, 0, 1, 5, 1},
	{3, 5, 100, 0, 4, 50},
	{7, 7, 0, 10, 7.5, 5}, // degenerate: unit span
}

func TestLinear(t *testing.T) {
	for i, tc := range linearTests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			if got := linear(from, to, tc.x); !equal64(got, tc.want) {
				t.Errorf("linear(%v,%v,%f) = %f, want %f",
					from, to, tc.x, got, tc.want)
			}
		})
	}
}

func testMapper() Mapper {
	return Mapper{
		Width:   800,
		Height:  600,
		Margins: Margins{Left: 60, Right: 20, Top: 40, Bottom: 50},
		X:       Interval{-5, 15},
	}
}

func TestMapperCorners(t *testing.T) {
	m := testMapper()
	y := Interval{0, 100}
	r := m.PlotRect()

	if got := m.ToPixel(data.Point{X: -5, Y: 0}, y); got != (Pixel{r.Min.X, r.Max.Y}) {
		t.Errorf("bottom left = %v, want %v", got, Pixel{r.Min.X, r.Max.Y})
	}
	if got := m.ToPixel(data.Point{X: 15, Y: 100}, y); got != (Pixel{r.Max.X, r.Min.Y}) {
		t.Errorf("top right = %v, want %v", got, Pixel{r.Max.X, r.Min.Y})
	}
}

func TestMapperRoundTrip(t *testing.T) {
	m := testMapper()
	ranges := []Interval{{0, 100}, {-1e9, 1e9}, {-1.2, 1.2}, {3, 3}}
	points := []data.Point{{X: 0, Y: 0}, {X: -5, Y: 50}, {X: 14.2, Y: -0.7}, {X: 1e3, Y: 1e8}, {X: 3, Y: 3}}

	for _, y := range ranges {
		for _, p := range points {
			px := m.ToPixel(p, y)
			back := m.ToData(px, y)
			tol := 1e-9 * math.Max(1, math.Max(y.Span(), math.Abs(p.Y)))
			if math.Abs(back.X-p.X) > 1e-9*math.Max(1, math.Abs(p.X)) || math.Abs(back.Y-p.Y) > tol {
				t.Errorf("round trip %v on %v: %v -> %v", p, y, px, back)
			}
		}
		for _, px := range []Pixel{{60, 40}, {400, 300}, {780, 550}, {0, 0}} {
			back := m.ToPixel(m.ToData(px, y), y)
			if math.Abs(back.X-px.X) > 1e-6 || math.Abs(back.Y-px.Y) > 1e-6 {
				t.Errorf("pixel round trip %v on %v: got %v", px, y, back)
			}
		}
	}
}

func TestMapperDegenerateXRange(t *testing.T) {
	m := testMapper()
	m.X = Interval{2, 2}
	px := m.ToPixel(data.Point{X: 2.5, Y: 0}, Interval{0, 1})
	want := m.Margins.Left + 0.5*m.PlotRect().Width()
	if math.IsInf(px.X, 0) || math.IsNaN(px.X) || !equal64(px.X, want) {
		t.Errorf("degenerate X range mapped to %v, want x=%g", px, want)
	}
}
