package xychart

import (
	"math"
	"strconv"
	"testing"

	"github.com/vdobler/xychart/data"
	"gonum.org/v1/plot"
)

func TestTwoAxesShareTheTopPixel(t *testing.T) {
	c := NewChart(WithSize(800, 600))
	c.SetMultiAxisEnabled(true)
	c.CreateYAxis(1, "big", Right)
	for i := 0; i <= 10; i++ {
		x := float64(i)
		c.AddPoint("small", x, x)
		c.AddPoint("big", x, 100*x)
	}
	c.AssignSeriesToAxis("big", 1)

	a0, _ := c.Axis(0)
	a1, _ := c.Axis(1)
	if !equalInterval(a0.Range, Interval{-0.5, 10.5}) {
		t.Errorf("axis 0 range = %s, want [-0.5:10.5]", a0.Range)
	}
	if !equalInterval(a1.Range, Interval{-50, 1050}) {
		t.Errorf("axis 1 range = %s, want [-50:1050]", a1.Range)
	}

	top0 := c.ToPixelOnAxis(data.Point{X: 5, Y: 10}, 0)
	top1 := c.ToPixelOnAxis(data.Point{X: 5, Y: 1000}, 1)
	if math.Abs(top0.Y-top1.Y) > 1e-6 {
		t.Errorf("maxima drawn at y=%g and y=%g", top0.Y, top1.Y)
	}

	f := c.Frame()
	if len(f.Series) != 2 {
		t.Fatalf("%d series in frame", len(f.Series))
	}
	last0 := f.Series[0].Path[10]
	last1 := f.Series[1].Path[10]
	if math.Abs(last0.Y-last1.Y) > 1e-6 {
		t.Errorf("series maxima at %v and %v", last0, last1)
	}
}

func TestGlobalMappingMatchesMapper(t *testing.T) {
	c := NewChart(WithSize(640, 480))
	c.AddPoints("a", data.Points{{X: -3, Y: 7}, {X: 12, Y: -40}})
	m := c.Mapper()
	for _, p := range []data.Point{{X: 0, Y: 0}, {X: -3, Y: 7}, {X: 12, Y: -40}} {
		if got, want := c.ToPixel(p), m.ToPixel(p, c.YRange()); got != want {
			t.Errorf("ToPixel(%v) = %v, want %v", p, got, want)
		}
		if got, want := c.ToData(c.ToPixel(p)), p; !equal64(got.X, want.X) || !equal64(got.Y, want.Y) {
			t.Errorf("ToData(ToPixel(%v)) = %v", p, got)
		}
	}
}

var axisAgreementPoints = []data.Point{
	{X: 0, Y: 0},
	{X: -3, Y: 7},
	{X: 12, Y: -40},
	{X: 4.5, Y: 123.25},
	{X: 1e3, Y: -1e3},
}

func TestGlobalAndAxisMappingAgree(t *testing.T) {
	c := NewChart(WithSize(640, 480))
	c.AddPoints("a", data.Points{{X: -3, Y: 7}, {X: 12, Y: -40}})
	y := c.YRange()
	c.SetAxisRange(0, y.Min, y.Max)

	for i, p := range axisAgreementPoints {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got, want := c.ToPixelOnAxis(p, 0), c.ToPixel(p); got != want {
				t.Errorf("ToPixelOnAxis(%v, 0) = %v, want %v", p, got, want)
			}
			px := c.ToPixel(p)
			if got, want := c.ToDataOnAxis(px, 0), c.ToData(px); got != want {
				t.Errorf("ToDataOnAxis(%v, 0) = %v, want %v", px, got, want)
			}
		})
	}
}

func TestAxisRoundTrip(t *testing.T) {
	c := NewChart(WithSize(800, 600))
	c.SetXRange(-5, 15)
	c.SetMultiAxisEnabled(true)
	c.CreateYAxis(1, "big", Right)
	c.SetAxisRange(1, -1e6, 1e6)

	for i, p := range axisAgreementPoints {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			back := c.ToDataOnAxis(c.ToPixelOnAxis(p, 1), 1)
			if !equal64(back.X, p.X) || math.Abs(back.Y-p.Y) > 1e-9*2e6 {
				t.Errorf("ToDataOnAxis(ToPixelOnAxis(%v)) = %v", p, back)
			}
		})
	}
}

func TestGlobalAutoscale(t *testing.T) {
	c := NewChart()
	if !equalInterval(c.XRange(), DefaultInterval) || !equalInterval(c.YRange(), DefaultInterval) {
		t.Errorf("empty chart ranges %s %s", c.XRange(), c.YRange())
	}
	c.AddPoints("a", data.Points{{X: 0, Y: 0}, {X: 1000, Y: 10}})
	if !equalInterval(c.XRange(), Interval{-50, 1050}) {
		t.Errorf("XRange() = %s", c.XRange())
	}
	if !equalInterval(c.YRange(), Interval{-0.5, 10.5}) {
		t.Errorf("YRange() = %s", c.YRange())
	}

	c.SetXRange(0, 1)
	c.AddPoint("a", 5000, 5000)
	if c.AutoScale() || !equalInterval(c.XRange(), Interval{0, 1}) {
		t.Errorf("fixed range changed: auto=%t x=%s", c.AutoScale(), c.XRange())
	}

	c.SetAutoScale(true)
	if !equalInterval(c.XRange(), Interval{-250, 5250}) {
		t.Errorf("XRange() after re-enabling = %s", c.XRange())
	}

	c.ClearAllSeries()
	if !equalInterval(c.XRange(), DefaultInterval) {
		t.Errorf("XRange() after clear = %s", c.XRange())
	}
}

func TestMouseMoveRequestsUpdateOnChange(t *testing.T) {
	c := NewChart()
	updates := 0
	c.SetUpdateFunc(func() { updates++ })

	c.MouseMove(Pixel{10, 10})
	c.MouseMove(Pixel{10, 10})
	c.MouseMove(Pixel{11, 10})
	if updates != 2 {
		t.Errorf("%d updates, want 2", updates)
	}
	c.MouseLeave()
	c.MouseMove(Pixel{11, 10})
	if updates != 4 {
		t.Errorf("%d updates, want 4", updates)
	}
}

func TestResize(t *testing.T) {
	c := NewChart()
	c.Resize(1024, 768)
	if w, h := c.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %g, %g", w, h)
	}
	if r := c.PlotRect(); r.Max != (Pixel{1024 - 20, 768 - 50}) {
		t.Errorf("PlotRect() = %v", r)
	}
}

var evenTicksTests = []struct {
	div      int
	min, max float64
	labels   []string
}{
	{5, 0, 10, []string{"0.0", "2.0", "4.0", "6.0", "8.0", "10.0"}},
	{2, -1, 1, []string{"-1.0", "0.0", "1.0"}},
	{0, 0, 10, []string{"0.0", "1.0", "2.0", "3.0", "4.0", "5.0", "6.0", "7.0", "8.0", "9.0", "10.0"}},
}

func TestEvenTicks(t *testing.T) {
	for i, tc := range evenTicksTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ticks := EvenTicks{Divisions: tc.div}.Ticks(tc.min, tc.max)
			if len(ticks) != len(tc.labels) {
				t.Fatalf("got %d ticks, want %d", len(ticks), len(tc.labels))
			}
			for j, tick := range ticks {
				if tick.Label != tc.labels[j] {
					t.Errorf("tick %d label = %q, want %q", j, tick.Label, tc.labels[j])
				}
			}
		})
	}
}

func TestTicksInDegenerateRange(t *testing.T) {
	for _, ticker := range []plot.Ticker{EvenTicks{Divisions: 10}, plot.DefaultTicks{}} {
		ticks := ticksIn(ticker, Interval{3, 3})
		if len(ticks) == 0 {
			t.Errorf("%T: no ticks", ticker)
		}
		for _, tick := range ticks {
			if tick.Value < 3-1e-9 || tick.Value > 4+1e-9 {
				t.Errorf("%T: tick %g outside [3,4]", ticker, tick.Value)
			}
		}
	}
}

func TestWithTicker(t *testing.T) {
	c := NewChart(WithTicker(plot.DefaultTicks{}), WithSize(800, 600))
	f := c.Frame()
	for _, tick := range f.XAxis.Ticks {
		if tick.At.X < f.Plot.Min.X-1e-6 || tick.At.X > f.Plot.Max.X+1e-6 {
			t.Errorf("x tick %q at %v outside plot", tick.Label, tick.At)
		}
	}
}
