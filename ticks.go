package xychart

import (
	"fmt"

	"gonum.org/v1/plot"
)

// EvenTicks is a plot.Ticker which divides a range into equally sized parts
// and labels every division with one decimal.
type EvenTicks struct {
	Divisions int
}

var _ plot.Ticker = EvenTicks{}

// Ticks implements plot.Ticker.
func (t EvenTicks) Ticks(min, max float64) []plot.Tick {
	n := t.Divisions
	if n <= 0 {
		n = 10
	}
	ticks := make([]plot.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := min + (max-min)*float64(i)/float64(n)
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	return ticks
}

// ticksIn returns the ticks of t which fall into r. A degenerate r is
// widened to unit span like in the coordinate mapping.
func ticksIn(t plot.Ticker, r Interval) []plot.Tick {
	if r.Max-r.Min < minSpan {
		r.Max = r.Min + r.Span()
	}
	tol := 1e-9 * r.Span()
	var ticks []plot.Tick
	for _, tick := range t.Ticks(r.Min, r.Max) {
		if tick.Value < r.Min-tol || tick.Value > r.Max+tol {
			continue
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
