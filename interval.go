package xychart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// minSpan is the smallest span treated as non-degenerate. Spans below it are
// replaced by a unit span when mapping or autoscaling.
const minSpan = 1e-10

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not set.
type Interval struct {
	Min, Max float64
}

// DefaultInterval is the range of a fresh axis and the fallback for data
// free autoscaling.
var DefaultInterval = Interval{0, 10}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Unset edges compare
// equal to unset edges.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Span returns Max-Min, or 1 if that is below minSpan.
func (i Interval) Span() float64 {
	span := i.Max - i.Min
	if span < minSpan {
		return 1
	}
	return span
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Expand widens i by fraction of its span on both sides.
func (i Interval) Expand(fraction float64) Interval {
	ext := fraction * i.Span()
	return Interval{i.Min - ext, i.Max + ext}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// autoscaleMargin is the relative expansion applied to learned data ranges.
const autoscaleMargin = 0.05

// autoscale turns a learned data range into a display range: an unset
// range becomes DefaultInterval, a degenerate one a unit wide window
// centered on the data and everything else is expanded by 5%.
func autoscale(data Interval) Interval {
	switch {
	case !data.IsSet():
		return DefaultInterval
	case data.Max-data.Min < minSpan:
		return Interval{data.Min - 0.5, data.Max + 0.5}
	}
	return data.Expand(autoscaleMargin)
}
