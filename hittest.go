package xychart

import (
	"math"

	"github.com/vdobler/xychart/data"
)

const (
	// HitThreshold is the largest pixel distance at which a point is hit.
	HitThreshold = 10.0

	// HitSampleCap bounds the number of points examined per series.
	// Longer series are sampled with a constant stride.
	HitSampleCap = 2000
)

// Hit describes the point found by FindNearest.
type Hit struct {
	Series   string
	Point    data.Point
	Distance float64 // in pixels
}

// sampleStride returns the index stride which visits at most limit of n points.
func sampleStride(n, limit int) int {
	if n <= limit || limit <= 0 {
		return 1
	}
	return (n + limit - 1) / limit
}

// FindNearest returns the visible point closest to px, provided it is
// nearer than HitThreshold. Each series is mapped with its own Y range.
// Long series are only sampled, so the true nearest point may be missed.
// Of several equally near points the first one found wins, series are
// searched in creation order.
func (c *Chart) FindNearest(px Pixel) (Hit, bool) {
	m := c.Mapper()
	best := Hit{Distance: HitThreshold}
	found := false
	c.eachVisible(func(s *Series) {
		y := c.yRange(s)
		step := sampleStride(len(s.Points), HitSampleCap)
		for i := 0; i < len(s.Points); i += step {
			p := s.Points[i]
			q := m.ToPixel(p, y)
			if d := math.Hypot(q.X-px.X, q.Y-px.Y); d < best.Distance {
				best = Hit{Series: s.Name, Point: p, Distance: d}
				found = true
			}
		}
	})
	if !found {
		return Hit{}, false
	}
	return best, true
}
