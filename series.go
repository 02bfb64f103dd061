package xychart

import (
	"image/color"

	"github.com/vdobler/xychart/data"
)

// DefaultPenWidth is the line width of newly created series.
const DefaultPenWidth = 2

// Series is a named sequence of points drawn as one polyline.
type Series struct {
	Name     string
	Points   data.Points
	Color    color.Color
	PenWidth float64
	Visible  bool
	AxisID   int // AxisID is the id of the Y-axis the series is scaled by.
}

func (s *Series) clone() Series {
	cp := *s
	cp.Points = s.Points.Clone()
	return cp
}

// AddSeries creates an empty series. A nil col picks the next palette color.
// Adding a name which already exists is logged and ignored.
func (c *Chart) AddSeries(name string, col color.Color) {
	if _, ok := c.series[name]; ok {
		c.logger.Warn("series already exists", "series", name)
		return
	}
	c.addSeries(name, col)
	c.update()
}

func (c *Chart) addSeries(name string, col color.Color) *Series {
	if col == nil {
		col = c.nextColor()
	}
	s := &Series{
		Name:     name,
		Color:    col,
		PenWidth: DefaultPenWidth,
		Visible:  true,
		AxisID:   0,
	}
	c.series[name] = s
	c.order = append(c.order, name)
	if axis, ok := c.axes[0]; ok {
		axis.addMember(name)
	}
	return s
}

// upsert returns the named series, creating it if needed. In strict mode
// unknown names are not created and upsert returns nil.
func (c *Chart) upsert(name string) *Series {
	if s, ok := c.series[name]; ok {
		return s
	}
	if c.strict {
		c.logger.Debug("dropping points for unknown series", "series", name)
		return nil
	}
	return c.addSeries(name, nil)
}

// AddPoint appends (x,y) to the named series. Unless the chart is strict
// the series is created on first use.
func (c *Chart) AddPoint(name string, x, y float64) {
	c.AddDataPoint(name, data.Point{X: x, Y: y})
}

// AddDataPoint is like AddPoint but takes a data.Point.
func (c *Chart) AddDataPoint(name string, p data.Point) {
	s := c.upsert(name)
	if s == nil {
		return
	}
	s.Points = append(s.Points, p)
	c.truncate(s)
	c.rescale(s.AxisID)
	c.update()
}

// AddPoints appends all points to the named series.
func (c *Chart) AddPoints(name string, points data.Points) {
	s := c.upsert(name)
	if s == nil {
		return
	}
	s.Points = append(s.Points, points...)
	c.truncate(s)
	c.rescale(s.AxisID)
	c.update()
}

// SetSeriesData replaces all points of the named series.
func (c *Chart) SetSeriesData(name string, points data.Points) {
	s := c.upsert(name)
	if s == nil {
		return
	}
	s.Points = points.Clone()
	c.truncate(s)
	c.rescale(s.AxisID)
	c.update()
}

// truncate drops the oldest points of s exceeding the per series limit.
// The dropped prefix stays in the backing array until the next append
// reallocates it.
func (c *Chart) truncate(s *Series) {
	if c.maxPoints <= 0 || len(s.Points) <= c.maxPoints {
		return
	}
	excess := len(s.Points) - c.maxPoints
	s.Points = s.Points[excess:]
}

// ClearSeries removes all points but keeps the series.
func (c *Chart) ClearSeries(name string) {
	s, ok := c.series[name]
	if !ok {
		return
	}
	s.Points = nil
	c.rescale(s.AxisID)
	c.update()
}

// ClearAllSeries removes the points of every series.
func (c *Chart) ClearAllSeries() {
	for _, s := range c.series {
		s.Points = nil
	}
	c.rescaleAll()
	c.update()
}

// RemoveSeries deletes the named series and detaches it from its axis.
func (c *Chart) RemoveSeries(name string) {
	s, ok := c.series[name]
	if !ok {
		return
	}
	if axis, ok := c.axes[s.AxisID]; ok {
		axis.removeMember(name)
	}
	delete(c.series, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	c.rescale(s.AxisID)
	c.update()
}

// SetSeriesVisible shows or hides a series. Hidden series take no part in
// drawing, autoscaling and hit testing.
func (c *Chart) SetSeriesVisible(name string, visible bool) {
	s, ok := c.series[name]
	if !ok || s.Visible == visible {
		return
	}
	s.Visible = visible
	c.rescale(s.AxisID)
	c.update()
}

func (c *Chart) SetSeriesColor(name string, col color.Color) {
	if s, ok := c.series[name]; ok && col != nil {
		s.Color = col
		c.update()
	}
}

func (c *Chart) SetSeriesPenWidth(name string, width float64) {
	if s, ok := c.series[name]; ok {
		s.PenWidth = width
		c.update()
	}
}

// SetMaxPointsPerSeries limits the length of every series. Zero or a
// negative n means unlimited. Existing series are truncated right away.
func (c *Chart) SetMaxPointsPerSeries(n int) {
	c.maxPoints = n
	if n <= 0 {
		return
	}
	changed := false
	for _, s := range c.series {
		if len(s.Points) > n {
			c.truncate(s)
			changed = true
		}
	}
	if changed {
		c.rescaleAll()
		c.update()
	}
}

func (c *Chart) MaxPointsPerSeries() int { return c.maxPoints }

// SeriesNames returns the names of all series in creation order.
func (c *Chart) SeriesNames() []string {
	return append([]string(nil), c.order...)
}

func (c *Chart) SeriesCount() int { return len(c.order) }

// Series returns a copy of the named series.
func (c *Chart) Series(name string) (Series, bool) {
	s, ok := c.series[name]
	if !ok {
		return Series{}, false
	}
	return s.clone(), true
}

// SeriesPoints returns a copy of the points of the named series.
func (c *Chart) SeriesPoints(name string) data.Points {
	if s, ok := c.series[name]; ok {
		return s.Points.Clone()
	}
	return nil
}

// eachVisible calls fn for every visible, non-empty series in creation order.
func (c *Chart) eachVisible(fn func(s *Series)) {
	for _, name := range c.order {
		s := c.series[name]
		if !s.Visible || len(s.Points) == 0 {
			continue
		}
		fn(s)
	}
}
