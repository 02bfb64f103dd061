package xychart

import (
	"image/color"
	"sort"

	"github.com/vdobler/xychart/data"
)

// Axis is a vertical scale shared by one or more series.
type Axis struct {
	ID        int
	Label     string
	Range     Interval
	Side      Side
	AutoScale bool
	Color     color.Color // Color of the series assigned last.
	Series    []string    // Series lists the member series in assignment order.
}

func newAxis(id int, label string, side Side) *Axis {
	return &Axis{
		ID:        id,
		Label:     label,
		Range:     DefaultInterval,
		Side:      side,
		AutoScale: true,
		Color:     color.Black,
	}
}

func (a *Axis) addMember(name string) {
	for _, n := range a.Series {
		if n == name {
			return
		}
	}
	a.Series = append(a.Series, name)
}

func (a *Axis) removeMember(name string) {
	kept := a.Series[:0:0]
	for _, n := range a.Series {
		if n != name {
			kept = append(kept, n)
		}
	}
	a.Series = kept
}

// Layout constants for stacked Y-axes, in pixels.
const (
	axisSpacing     = 40 // distance between neighbouring axes on one side
	axisLabelWidth  = 40 // room left of a left axis for its value labels
	axisValueWidth  = 50 // room right of a right axis for its value labels
	minEdgePadding  = 35
	baseLeftMargin  = 35
	baseRightMargin = 60
)

// DefaultMargins are the plot margins in single axis mode.
var DefaultMargins = Margins{Left: 60, Right: 20, Top: 40, Bottom: 50}

// CreateYAxis adds a new Y-axis. Existing ids are left untouched.
func (c *Chart) CreateYAxis(id int, label string, side Side) {
	if _, ok := c.axes[id]; ok {
		return
	}
	c.axes[id] = newAxis(id, label, side)
	if id >= c.nextAxisID {
		c.nextAxisID = id + 1
	}
	c.updateMargins()
	c.update()
}

// SetAxisLabel changes the title of an existing axis.
func (c *Chart) SetAxisLabel(id int, label string) {
	if axis, ok := c.axes[id]; ok {
		axis.Label = label
		c.update()
	}
}

// RemoveYAxis deletes an axis and moves its series to axis 0.
// Axis 0 cannot be removed.
func (c *Chart) RemoveYAxis(id int) {
	axis, ok := c.axes[id]
	if id == 0 || !ok {
		return
	}
	for _, name := range axis.Series {
		if s, ok := c.series[name]; ok {
			s.AxisID = 0
			c.axes[0].addMember(name)
		}
	}
	delete(c.axes, id)
	c.calculateAxisAutoScale(0)
	c.updateMargins()
	c.update()
}

// NextAxisID returns an id larger than every axis id created so far.
func (c *Chart) NextAxisID() int { return c.nextAxisID }

// AssignSeriesToAxis moves a series to the given axis. The axis adopts the
// color of the series and is rescaled if it autoscales.
func (c *Chart) AssignSeriesToAxis(name string, id int) {
	s, ok := c.series[name]
	if !ok {
		return
	}
	if old, ok := c.axes[s.AxisID]; ok {
		old.removeMember(name)
		c.calculateAxisAutoScale(old.ID)
	}
	s.AxisID = id
	if axis, ok := c.axes[id]; ok {
		axis.addMember(name)
		axis.Color = s.Color
		c.calculateAxisAutoScale(id)
	}
	c.update()
}

// AxisForSeries returns the axis id of the named series, 0 if unknown.
func (c *Chart) AxisForSeries(name string) int {
	if s, ok := c.series[name]; ok {
		return s.AxisID
	}
	return 0
}

// SetAxisRange fixes the range of an axis and turns off its autoscaling.
func (c *Chart) SetAxisRange(id int, min, max float64) {
	axis, ok := c.axes[id]
	if !ok {
		return
	}
	axis.Range = Interval{min, max}
	axis.AutoScale = false
	c.update()
}

// SetAxisAutoScale turns autoscaling of an axis on or off. Turning it on
// rescales the axis immediately.
func (c *Chart) SetAxisAutoScale(id int, enabled bool) {
	axis, ok := c.axes[id]
	if !ok {
		return
	}
	axis.AutoScale = enabled
	c.calculateAxisAutoScale(id)
	c.update()
}

// Axis returns a copy of the axis with the given id.
func (c *Chart) Axis(id int) (Axis, bool) {
	axis, ok := c.axes[id]
	if !ok {
		return Axis{}, false
	}
	cp := *axis
	cp.Series = append([]string(nil), axis.Series...)
	return cp, true
}

// AxisIDs returns the ids of all axes in ascending order.
func (c *Chart) AxisIDs() []int {
	ids := make([]int, 0, len(c.axes))
	for id := range c.axes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// axisRange returns the range of axis id or DefaultInterval for unknown ids.
func (c *Chart) axisRange(id int) Interval {
	if axis, ok := c.axes[id]; ok {
		return axis.Range
	}
	return DefaultInterval
}

// calculateAxisAutoScale recomputes the range of an autoscaling axis from
// the y values of its visible member series.
func (c *Chart) calculateAxisAutoScale(id int) {
	axis, ok := c.axes[id]
	if !ok || !axis.AutoScale {
		return
	}
	y := unsetInterval()
	for _, name := range axis.Series {
		s, ok := c.series[name]
		if !ok || !s.Visible || len(s.Points) == 0 {
			continue
		}
		_, _, ymin, ymax := data.XYRange(s.Points)
		y.Update(ymin, ymax)
	}
	axis.Range = autoscale(y)
}

// autoGroupSeriesToAxes distributes the series over the axes.
// No clustering is done: every series goes to axis 0.
func (c *Chart) autoGroupSeriesToAxes() {
	if !c.multiAxis || len(c.order) == 0 {
		return
	}
	for _, axis := range c.axes {
		axis.Series = nil
	}
	for _, name := range c.order {
		c.series[name].AxisID = 0
		c.axes[0].addMember(name)
	}
	for id := range c.axes {
		c.calculateAxisAutoScale(id)
	}
}

func (c *Chart) countAxesOnSide(side Side) int {
	n := 0
	for _, axis := range c.axes {
		if axis.Side == side {
			n++
		}
	}
	return n
}

// updateMargins makes room for all stacked axes in multi axis mode.
func (c *Chart) updateMargins() {
	if !c.multiAxis {
		c.margins = DefaultMargins
		return
	}
	c.margins.Left = baseLeftMargin + float64(c.countAxesOnSide(Left))*axisSpacing
	c.margins.Right = baseRightMargin + float64(c.countAxesOnSide(Right))*axisSpacing
	c.margins.Top = DefaultMargins.Top
	c.margins.Bottom = DefaultMargins.Bottom
}

// AxisPlacement is the horizontal position of one Y-axis.
type AxisPlacement struct {
	ID   int
	Side Side
	Slot int     // Slot counts the axes between this one and the plot area.
	X    float64 // X is the pixel column of the axis line.
}

// AxisLayout stacks the axes of each side outward from the plot area in
// ascending id order. Positions are clamped so that value labels stay
// inside the widget.
func (c *Chart) AxisLayout() []AxisPlacement {
	var placements []AxisPlacement
	slots := map[Side]int{}
	for _, id := range c.AxisIDs() {
		axis := c.axes[id]
		slot := slots[axis.Side]
		slots[axis.Side]++

		var x float64
		if axis.Side == Right {
			x = c.width - c.margins.Right + float64(slot)*axisSpacing
			if limit := c.width - minEdgePadding; x+axisValueWidth > limit {
				x = limit - axisValueWidth
			}
		} else {
			x = c.margins.Left - float64(slot)*axisSpacing
			if x-axisLabelWidth < minEdgePadding {
				x = minEdgePadding + axisLabelWidth
			}
		}
		placements = append(placements, AxisPlacement{ID: id, Side: axis.Side, Slot: slot, X: x})
	}
	return placements
}
