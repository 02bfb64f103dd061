package xychart

import (
	"fmt"
	"image/color"

	"github.com/vdobler/xychart/data"
	"gonum.org/v1/plot"
)

// MarkerLimit is the largest series length for which point markers are drawn.
const MarkerLimit = 500

// Legend geometry in pixels.
const (
	LegendWidth      = 200
	LegendLineHeight = 20
)

// A Painter draws the layers of a Frame. Chart.Paint calls the methods in
// a fixed order, later layers cover earlier ones.
type Painter interface {
	Background(f *Frame)
	Title(f *Frame)
	Grid(f *Frame)
	Axes(f *Frame)
	Series(f *Frame)
	Legend(f *Frame)
	Crosshair(f *Frame)
}

// Line is a straight line segment in widget space.
type Line struct {
	From, To Pixel
}

// TickMark is a tick on an axis. Minor ticks have an empty Label.
type TickMark struct {
	At    Pixel
	Label string
}

// AxisFrame is an axis ready for drawing.
type AxisFrame struct {
	ID    int
	Label string
	Side  Side
	Line  Line
	Color color.Color // nil means the theme's foreground color
	Ticks []TickMark
}

// SeriesFrame is a series mapped to widget space.
type SeriesFrame struct {
	Name    string
	Color   color.Color
	Width   float64
	Path    []Pixel
	Markers bool
}

// LegendEntry describes one line of the legend.
type LegendEntry struct {
	Name  string
	Color color.Color
	Width float64
}

// CrosshairFrame holds the pointer lines and the tooltip text.
type CrosshairFrame struct {
	At                   Pixel
	Vertical, Horizontal Line
	Lines                []string
}

// Frame is a snapshot of everything needed to draw the chart once.
// It shares no mutable state with the Chart.
type Frame struct {
	Width, Height float64
	Plot          Rect
	Dark          bool

	Title, XLabel, YLabel string
	AxisLabels            bool
	MultiAxis             bool

	Grid      []Line
	XAxis     AxisFrame
	YAxes     []AxisFrame
	Series    []SeriesFrame
	LegendBox Rect
	Legend    []LegendEntry
	Crosshair *CrosshairFrame
}

// Paint draws the chart with p: background, title, grid, axes, series,
// legend and crosshair. Layers without content are skipped.
func (c *Chart) Paint(p Painter) {
	f := c.Frame()
	p.Background(f)
	if f.Title != "" {
		p.Title(f)
	}
	if c.showGrid {
		p.Grid(f)
	}
	p.Axes(f)
	p.Series(f)
	if len(c.order) > 0 {
		p.Legend(f)
	}
	if f.Crosshair != nil {
		p.Crosshair(f)
	}
}

// Frame computes the widget space geometry of the current chart state.
func (c *Chart) Frame() *Frame {
	m := c.Mapper()
	f := &Frame{
		Width:      c.width,
		Height:     c.height,
		Plot:       m.PlotRect(),
		Dark:       c.dark,
		Title:      c.title,
		XLabel:     c.xLabel,
		YLabel:     c.yLabel,
		AxisLabels: c.showAxisLabels,
		MultiAxis:  c.multiAxis,
	}

	xticks := ticksIn(c.ticker, c.x)
	if c.showGrid {
		gridY := c.y
		if c.multiAxis {
			gridY = c.axisRange(0)
		}
		f.Grid = c.gridLines(m, xticks, gridY)
	}

	f.XAxis = AxisFrame{
		Label: c.xLabel,
		Line:  Line{Pixel{f.Plot.Min.X, f.Plot.Max.Y}, f.Plot.Max},
	}
	for _, tick := range xticks {
		px := m.ToPixel(data.Point{X: tick.Value}, c.y)
		f.XAxis.Ticks = append(f.XAxis.Ticks, TickMark{Pixel{px.X, f.Plot.Max.Y}, tick.Label})
	}

	if c.multiAxis {
		for _, pl := range c.AxisLayout() {
			axis := c.axes[pl.ID]
			f.YAxes = append(f.YAxes, c.yAxisFrame(m, pl.X, axis.Range, AxisFrame{
				ID: axis.ID, Label: axis.Label, Side: axis.Side, Color: axis.Color,
			}))
		}
	} else {
		f.YAxes = []AxisFrame{c.yAxisFrame(m, f.Plot.Min.X, c.y, AxisFrame{Label: c.yLabel})}
	}

	for _, name := range c.order {
		s := c.series[name]
		if !s.Visible {
			continue
		}
		f.Legend = append(f.Legend, LegendEntry{Name: s.Name, Color: s.Color, Width: s.PenWidth})
		if len(s.Points) == 0 {
			continue
		}
		y := c.yRange(s)
		path := make([]Pixel, len(s.Points))
		for i, p := range s.Points {
			path[i] = m.ToPixel(p, y)
		}
		f.Series = append(f.Series, SeriesFrame{
			Name:    s.Name,
			Color:   s.Color,
			Width:   s.PenWidth,
			Path:    path,
			Markers: len(s.Points) <= MarkerLimit,
		})
	}
	f.LegendBox = Rect{
		Min: Pixel{f.Plot.Max.X - LegendWidth - 5, f.Plot.Min.Y + 5},
		Max: Pixel{f.Plot.Max.X - 5, f.Plot.Min.Y + 10 + float64(len(f.Legend)*LegendLineHeight)},
	}

	if c.crosshairVisible && c.pointerIn && f.Plot.Contains(c.pointer) {
		f.Crosshair = c.crosshair(m, f.Plot)
	}
	return f
}

// gridLines returns one vertical line per X tick and one horizontal line
// per tick of the Y range yr.
func (c *Chart) gridLines(m Mapper, xticks []plot.Tick, yr Interval) []Line {
	r := m.PlotRect()
	var lines []Line
	for _, tick := range xticks {
		x := m.ToPixel(data.Point{X: tick.Value}, c.y).X
		lines = append(lines, Line{Pixel{x, r.Min.Y}, Pixel{x, r.Max.Y}})
	}
	for _, tick := range ticksIn(c.ticker, yr) {
		y := m.ToPixel(data.Point{Y: tick.Value}, yr).Y
		lines = append(lines, Line{Pixel{r.Min.X, y}, Pixel{r.Max.X, y}})
	}
	return lines
}

func (c *Chart) yAxisFrame(m Mapper, x float64, r Interval, af AxisFrame) AxisFrame {
	area := m.PlotRect()
	af.Line = Line{Pixel{x, area.Min.Y}, Pixel{x, area.Max.Y}}
	for _, tick := range ticksIn(c.ticker, r) {
		y := m.ToPixel(data.Point{Y: tick.Value}, r).Y
		af.Ticks = append(af.Ticks, TickMark{Pixel{x, y}, tick.Label})
	}
	return af
}

func (c *Chart) crosshair(m Mapper, area Rect) *CrosshairFrame {
	at := c.pointer
	ch := &CrosshairFrame{
		At:         at,
		Vertical:   Line{Pixel{at.X, area.Min.Y}, Pixel{at.X, area.Max.Y}},
		Horizontal: Line{Pixel{area.Min.X, at.Y}, Pixel{area.Max.X, at.Y}},
	}
	ch.Lines = append(ch.Lines, fmt.Sprintf("X: %.2f", m.ToData(at, c.y).X))
	for _, name := range c.order {
		s := c.series[name]
		if !s.Visible {
			continue
		}
		y := m.ToData(at, c.yRange(s)).Y
		ch.Lines = append(ch.Lines, fmt.Sprintf("%s: %.2f", s.Name, y))
	}
	return ch
}

// PlaceTooltip positions a w×h tooltip box near the pointer at. The box
// prefers the upper right of the pointer and flips to the left or below
// when it would leave the plot area.
func PlaceTooltip(at Pixel, w, h float64, area Rect) Rect {
	x, y := at.X+10, at.Y-10-h
	if x+w > area.Max.X {
		x = at.X - w - 10
	}
	if y < area.Min.Y {
		y = at.Y + 10
	}
	return Rect{Min: Pixel{x, y}, Max: Pixel{x + w, y + h}}
}
