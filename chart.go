package xychart

import (
	"log/slog"

	"github.com/vdobler/xychart/data"
	"gonum.org/v1/plot"
)

// Chart holds the complete state of one chart: series, axes, ranges,
// geometry and display settings. A Chart is not safe for concurrent use;
// all calls are expected to come from the host's event loop.
type Chart struct {
	logger *slog.Logger
	strict bool
	ticker plot.Ticker

	series     map[string]*Series
	order      []string // series names in creation order
	colorIndex int
	maxPoints  int

	axes       map[int]*Axis
	nextAxisID int
	multiAxis  bool
	autoGroup  bool

	autoScale bool
	x, y      Interval

	width, height float64
	margins       Margins

	title, xLabel, yLabel string
	showGrid              bool
	showAxisLabels        bool
	crosshairVisible      bool
	dark                  bool

	pointer   Pixel
	pointerIn bool

	onClick  func(name string, p data.Point)
	onUpdate func()
}

// An Option configures a Chart at construction time.
type Option func(*Chart)

// WithLogger sets the logger used for warnings. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Chart) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrict disables implicit series creation: points added to an unknown
// series are dropped.
func WithStrict(strict bool) Option {
	return func(c *Chart) { c.strict = strict }
}

// WithTicker replaces the tick generator of all axes.
func WithTicker(t plot.Ticker) Option {
	return func(c *Chart) {
		if t != nil {
			c.ticker = t
		}
	}
}

// WithSize sets the initial widget size in pixels.
func WithSize(width, height float64) Option {
	return func(c *Chart) { c.width, c.height = width, height }
}

// NewChart returns an empty chart with the default axis 0 on the left.
func NewChart(options ...Option) *Chart {
	c := &Chart{
		logger:           slog.Default(),
		ticker:           EvenTicks{Divisions: 10},
		series:           make(map[string]*Series),
		axes:             make(map[int]*Axis),
		nextAxisID:       1,
		autoScale:        true,
		x:                DefaultInterval,
		y:                DefaultInterval,
		width:            400,
		height:           300,
		margins:          DefaultMargins,
		showGrid:         true,
		showAxisLabels:   true,
		crosshairVisible: true,
	}
	c.axes[0] = newAxis(0, "", Left)
	for _, opt := range options {
		opt(c)
	}
	return c
}

// update notifies the host that the chart needs repainting.
func (c *Chart) update() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// SetUpdateFunc registers the host's repaint request callback.
func (c *Chart) SetUpdateFunc(fn func()) { c.onUpdate = fn }

// OnSeriesClicked registers the callback invoked by Click when a point
// was hit. The callback may modify the chart.
func (c *Chart) OnSeriesClicked(fn func(name string, p data.Point)) { c.onClick = fn }

// ----------------------------------------------------------------------------
// Ranges and autoscaling

// SetXRange fixes the X range and turns off global autoscaling.
func (c *Chart) SetXRange(min, max float64) {
	c.x = Interval{min, max}
	c.autoScale = false
	c.update()
}

// SetYRange fixes the global Y range and turns off global autoscaling.
func (c *Chart) SetYRange(min, max float64) {
	c.y = Interval{min, max}
	c.autoScale = false
	c.update()
}

// SetAutoScale turns global autoscaling on or off.
func (c *Chart) SetAutoScale(enable bool) {
	c.autoScale = enable
	if enable {
		c.calculateAutoScale()
	}
	c.update()
}

func (c *Chart) AutoScale() bool  { return c.autoScale }
func (c *Chart) XRange() Interval { return c.x }
func (c *Chart) YRange() Interval { return c.y }

// calculateAutoScale recomputes the global ranges from all visible series.
func (c *Chart) calculateAutoScale() {
	x, y := unsetInterval(), unsetInterval()
	c.eachVisible(func(s *Series) {
		xmin, xmax, ymin, ymax := data.XYRange(s.Points)
		x.Update(xmin, xmax)
		y.Update(ymin, ymax)
	})
	c.x, c.y = autoscale(x), autoscale(y)
}

// rescale brings the global range and the range of axis id up to date
// after the data of a series on that axis changed.
func (c *Chart) rescale(id int) {
	if c.autoScale {
		c.calculateAutoScale()
	}
	if c.multiAxis {
		c.calculateAxisAutoScale(id)
	}
}

// rescaleAll is like rescale for every axis.
func (c *Chart) rescaleAll() {
	if c.autoScale {
		c.calculateAutoScale()
	}
	if c.multiAxis {
		for id := range c.axes {
			c.calculateAxisAutoScale(id)
		}
	}
}

// yRange returns the Y range s is drawn with: its own axis in multi axis
// mode, the global range otherwise.
func (c *Chart) yRange(s *Series) Interval {
	if c.multiAxis {
		return c.axisRange(s.AxisID)
	}
	return c.y
}

// ----------------------------------------------------------------------------
// Multi axis mode

// SetMultiAxisEnabled switches between one shared Y range and one range
// per axis.
func (c *Chart) SetMultiAxisEnabled(enabled bool) {
	c.multiAxis = enabled
	if enabled && c.autoGroup {
		c.autoGroupSeriesToAxes()
	}
	c.updateMargins()
	c.rescaleAll()
	c.update()
}

func (c *Chart) MultiAxisEnabled() bool { return c.multiAxis }

// SetAutoGroupSeries enables automatic grouping of series onto axes.
// Grouping currently assigns every series to axis 0.
func (c *Chart) SetAutoGroupSeries(enabled bool) {
	c.autoGroup = enabled
	if c.multiAxis && enabled {
		c.autoGroupSeriesToAxes()
	}
	c.update()
}

func (c *Chart) AutoGroupEnabled() bool { return c.autoGroup }

// ----------------------------------------------------------------------------
// Geometry and mapping

// Resize sets the widget size in pixels.
func (c *Chart) Resize(width, height float64) {
	c.width, c.height = width, height
	c.update()
}

func (c *Chart) Size() (width, height float64) { return c.width, c.height }
func (c *Chart) Margins() Margins              { return c.margins }

// Mapper returns the coordinate mapper for the current geometry.
func (c *Chart) Mapper() Mapper {
	return Mapper{Width: c.width, Height: c.height, Margins: c.margins, X: c.x}
}

// PlotRect returns the plot area in widget pixels.
func (c *Chart) PlotRect() Rect { return c.Mapper().PlotRect() }

// ToPixel maps p with the global Y range.
func (c *Chart) ToPixel(p data.Point) Pixel { return c.Mapper().ToPixel(p, c.y) }

// ToData maps px with the global Y range.
func (c *Chart) ToData(px Pixel) data.Point { return c.Mapper().ToData(px, c.y) }

// ToPixelOnAxis maps p with the range of the given axis.
func (c *Chart) ToPixelOnAxis(p data.Point, id int) Pixel {
	return c.Mapper().ToPixel(p, c.axisRange(id))
}

// ToDataOnAxis maps px with the range of the given axis.
func (c *Chart) ToDataOnAxis(px Pixel, id int) data.Point {
	return c.Mapper().ToData(px, c.axisRange(id))
}

// ----------------------------------------------------------------------------
// Display settings

func (c *Chart) SetGridVisible(v bool)       { c.showGrid = v; c.update() }
func (c *Chart) SetAxisLabelsVisible(v bool) { c.showAxisLabels = v; c.update() }
func (c *Chart) SetCrosshairVisible(v bool)  { c.crosshairVisible = v; c.update() }
func (c *Chart) SetDarkMode(v bool)          { c.dark = v; c.update() }
func (c *Chart) SetTitle(s string)           { c.title = s; c.update() }
func (c *Chart) SetXLabel(s string)          { c.xLabel = s; c.update() }
func (c *Chart) SetYLabel(s string)          { c.yLabel = s; c.update() }

func (c *Chart) GridVisible() bool      { return c.showGrid }
func (c *Chart) CrosshairVisible() bool { return c.crosshairVisible }
func (c *Chart) DarkMode() bool         { return c.dark }

// ----------------------------------------------------------------------------
// Pointer input

// MouseMove records the pointer position for the crosshair.
func (c *Chart) MouseMove(px Pixel) {
	if c.pointerIn && c.pointer == px {
		return
	}
	c.pointer, c.pointerIn = px, true
	c.update()
}

// MouseLeave hides the crosshair.
func (c *Chart) MouseLeave() {
	c.pointerIn = false
	c.update()
}

// Click hit tests px and reports the nearest point to the callback
// registered with OnSeriesClicked.
func (c *Chart) Click(px Pixel) (Hit, bool) {
	hit, ok := c.FindNearest(px)
	if ok && c.onClick != nil {
		c.onClick(hit.Series, hit.Point)
	}
	return hit, ok
}
