// Package geom draws xychart frames on gonum/plot canvases.
//
// A Painter implements xychart.Painter on a draw.Canvas, so the same chart
// can be rendered to any vg backend, e.g. PNG via vgimg or SVG via vgsvg.
// Widget pixels are scaled to fill the canvas rectangle.
package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/xychart"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Painter draws xychart frames on Canvas. Frames with Dark set are drawn
// with the Dark style, all others with Light.
type Painter struct {
	Canvas draw.Canvas
	Light  Style
	Dark   Style
}

var _ xychart.Painter = (*Painter)(nil)

// NewPainter returns a Painter with the default light and dark styles.
func NewPainter(c draw.Canvas) *Painter {
	return &Painter{
		Canvas: c,
		Light:  DefaultStyle(10),
		Dark:   DarkStyle(10),
	}
}

func (p *Painter) style(f *xychart.Frame) *Style {
	if f.Dark {
		return &p.Dark
	}
	return &p.Light
}

func (p *Painter) transform(f *xychart.Frame) transform {
	return newTransform(f.Width, f.Height, p.Canvas.Rectangle)
}

// plotCanvas returns a canvas restricted to the plot area of f.
func (p *Painter) plotCanvas(f *xychart.Frame) draw.Canvas {
	c := p.Canvas
	c.Rectangle = p.transform(f).rect(f.Plot)
	return c
}

func (p *Painter) fillRect(col color.Color, r vg.Rectangle) {
	if col == nil {
		return
	}
	p.Canvas.SetColor(col)
	p.Canvas.Fill(r.Path())
}

func (p *Painter) strokeRect(sty draw.LineStyle, r vg.Rectangle) {
	if sty.Color == nil || sty.Width == 0 {
		return
	}
	p.Canvas.SetLineStyle(sty)
	p.Canvas.Stroke(r.Path())
}

func (p *Painter) line(sty draw.LineStyle, t transform, l xychart.Line) {
	from, to := t.point(l.From), t.point(l.To)
	p.Canvas.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)
}

func (p *Painter) Background(f *xychart.Frame) {
	sty := p.style(f)
	p.fillRect(sty.Background, p.Canvas.Rectangle)
	p.fillRect(sty.PlotBackground, p.transform(f).rect(f.Plot))
}

func (p *Painter) Title(f *xychart.Frame) {
	t := p.transform(f)
	p.Canvas.FillText(p.style(f).Title, t.point(xychart.Pixel{X: f.Width / 2, Y: 8}), f.Title)
}

func (p *Painter) Grid(f *xychart.Frame) {
	sty := p.style(f).Grid
	t := p.transform(f)
	for _, l := range f.Grid {
		p.line(sty, t, l)
	}
}

// Axes draws the X axis and all Y axes with their ticks, tick labels and,
// if enabled, their titles.
func (p *Painter) Axes(f *xychart.Frame) {
	sty := p.style(f)
	t := p.transform(f)

	p.line(sty.Axis.Line, t, f.XAxis.Line)
	label := sty.Axis.TickLabel
	label.XAlign, label.YAlign = draw.XCenter, draw.YTop
	for _, tick := range f.XAxis.Ticks {
		at := t.point(tick.At)
		p.Canvas.StrokeLine2(sty.Axis.Tick.LineStyle, at.X, at.Y, at.X, at.Y-sty.Axis.Tick.Length)
		p.Canvas.FillText(label, vg.Point{X: at.X, Y: at.Y - sty.Axis.Tick.Length}, tick.Label)
	}
	if f.AxisLabels && f.XLabel != "" {
		p.Canvas.FillText(sty.Axis.Title,
			t.point(xychart.Pixel{X: (f.Plot.Min.X + f.Plot.Max.X) / 2, Y: f.Height - 4}), f.XLabel)
	}

	for _, axis := range f.YAxes {
		p.yAxis(sty, t, f, axis)
	}
}

func (p *Painter) yAxis(sty *Style, t transform, f *xychart.Frame, axis xychart.AxisFrame) {
	line := sty.Axis.Line
	tick := sty.Axis.Tick.LineStyle
	label := sty.Axis.TickLabel
	if axis.Color != nil && axis.Color != color.Color(color.Black) {
		line.Color, tick.Color, label.Color = axis.Color, axis.Color, axis.Color
	}
	p.line(line, t, axis.Line)

	length := sty.Axis.Tick.Length
	dir := -1.0
	label.XAlign, label.YAlign = draw.XRight, draw.YCenter
	if axis.Side == xychart.Right {
		dir = 1
		label.XAlign = draw.XLeft
	}
	for _, tm := range axis.Ticks {
		at := t.point(tm.At)
		end := at.X + vg.Length(dir)*length
		p.Canvas.StrokeLine2(tick, at.X, at.Y, end, at.Y)
		p.Canvas.FillText(label, vg.Point{X: end + vg.Length(dir)*2, Y: at.Y}, tm.Label)
	}

	if !f.AxisLabels || axis.Label == "" {
		return
	}
	title := sty.Axis.Title
	title.Color = label.Color
	title.Rotation = math.Pi / 2
	title.YAlign = draw.YTop
	x := axis.Line.From.X - 45
	if axis.Side == xychart.Right {
		title.Rotation = -math.Pi / 2
		x = axis.Line.From.X + 55
	}
	if x < 2 {
		x = 2
	}
	if x > f.Width-2 {
		x = f.Width - 2
	}
	mid := (f.Plot.Min.Y + f.Plot.Max.Y) / 2
	p.Canvas.FillText(title, t.point(xychart.Pixel{X: x, Y: mid}), axis.Label)
}

// Series draws the series polylines clipped to the plot area and, for
// short series, a marker on every point.
func (p *Painter) Series(f *xychart.Frame) {
	sty := p.style(f)
	t := p.transform(f)
	canvas := p.plotCanvas(f)
	for _, s := range f.Series {
		pts := t.points(s.Path)
		ls := draw.LineStyle{Color: s.Color, Width: vg.Length(s.Width)}
		if len(pts) > 1 {
			canvas.StrokeLines(ls, canvas.ClipLinesXY(pts)...)
		}
		if !s.Markers {
			continue
		}
		glyph := sty.Marker
		glyph.Color = s.Color
		for i, pt := range pts {
			if f.Plot.Contains(s.Path[i]) {
				canvas.DrawGlyph(glyph, pt)
			}
		}
	}
}

// Legend draws the legend box in the upper right corner of the plot area.
func (p *Painter) Legend(f *xychart.Frame) {
	if len(f.Legend) == 0 {
		return
	}
	sty := p.style(f)
	t := p.transform(f)
	box := t.rect(f.LegendBox)
	p.fillRect(sty.Legend.Background, box)
	p.strokeRect(sty.Legend.Border, box)

	for i, e := range f.Legend {
		y := f.LegendBox.Min.Y + 5 + (float64(i)+0.5)*xychart.LegendLineHeight
		at := t.point(xychart.Pixel{X: f.LegendBox.Min.X + 5, Y: y})
		p.Canvas.StrokeLine2(draw.LineStyle{Color: e.Color, Width: vg.Length(e.Width)},
			at.X, at.Y, at.X+sty.Legend.Sample, at.Y)
		p.Canvas.FillText(sty.Legend.Label, vg.Point{X: at.X + sty.Legend.Sample + 5, Y: at.Y}, e.Name)
	}
}

// Crosshair draws the pointer lines and the value tooltip.
func (p *Painter) Crosshair(f *xychart.Frame) {
	ch := f.Crosshair
	if ch == nil {
		return
	}
	sty := p.style(f)
	t := p.transform(f)
	p.line(sty.Crosshair, t, ch.Vertical)
	p.line(sty.Crosshair, t, ch.Horizontal)

	text := sty.Tooltip.Text
	var w vg.Length
	lineHeight := text.Height("Xg")
	for _, l := range ch.Lines {
		if lw := text.Width(l); lw > w {
			w = lw
		}
	}
	pad := sty.Tooltip.Pad
	width := t.pixelsX(w + 2*pad)
	height := t.pixelsY(lineHeight*vg.Length(len(ch.Lines)) + 2*pad)
	r := xychart.PlaceTooltip(ch.At, width, height, f.Plot)

	box := t.rect(r)
	p.fillRect(sty.Tooltip.Background, box)
	p.strokeRect(sty.Tooltip.Border, box)
	at := vg.Point{X: box.Min.X + pad, Y: box.Max.Y - pad}
	for _, l := range ch.Lines {
		p.Canvas.FillText(text, at, l)
		at.Y -= lineHeight
	}
}
