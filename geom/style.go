package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a chart frame is drawn.
type Style struct {
	Background     color.Color
	PlotBackground color.Color

	Title draw.TextStyle

	Grid draw.LineStyle

	Axis struct {
		Line      draw.LineStyle
		Title     draw.TextStyle
		TickLabel draw.TextStyle
		Tick      struct {
			draw.LineStyle
			Length vg.Length
		}
	}

	Marker draw.GlyphStyle

	Legend struct {
		Background color.Color
		Border     draw.LineStyle
		Label      draw.TextStyle
		Sample     vg.Length // length of the line sample in front of a label
	}

	Crosshair draw.LineStyle

	Tooltip struct {
		Background color.Color
		Border     draw.LineStyle
		Text       draw.TextStyle
		Pad        vg.Length
	}
}

// DefaultStyle returns the light theme. The baseFontSize is the size of
// tick and legend labels, titles are a bit bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.4))
	if err != nil {
		panic(err)
	}
	axisFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.1))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White
	s.PlotBackground = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Grid.Color = color.Gray16{0xdddd}
	s.Grid.Width = vg.Length(1)

	s.Axis.Line.Color = color.Black
	s.Axis.Line.Width = vg.Length(1)
	s.Axis.Title.Color = color.Black
	s.Axis.Title.Font = axisFont
	s.Axis.Title.XAlign = draw.XCenter
	s.Axis.Title.YAlign = draw.YBottom
	s.Axis.TickLabel.Color = color.Black
	s.Axis.TickLabel.Font = baseFont
	s.Axis.Tick.Color = color.Black
	s.Axis.Tick.Width = vg.Length(1)
	s.Axis.Tick.Length = vg.Length(5)

	s.Marker.Radius = vg.Length(3)
	s.Marker.Shape = draw.CircleGlyph{}

	s.Legend.Background = color.NRGBA{0xff, 0xff, 0xff, 0xc8}
	s.Legend.Border.Color = color.Gray16{0x8888}
	s.Legend.Border.Width = vg.Length(1)
	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = baseFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YCenter
	s.Legend.Sample = vg.Length(20)

	s.Crosshair.Color = color.Gray16{0x8080}
	s.Crosshair.Width = vg.Length(1)
	s.Crosshair.Dashes = []vg.Length{4, 4}

	s.Tooltip.Background = color.NRGBA{0xff, 0xff, 0xe1, 0xf0}
	s.Tooltip.Border.Color = color.Black
	s.Tooltip.Border.Width = vg.Length(1)
	s.Tooltip.Text.Color = color.Black
	s.Tooltip.Text.Font = baseFont
	s.Tooltip.Text.XAlign = draw.XLeft
	s.Tooltip.Text.YAlign = draw.YTop
	s.Tooltip.Pad = vg.Length(5)

	return s
}

// DarkStyle is DefaultStyle with light foreground on a dark background.
func DarkStyle(baseFontSize vg.Length) Style {
	s := DefaultStyle(baseFontSize)
	fg := color.Gray16{0xdddd}

	s.Background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	s.PlotBackground = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
	s.Title.Color = fg
	s.Grid.Color = color.Gray16{0x4444}
	s.Axis.Line.Color = fg
	s.Axis.Title.Color = fg
	s.Axis.TickLabel.Color = fg
	s.Axis.Tick.Color = fg
	s.Legend.Background = color.NRGBA{0x30, 0x30, 0x30, 0xc8}
	s.Legend.Border.Color = color.Gray16{0x6666}
	s.Legend.Label.Color = fg
	s.Crosshair.Color = color.Gray16{0xaaaa}
	s.Tooltip.Background = color.NRGBA{0x40, 0x40, 0x40, 0xf0}
	s.Tooltip.Border.Color = fg
	s.Tooltip.Text.Color = fg

	return s
}
