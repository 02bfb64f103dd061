package xychart

import "image/color"

// Palette is the fixed set of colors handed out to series created without
// an explicit color, in this order.
var Palette = [...]color.RGBA{
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0xff, 0x00, 0x00, 0xff}, // red
	{0x00, 0xff, 0x00, 0xff}, // green
	{0xff, 0x00, 0xff, 0xff}, // magenta
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0x80, 0x80, 0x00, 0xff}, // dark yellow
	{0x00, 0x00, 0x80, 0xff}, // dark blue
	{0x80, 0x00, 0x00, 0xff}, // dark red
	{0x00, 0x80, 0x00, 0xff}, // dark green
	{0x80, 0x00, 0x80, 0xff}, // dark magenta
}

// nextColor returns the next palette color. The counter never goes back,
// not even when series are removed.
func (c *Chart) nextColor() color.Color {
	col := Palette[c.colorIndex%len(Palette)]
	c.colorIndex++
	return col
}
