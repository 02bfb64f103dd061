package geom

import (
	"strconv"
	"testing"

	"github.com/vdobler/xychart"
	"gonum.org/v1/plot/vg"
)

var canonicRectangleTests = []struct {
	in, want vg.Rectangle
}{
	{vg.Rectangle{Min: vg.Point{X: 1, Y: 2}, Max: vg.Point{X: 3, Y: 4}}, vg.Rectangle{Min: vg.Point{X: 1, Y: 2}, Max: vg.Point{X: 3, Y: 4}}},
	{vg.Rectangle{Min: vg.Point{X: 3, Y: 2}, Max: vg.Point{X: 1, Y: 4}}, vg.Rectangle{Min: vg.Point{X: 1, Y: 2}, Max: vg.Point{X: 3, Y: 4}}},
	{vg.Rectangle{Min: vg.Point{X: 3, Y: 4}, Max: vg.Point{X: 1, Y: 2}}, vg.Rectangle{Min: vg.Point{X: 1, Y: 2}, Max: vg.Point{X: 3, Y: 4}}},
}

func TestCanonicRectangle(t *testing.T) {
	for i, tc := range canonicRectangleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := CanonicRectangle(tc.in); got != tc.want {
				t.Errorf("CanonicRectangle(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

var transformTests = []struct {
	px   xychart.Pixel
	want vg.Point
}{
	{xychart.Pixel{X: 0, Y: 0}, vg.Point{X: 10, Y: 620}},
	{xychart.Pixel{X: 400, Y: 300}, vg.Point{X: 810, Y: 20}},
	{xychart.Pixel{X: 200, Y: 75}, vg.Point{X: 410, Y: 470}},
}

func TestTransform(t *testing.T) {
	// A 400×300 widget drawn at twice its size with an offset of (10,20).
	dst := vg.Rectangle{Min: vg.Point{X: 10, Y: 20}, Max: vg.Point{X: 810, Y: 620}}
	tr := newTransform(400, 300, dst)
	for i, tc := range transformTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tr.point(tc.px); got != tc.want {
				t.Errorf("point(%v) = %v, want %v", tc.px, got, tc.want)
			}
		})
	}

	r := tr.rect(xychart.Rect{Min: xychart.Pixel{X: 0, Y: 0}, Max: xychart.Pixel{X: 100, Y: 100}})
	if r.Min != (vg.Point{X: 10, Y: 420}) || r.Max != (vg.Point{X: 210, Y: 620}) {
		t.Errorf("rect = %v", r)
	}
	if w := tr.pixelsX(40); w != 20 {
		t.Errorf("pixelsX(40) = %g, want 20", w)
	}
}
