package xychart

// Pixel is a position in widget space. The origin is the top left corner
// of the widget, y grows downwards.
type Pixel struct {
	X, Y float64
}

// Rect is an axis aligned rectangle in widget space.
type Rect struct {
	Min, Max Pixel // Min is the top left, Max the bottom right corner.
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Pixel) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Margins is the space between the widget edges and the plot area.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Side selects on which side of the plot area a Y-axis is drawn.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}
