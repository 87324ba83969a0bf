package geom

// Rect is an axis-aligned box, Min is the top-left corner.
type Rect struct {
	Min, Max Vec
}

// RectFromTopLeft builds a box from its top-left corner and size.
func RectFromTopLeft(x, y, w, h float64) Rect {
	return Rect{Min: Vec{x, y}, Max: Vec{x + w, y + h}}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }

func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec {
	return Vec{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Overlaps reports a strictly positive intersection; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Max.X > o.Min.X && r.Min.X < o.Max.X &&
		r.Max.Y > o.Min.Y && r.Min.Y < o.Max.Y
}

// Axis names the side of the obstacle a box was pushed out through.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisTop
	AxisBottom
	AxisLeft
	AxisRight
)

func (a Axis) String() string {
	switch a {
	case AxisTop:
		return "top"
	case AxisBottom:
		return "bottom"
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	}
	return "none"
}

// Resolution is the outcome of pushing a moving box out of a static one.
// Delta is the displacement that separates the boxes along Axis. Land is set
// for a top resolution while falling or resting; a top hit while rising
// carries a zero Delta and no landing.
type Resolution struct {
	Axis  Axis
	Delta Vec
	Land  bool
}

// ResolveBoxOverlap picks the axis of minimum penetration between a mover box
// and an obstacle box. Ties go to the first of top, bottom, left, right.
// The second result is false when the boxes do not overlap.
func ResolveBoxOverlap(mover, obstacle Rect, vy float64) (Resolution, bool) {
	if !mover.Overlaps(obstacle) {
		return Resolution{}, false
	}

	left := mover.Max.X - obstacle.Min.X
	right := obstacle.Max.X - mover.Min.X
	top := mover.Max.Y - obstacle.Min.Y
	bottom := obstacle.Max.Y - mover.Min.Y

	switch min(left, right, top, bottom) {
	case top:
		if vy < 0 {
			return Resolution{Axis: AxisTop}, true
		}
		return Resolution{Axis: AxisTop, Delta: Vec{0, -top}, Land: true}, true
	case bottom:
		return Resolution{Axis: AxisBottom, Delta: Vec{0, bottom}}, true
	case left:
		return Resolution{Axis: AxisLeft, Delta: Vec{-left, 0}}, true
	default:
		return Resolution{Axis: AxisRight, Delta: Vec{right, 0}}, true
	}
}
