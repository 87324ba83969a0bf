// Package geom holds the small amount of 2D math the simulation needs:
// vectors, axis-aligned boxes and box overlap resolution.
package geom

import "math"

// Vec is a 2D point or displacement in screen pixels.
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist is the euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 { return o.Sub(v).Len() }

// AngleTo returns the heading in radians from v toward o (screen y grows down).
func (v Vec) AngleTo(o Vec) float64 {
	d := o.Sub(v)
	return math.Atan2(d.Y, d.X)
}

// Step moves v by dist along angle.
func (v Vec) Step(angle, dist float64) Vec {
	return Vec{v.X + math.Cos(angle)*dist, v.Y + math.Sin(angle)*dist}
}
