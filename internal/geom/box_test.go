package geom

import (
	"math"
	"testing"
)

func TestResolveBoxOverlap(t *testing.T) {
	obstacle := RectFromTopLeft(100, 350, 30, 50) // spans y 350..400

	tests := []struct {
		name  string
		mover Rect
		vy    float64
		axis  Axis
		delta Vec
		land  bool
	}{
		{
			name:  "falling onto top lands",
			mover: RectFromTopLeft(100, 315, 30, 40),
			vy:    3,
			axis:  AxisTop,
			delta: Vec{0, -5},
			land:  true,
		},
		{
			name:  "resting on top still lands",
			mover: RectFromTopLeft(105, 312, 30, 40),
			vy:    0,
			axis:  AxisTop,
			delta: Vec{0, -2},
			land:  true,
		},
		{
			name:  "rising through top does not snap",
			mover: RectFromTopLeft(100, 315, 30, 40),
			vy:    -4,
			axis:  AxisTop,
		},
		{
			name:  "shoved out to the left",
			mover: RectFromTopLeft(74, 360, 30, 40),
			axis:  AxisLeft,
			delta: Vec{-4, 0},
		},
		{
			name:  "shoved out to the right",
			mover: RectFromTopLeft(127, 360, 30, 40),
			axis:  AxisRight,
			delta: Vec{3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ResolveBoxOverlap(tt.mover, obstacle, tt.vy)
			if !ok {
				t.Fatal("expected overlap")
			}
			if res.Axis != tt.axis {
				t.Fatalf("axis = %v, want %v", res.Axis, tt.axis)
			}
			if res.Delta != tt.delta {
				t.Fatalf("delta = %+v, want %+v", res.Delta, tt.delta)
			}
			if res.Land != tt.land {
				t.Fatalf("land = %v, want %v", res.Land, tt.land)
			}
		})
	}
}

func TestResolveBoxOverlapBottom(t *testing.T) {
	// thin floating slab so the underside is the shallowest side
	slab := RectFromTopLeft(0, 100, 200, 20)
	mover := RectFromTopLeft(80, 118, 30, 40)

	res, ok := ResolveBoxOverlap(mover, slab, -5)
	if !ok || res.Axis != AxisBottom {
		t.Fatalf("got %+v ok=%v, want bottom", res, ok)
	}
	if res.Delta != (Vec{0, 2}) {
		t.Fatalf("delta = %+v", res.Delta)
	}
}

func TestResolveBoxOverlapTieBreak(t *testing.T) {
	// 10x10 mover sitting exactly on the top-left corner: top and left tie
	obstacle := RectFromTopLeft(0, 0, 100, 100)
	mover := RectFromTopLeft(-5, -5, 10, 10)

	res, ok := ResolveBoxOverlap(mover, obstacle, 1)
	if !ok {
		t.Fatal("expected overlap")
	}
	if res.Axis != AxisTop {
		t.Fatalf("axis = %v, want top to win the tie", res.Axis)
	}
}

func TestResolveBoxOverlapNoContact(t *testing.T) {
	a := RectFromTopLeft(0, 0, 10, 10)
	touching := RectFromTopLeft(10, 0, 10, 10)
	if _, ok := ResolveBoxOverlap(a, touching, 0); ok {
		t.Fatal("edge contact must not count as overlap")
	}
	far := RectFromTopLeft(50, 50, 10, 10)
	if _, ok := ResolveBoxOverlap(a, far, 0); ok {
		t.Fatal("disjoint boxes reported overlap")
	}
}

func TestVecHelpers(t *testing.T) {
	a := V(0, 0)
	b := V(3, 4)
	if d := a.Dist(b); d != 5 {
		t.Fatalf("dist = %v", d)
	}
	angle := a.AngleTo(V(0, 10))
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Fatalf("angle = %v", angle)
	}
	p := a.Step(angle, 10)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-10) > 1e-9 {
		t.Fatalf("step = %+v", p)
	}
}
