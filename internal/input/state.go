// Package input describes one frame's worth of player input, sampled once
// per tick so the simulation never sees mid-frame changes.
package input

import "SpaghettiSurvival/internal/geom"

// Key is a held key the simulation cares about.
type Key uint8

const (
	KeyLeft   Key = 1 << iota // A
	KeyRight                  // D
	KeyJump                   // W
	KeyReload                 // S
	KeySpace
)

// Edge is a one-shot press event for navigation and bombs.
type Edge uint8

const (
	EdgeUp Edge = 1 << iota
	EdgeDown
	EdgeSelect
	EdgeCancel
	EdgeConfirm
	EdgeBomb
)

// State is a point-in-time snapshot of the devices.
type State struct {
	Held     Key
	Edges    Edge
	Cursor   geom.Vec
	FireHeld bool
}

func (s State) Holding(k Key) bool { return s.Held&k != 0 }

func (s State) Pressed(e Edge) bool { return s.Edges&e != 0 }

// MoveIntent folds the horizontal keys into -1, 0 or +1.
func (s State) MoveIntent() float64 {
	var m float64
	if s.Holding(KeyLeft) {
		m--
	}
	if s.Holding(KeyRight) {
		m++
	}
	return m
}

// WantsJump is true for W or space.
func (s State) WantsJump() bool {
	return s.Holding(KeyJump) || s.Holding(KeySpace)
}
