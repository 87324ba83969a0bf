package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"SpaghettiSurvival/internal/geom"
	"SpaghettiSurvival/internal/input"
)

var heldKeys = []struct {
	key  ebiten.Key
	held input.Key
}{
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeyW, input.KeyJump},
	{ebiten.KeyS, input.KeyReload},
	{ebiten.KeySpace, input.KeySpace},
}

var edgeKeys = []struct {
	key  ebiten.Key
	edge input.Edge
}{
	{ebiten.KeyArrowUp, input.EdgeUp},
	{ebiten.KeyArrowDown, input.EdgeDown},
	{ebiten.KeyEnter, input.EdgeSelect},
	{ebiten.KeySpace, input.EdgeSelect | input.EdgeConfirm},
	{ebiten.KeyEscape, input.EdgeCancel},
}

// sampleInput reads the devices once for this tick.
func sampleInput() input.State {
	var s input.State
	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			s.Held |= k.held
		}
	}
	for _, k := range edgeKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			s.Edges |= k.edge
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.Edges |= input.EdgeBomb
	}
	s.FireHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	x, y := ebiten.CursorPosition()
	s.Cursor = geom.V(float64(x), float64(y))
	return s
}
