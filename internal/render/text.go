package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText writes s with its anchor at (x, y), scaled up from the 7x13 face.
func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, r.face, op)
}

// drawShadowText is drawText with a dark copy offset behind it.
func (r *Renderer) drawShadowText(dst *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	r.drawText(dst, s, x+2, y+2, scale, align, color.Black)
	r.drawText(dst, s, x, y, scale, align, clr)
}
