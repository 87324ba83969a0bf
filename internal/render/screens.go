package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"SpaghettiSurvival/internal/screen"
)

var controls = [][2]string{
	{"Move", "W, A, D"},
	{"Jump", "W or Space"},
	{"Shoot", "Left mouse button"},
	{"Bomb", "Right mouse button (limited)"},
	{"Reload", "S"},
}

func (r *Renderer) drawMenu(dst *ebiten.Image, v screen.View) {
	if r.menuBg != nil {
		drawImageAt(dst, r.menuBg, 0, 0, screenW, screenH, false)
	} else {
		dst.Fill(colMenuBg)
	}

	for i, opt := range v.Options {
		var clr color.Color = color.White
		label := opt
		if i == v.MenuIndex {
			clr = colRed
			label = "> " + opt
		}
		r.drawShadowText(dst, label, 100, float64(180+i*60), 3, text.AlignStart, clr)
	}
}

func (r *Renderer) drawHelp(dst *ebiten.Image) {
	dst.Fill(colHelpBg)
	r.drawText(dst, "< Controls >", screenW/2, 60, 3, text.AlignCenter, color.Black)

	for i, c := range controls {
		y := float64(150 + i*50)
		r.drawText(dst, c[0], 250, y, 2, text.AlignEnd, colLabel)
		r.drawText(dst, ":", 280, y, 2, text.AlignCenter, color.Black)
		r.drawText(dst, c[1], 310, y, 2, text.AlignStart, color.Black)
	}
	r.drawText(dst, "Press ESC to return", screenW/2, 420, 1.5, text.AlignCenter, colGray)
}

func (r *Renderer) drawRank(dst *ebiten.Image, v screen.View) {
	dst.Fill(colRankBg)
	r.drawText(dst, "RANKING", screenW/2, 50, 3, text.AlignCenter, color.Black)

	if len(v.Records) == 0 {
		r.drawText(dst, "no records yet", screenW/2, 120, 1.5, text.AlignCenter, colGray)
	}
	for i, rec := range v.Records {
		r.drawText(dst, fmt.Sprintf("%d. %s", i+1, rec), screenW/2, float64(120+i*30), 1.5, text.AlignCenter, color.Black)
	}
	r.drawText(dst, "Press ESC to return", screenW/2, 450, 1, text.AlignCenter, colGray)
}

// drawEndPanel puts a centered message box over the frozen last frame.
func (r *Renderer) drawEndPanel(dst *ebiten.Image, bg color.Color, line1, line2 string) {
	px := float32(screenW-panelW) / 2
	py := float32(screenH-panelH) / 2
	vector.DrawFilledRect(dst, px, py, panelW, panelH, bg, false)

	cx := float64(screenW) / 2
	r.drawText(dst, line1, cx, float64(py)+50, 4, text.AlignCenter, color.White)
	r.drawText(dst, line2, cx, float64(py)+115, 1.5, text.AlignCenter, color.White)
	r.drawText(dst, "Press SPACE to Menu", cx, float64(py)+170, 1, text.AlignCenter, color.White)
}
