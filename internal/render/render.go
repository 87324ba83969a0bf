// Package render draws a screen.View with ebiten. Sprites are optional: any
// image that fails to load is drawn as a plain shape instead.
package render

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"SpaghettiSurvival/internal/config"
	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/screen"
)

const (
	screenW = game.ScreenWidth
	screenH = game.ScreenHeight

	monsterSprite = 2 * game.MonsterRadius
	playerSprite  = 40.0
	parallax      = 0.5

	hpBarX = 100
	hpBarY = 20
	hpBarW = 600
	hpBarH = 15

	// centered message panel on the end screens
	panelW = 420
	panelH = 200
)

var (
	colSky      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	colGround   = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	colMenuBg   = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colHelpBg   = color.RGBA{0xff, 0xe4, 0xb5, 0xff}
	colRankBg   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colLabel    = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colGray     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colRed      = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	colBullet   = color.RGBA{0xf0, 0xdc, 0x3c, 0xff}
	colBlast    = color.RGBA{0xff, 0x8c, 0x00, 0xa0}
	colPlayer   = color.RGBA{0x20, 0x40, 0xe0, 0xff}
	colClearBg  = color.RGBA{0x87, 0xce, 0xeb, 0xe0}
	colCaughtBg = color.RGBA{0x00, 0x00, 0x00, 0xe0}
)

type Renderer struct {
	face text.Face

	// optional sprites (nil → draw shapes)
	menuBg    *ebiten.Image
	gameBg    *ebiten.Image
	monster   *ebiten.Image
	playerImg *ebiten.Image
}

func New(cfg config.Config) *Renderer {
	r := &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
	r.menuBg = loadImage(cfg, "menu_bg.png")
	r.gameBg = loadImage(cfg, "ingame_bg.png")
	r.monster = loadImage(cfg, "spaghetti.png")
	r.playerImg = loadImage(cfg, "player.png")
	return r
}

func loadImage(cfg config.Config, name string) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(cfg.Asset(name))
	if err != nil {
		log.Printf("no %s; drawing shapes instead", name)
		return nil
	}
	return img
}

// Draw renders the whole frame for v.
func (r *Renderer) Draw(dst *ebiten.Image, v screen.View) {
	switch v.Screen {
	case screen.Menu:
		r.drawMenu(dst, v)
	case screen.Help:
		r.drawHelp(dst)
	case screen.Rank:
		r.drawRank(dst, v)
	case screen.Play:
		r.drawWorld(dst, v.World)
		r.drawHUD(dst, v)
	case screen.GameOver:
		r.drawWorld(dst, v.World)
		r.drawEndPanel(dst, colCaughtBg, "GAME OVER", "Caught by the spaghetti.")
	case screen.Clear:
		r.drawWorld(dst, v.World)
		r.drawEndPanel(dst, colClearBg, "CLEAR!", "Record: "+v.Record)
	}
}

// drawImageAt scales img to w x h with its top-left at (x, y).
func drawImageAt(dst, img *ebiten.Image, x, y, w, h float64, flip bool) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	sx := w / float64(b.Dx())
	if flip {
		op.GeoM.Scale(-sx, h/float64(b.Dy()))
		op.GeoM.Translate(w, 0)
	} else {
		op.GeoM.Scale(sx, h/float64(b.Dy()))
	}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// parallaxShift is how far the background has slid left for a scroll offset.
func parallaxShift(scrollX float64) float64 {
	return math.Mod(scrollX*parallax, screenW)
}
