package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/screen"
)

func (r *Renderer) drawWorld(dst *ebiten.Image, s *game.Snapshot) {
	if s == nil {
		dst.Fill(colSky)
		return
	}

	// background tiles twice so the parallax seam never shows
	if r.gameBg != nil {
		shift := parallaxShift(s.ScrollX)
		drawImageAt(dst, r.gameBg, -shift, 0, screenW, screenH, false)
		drawImageAt(dst, r.gameBg, -shift+screenW, 0, screenW, screenH, false)
	} else {
		dst.Fill(colSky)
	}
	vector.DrawFilledRect(dst, 0, game.GroundY, screenW, screenH-game.GroundY, colGround, false)

	for _, o := range s.Obstacles {
		b := o.Rect()
		x, y, w, h := float32(b.Min.X), float32(b.Min.Y), float32(b.W()), float32(b.H())
		vector.DrawFilledRect(dst, x, y, w, h, color.Black, false)
		vector.StrokeRect(dst, x, y, w, h, 1, color.White, false)
	}

	r.drawMonster(dst, s.Monster)
	r.drawPlayer(dst, s.Player)

	for _, b := range s.Bullets {
		end := b.Pos.Step(b.Angle, 10)
		vector.StrokeLine(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(end.X), float32(end.Y), 3, colBullet, true)
	}
	for _, b := range s.Bombs {
		if b.Exploded {
			vector.DrawFilledCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), game.ExplosionRadius, colBlast, true)
			continue
		}
		vector.DrawFilledCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), 10, color.Black, true)
	}
}

func (r *Renderer) drawMonster(dst *ebiten.Image, m game.Monster) {
	if r.monster != nil {
		drawImageAt(dst, r.monster, m.Pos.X-monsterSprite/2, m.Pos.Y-monsterSprite/2, monsterSprite, monsterSprite, false)
	} else {
		var clr color.Color = colRed
		if m.Stunned {
			clr = colGray
		}
		vector.DrawFilledCircle(dst, float32(m.Pos.X), float32(m.Pos.Y), game.MonsterRadius, clr, true)
	}

	r.drawText(dst, fmt.Sprintf("HP: %d", m.HP), m.Pos.X, m.Pos.Y-80, 1.5, text.AlignCenter, colRed)
	if m.Stunned {
		r.drawText(dst, "STUNNED!", m.Pos.X, m.Pos.Y, 1.5, text.AlignCenter, colRed)
	}
}

func (r *Renderer) drawPlayer(dst *ebiten.Image, p game.Player) {
	c := p.Muzzle()
	if r.playerImg != nil {
		// the sprite art faces left
		flip := p.Facing == game.FacingRight
		drawImageAt(dst, r.playerImg, c.X-playerSprite/2, c.Y-playerSprite/2, playerSprite, playerSprite, flip)
		return
	}
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), playerSprite/2, colPlayer, true)
	// eye on the facing side
	eye := float32(8)
	if p.Facing == game.FacingLeft {
		eye = -eye
	}
	vector.DrawFilledCircle(dst, float32(c.X)+eye, float32(c.Y)-6, 4, color.White, true)
}

func (r *Renderer) drawHUD(dst *ebiten.Image, v screen.View) {
	s := v.World
	if s == nil {
		return
	}

	vector.DrawFilledRect(dst, hpBarX, hpBarY, hpBarW, hpBarH, colGray, false)
	vector.DrawFilledRect(dst, hpBarX, hpBarY, float32(hpBarW*s.HPFraction()), hpBarH, colRed, false)

	p := s.Player
	r.drawText(dst, fmt.Sprintf("Bombs: %d / %d", p.Bombs, game.MaxBombs), 600, 60, 1.5, text.AlignStart, color.Black)
	if p.Reloading {
		r.drawText(dst, "Reloading...", 600, 85, 1.5, text.AlignStart, colRed)
	} else {
		r.drawText(dst, fmt.Sprintf("Ammo: %d / %d", p.Ammo, game.MaxAmmo), 600, 85, 1.5, text.AlignStart, color.Black)
	}

	secs := math.Floor(v.Elapsed.Seconds())
	r.drawText(dst, fmt.Sprintf("Time: %02d:%02d", int(secs)/60, int(secs)%60), 20, 60, 1.5, text.AlignStart, color.Black)
}
