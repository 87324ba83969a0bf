package game

import (
	"time"

	"github.com/solarlune/resolv"

	"SpaghettiSurvival/internal/geom"
)

type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player position is the point between the feet.
type Player struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Grounded bool
	Facing   Facing

	Ammo  int
	Bombs int

	Reloading   bool
	ReloadStart time.Time
	LastShot    time.Time
}

// Hitbox is the 30x40 box standing on Pos.
func (p *Player) Hitbox() geom.Rect {
	return geom.Rect{
		Min: geom.Vec{X: p.Pos.X - PlayerHalfWidth, Y: p.Pos.Y - PlayerHeight},
		Max: geom.Vec{X: p.Pos.X + PlayerHalfWidth, Y: p.Pos.Y},
	}
}

// Muzzle is where shots leave and where the monster catches the player.
func (p *Player) Muzzle() geom.Vec {
	return geom.Vec{X: p.Pos.X, Y: p.Pos.Y - MuzzleHeight}
}

// Monster position is its center.
type Monster struct {
	Pos     geom.Vec
	HP      int
	Stunned bool
	StunEnd time.Time
}

// hit subtracts damage and reports whether the monster is dead.
func (m *Monster) hit(dmg int) bool {
	m.HP = max(0, m.HP-dmg)
	return m.HP <= 0
}

// Obstacle is a block standing on the ground line.
type Obstacle struct {
	X, W, H float64
	sh      resolv.IShape // collision box
}

func (o *Obstacle) Rect() geom.Rect {
	return geom.RectFromTopLeft(o.X, GroundY-o.H, o.W, o.H)
}

type Bullet struct {
	Pos   geom.Vec
	Angle float64
}

// Bomb flies toward the spot the monster stood on at launch.
type Bomb struct {
	Pos        geom.Vec
	Target     geom.Vec
	Angle      float64
	Exploded   bool
	ExplodedAt time.Time
}
