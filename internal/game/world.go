// Package game is the play-session simulation: one World per run, advanced
// by Tick once per frame.
package game

import (
	"math/rand"
	"time"

	"SpaghettiSurvival/internal/geom"
	"SpaghettiSurvival/internal/input"
)

// Outcome is how a session ended; once set the world stops simulating.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCleared
	OutcomeCaught
)

// World is the whole state of one run.
type World struct {
	Player    Player
	Monster   Monster
	Obstacles []Obstacle
	Bullets   []Bullet
	Bombs     []Bomb

	ScrollX float64
	Outcome Outcome

	spawnChance int // out of ObstacleSpawnRoll
	rng         *rand.Rand
	bp          *broadPhase
	fx          []Effect
}

// NewWorld is the session reset: everything starts from its initial value.
func NewWorld(rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		Player: Player{
			Pos:    geom.V(PlayerStartX, PlayerStartY),
			Facing: FacingRight,
			Ammo:   MaxAmmo,
			Bombs:  MaxBombs,
		},
		Monster: Monster{
			Pos: geom.V(MonsterStartX, MonsterStartY),
			HP:  MonsterMaxHP,
		},
		spawnChance: ObstacleSpawnChance,
		rng:         rng,
		bp:          newBroadPhase(),
	}
}

// AddObstacle places an obstacle of height h whose left edge is at x.
func (w *World) AddObstacle(x, h float64) {
	w.Obstacles = append(w.Obstacles, Obstacle{X: x, W: ObstacleWidth, H: h})
	w.bp.addObstacle(&w.Obstacles[len(w.Obstacles)-1])
}

// LaunchBomb throws a bomb at the monster's current position. The bomb does
// not track the monster afterwards. It reports false when no bomb is left.
func (w *World) LaunchBomb() bool {
	if w.Outcome != OutcomeNone || w.Player.Bombs <= 0 {
		return false
	}
	w.Player.Bombs--

	start := w.Player.Muzzle()
	target := w.Monster.Pos
	w.Bombs = append(w.Bombs, Bomb{
		Pos:    start,
		Target: target,
		Angle:  start.AngleTo(target),
	})
	return true
}

// Tick advances the run by one frame. The steps run in a fixed order and a
// clear stops the frame where it happens.
func (w *World) Tick(in input.State, now time.Time) []Effect {
	w.fx = nil
	if w.Outcome != OutcomeNone {
		return nil
	}

	w.movePlayer(in)
	w.applyGravity()
	w.spawnObstacles()
	w.collideObstacles()
	w.updateMonster(now)
	w.updateReload(in, now)
	w.fire(in, now)

	if w.updateBullets() {
		return w.fx
	}
	if w.updateBombs(now) {
		return w.fx
	}

	if w.Player.Muzzle().Dist(w.Monster.Pos) < ContactRadius {
		w.Outcome = OutcomeCaught
	}
	return w.fx
}

func (w *World) emit(e Effect) { w.fx = append(w.fx, e) }

func (w *World) movePlayer(in input.State) {
	p := &w.Player

	// facing follows the cursor, not the keys
	if in.Cursor.X < p.Pos.X {
		p.Facing = FacingLeft
	} else {
		p.Facing = FacingRight
	}

	moveX := in.MoveIntent()

	if in.WantsJump() && p.Grounded {
		p.Vel.Y = JumpForce
		p.Grounded = false
	}

	var speed float64
	if moveX != 0 {
		sameDir := (moveX > 0 && p.Facing == FacingRight) || (moveX < 0 && p.Facing == FacingLeft)
		if sameDir {
			speed = SpeedForward
		} else {
			speed = SpeedBackward
		}
	}
	move := moveX * speed

	if move > 0 && p.Pos.X >= ScrollTrigger {
		w.scroll(move)
		return
	}
	p.Pos.X = min(max(p.Pos.X+move, 0), ScreenWidth)
}

// scroll moves everything except the player left by d.
func (w *World) scroll(d float64) {
	w.ScrollX += d
	w.Monster.Pos.X -= d
	for i := range w.Obstacles {
		w.Obstacles[i].X -= d
		w.bp.moveObstacle(&w.Obstacles[i], -d)
	}
	for i := range w.Bombs {
		w.Bombs[i].Pos.X -= d
		w.Bombs[i].Target.X -= d
	}
}

func (w *World) applyGravity() {
	p := &w.Player
	p.Vel.Y += Gravity
	p.Pos.Y += p.Vel.Y

	if p.Pos.Y >= GroundY {
		p.Pos.Y = GroundY
		p.Vel.Y = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

func (w *World) spawnObstacles() {
	if w.rng.Intn(ObstacleSpawnRoll) >= w.spawnChance {
		return
	}
	h := float64(w.rng.Intn(ObstacleHeightSteps)+1) * ObstacleHeightStep
	w.AddObstacle(ObstacleSpawnX, h)
}

// collideObstacles pushes the player out of every obstacle it overlaps.
// Each obstacle is tested against the hitbox from before this step.
func (w *World) collideObstacles() {
	p := &w.Player
	anchor := p.Pos
	box := p.Hitbox()
	near := w.bp.nearby(box)

	kept := 0
	for i := 0; i < len(w.Obstacles); i++ {
		o := w.Obstacles[i]
		if o.X < ObstacleCullX {
			w.bp.removeObstacle(&o)
			continue
		}
		w.Obstacles[kept] = o
		kept++

		if !near[o.sh] {
			continue
		}
		res, ok := geom.ResolveBoxOverlap(box, o.Rect(), p.Vel.Y)
		if !ok {
			continue
		}
		switch res.Axis {
		case geom.AxisTop:
			if res.Land {
				p.Pos.Y = anchor.Y + res.Delta.Y
				p.Vel.Y = 0
				p.Grounded = true
			}
		case geom.AxisBottom:
			p.Pos.Y = anchor.Y + res.Delta.Y
			p.Vel.Y = 0
		case geom.AxisLeft, geom.AxisRight:
			p.Pos.X = anchor.X + res.Delta.X
		}
	}
	clear(w.Obstacles[kept:])
	w.Obstacles = w.Obstacles[:kept]
}

func (w *World) updateMonster(now time.Time) {
	m := &w.Monster
	if m.Stunned {
		if now.After(m.StunEnd) {
			m.Stunned = false
		}
		return
	}
	switch px := w.Player.Pos.X; {
	case m.Pos.X < px:
		m.Pos.X += MonsterSpeed
	case m.Pos.X > px:
		m.Pos.X -= MonsterSpeed
	}
}

func (w *World) updateReload(in input.State, now time.Time) {
	p := &w.Player
	if in.Holding(input.KeyReload) && !p.Reloading && p.Ammo < MaxAmmo {
		p.Reloading = true
		p.ReloadStart = now
		w.emit(PlaySound(SoundReload))
	}
	if p.Reloading && now.Sub(p.ReloadStart) >= ReloadTime {
		p.Ammo = MaxAmmo
		p.Reloading = false
	}
}

func (w *World) fire(in input.State, now time.Time) {
	p := &w.Player
	if !in.FireHeld || p.Reloading || p.Ammo <= 0 {
		return
	}
	if now.Sub(p.LastShot) < FireInterval {
		return
	}
	muzzle := p.Muzzle()
	w.Bullets = append(w.Bullets, Bullet{Pos: muzzle, Angle: muzzle.AngleTo(in.Cursor)})
	p.Ammo--
	p.LastShot = now
	w.emit(PlaySound(SoundFire))
}

// updateBullets moves shots and applies hits; true means the monster died.
func (w *World) updateBullets() bool {
	bw := 0
	for i := 0; i < len(w.Bullets); i++ {
		b := w.Bullets[i]
		b.Pos = b.Pos.Step(b.Angle, BulletSpeed)

		if b.Pos.Dist(w.Monster.Pos) < MonsterRadius {
			if w.Monster.hit(BulletDamage) {
				w.Bullets = append(w.Bullets[:bw], w.Bullets[i+1:]...)
				w.Outcome = OutcomeCleared
				return true
			}
			continue
		}
		if b.Pos.X < 0 || b.Pos.X > ScreenWidth || b.Pos.Y < 0 || b.Pos.Y > ScreenHeight {
			continue
		}
		w.Bullets[bw] = b // keep
		bw++
	}
	w.Bullets = w.Bullets[:bw]
	return false
}

// updateBombs flies, detonates and expires bombs; true means the monster died.
func (w *World) updateBombs(now time.Time) bool {
	bw := 0
	for i := 0; i < len(w.Bombs); i++ {
		b := w.Bombs[i]
		if b.Exploded {
			if now.Sub(b.ExplodedAt) > ExplosionDuration {
				continue
			}
			w.Bombs[bw] = b
			bw++
			continue
		}

		b.Pos = b.Pos.Step(b.Angle, BombSpeed)
		splash := false
		switch {
		case b.Pos.Dist(w.Monster.Pos) < BombDirectRadius:
			splash = true
		case b.Pos.Dist(b.Target) < BombSpeed:
			b.Pos = b.Target
			splash = b.Pos.Dist(w.Monster.Pos) < ExplosionRadius+SplashPadding
		default:
			w.Bombs[bw] = b
			bw++
			continue
		}

		b.Exploded = true
		b.ExplodedAt = now
		w.Bombs[bw] = b
		bw++
		w.emit(PlaySound(SoundExplode))

		if splash && w.stun(now) {
			w.Bombs = append(w.Bombs[:bw], w.Bombs[i+1:]...)
			w.Outcome = OutcomeCleared
			return true
		}
	}
	w.Bombs = w.Bombs[:bw]
	return false
}

// stun applies bomb splash to the monster and reports whether it died.
func (w *World) stun(now time.Time) bool {
	m := &w.Monster
	m.Stunned = true
	m.StunEnd = now.Add(StunTime)
	return m.hit(BombDamage)
}
