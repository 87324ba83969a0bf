package game

import "slices"

// Snapshot is a copy of everything the renderer draws for one frame.
type Snapshot struct {
	ScrollX   float64
	Player    Player
	Monster   Monster
	Obstacles []Obstacle
	Bullets   []Bullet
	Bombs     []Bomb
}

// HPFraction is the monster's remaining health in [0,1].
func (s Snapshot) HPFraction() float64 {
	return max(0, float64(s.Monster.HP)/MonsterMaxHP)
}

func (w *World) Snapshot() Snapshot {
	obs := slices.Clone(w.Obstacles)
	for i := range obs {
		obs[i].sh = nil
	}
	return Snapshot{
		ScrollX:   w.ScrollX,
		Player:    w.Player,
		Monster:   w.Monster,
		Obstacles: obs,
		Bullets:   slices.Clone(w.Bullets),
		Bombs:     slices.Clone(w.Bombs),
	}
}
