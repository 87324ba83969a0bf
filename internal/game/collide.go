package game

import (
	"github.com/solarlune/resolv"

	"SpaghettiSurvival/internal/geom"
)

// the space is padded so shapes just off screen still land in real cells
const (
	spaceMargin = 128.0
	spaceCell   = 32
)

// tags help Resolv filter which shapes to test against
var (
	tagPlayer   = resolv.NewTag("player")
	tagObstacle = resolv.NewTag("obstacle")
)

// broadPhase mirrors obstacles into a Resolv space so the player only runs
// the exact box test against obstacles in or next to its cells.
type broadPhase struct {
	space    *resolv.Space
	playerSh resolv.IShape
	playerAt geom.Vec // top-left the player shape was last moved to
}

func newBroadPhase() *broadPhase {
	w := int(ScreenWidth + 2*spaceMargin)
	h := int(ScreenHeight + 2*spaceMargin)
	bp := &broadPhase{space: resolv.NewSpace(w, h, spaceCell, spaceCell)}

	bp.playerSh = resolv.NewRectangleFromTopLeft(spaceMargin, spaceMargin, 2*PlayerHalfWidth, PlayerHeight)
	bp.playerSh.Tags().Set(tagPlayer)
	bp.space.Add(bp.playerSh)
	return bp
}

func (bp *broadPhase) addObstacle(o *Obstacle) {
	r := o.Rect()
	o.sh = resolv.NewRectangleFromTopLeft(r.Min.X+spaceMargin, r.Min.Y+spaceMargin, r.W(), r.H())
	o.sh.Tags().Set(tagObstacle)
	bp.space.Add(o.sh)
}

// shapes are only ever moved relatively, by the same delta as the entity
func (bp *broadPhase) moveObstacle(o *Obstacle, dx float64) {
	if o.sh == nil {
		return
	}
	o.sh.Move(dx, 0)
}

func (bp *broadPhase) removeObstacle(o *Obstacle) {
	if o.sh == nil {
		return
	}
	bp.space.Remove(o.sh)
	o.sh = nil
}

// nearby returns the obstacle shapes sharing a cell with the given player
// box, or a neighbour of one. It only narrows the candidates; whether a
// candidate really overlaps is left to the exact box test.
func (bp *broadPhase) nearby(box geom.Rect) map[resolv.IShape]bool {
	d := box.Min.Sub(bp.playerAt)
	bp.playerSh.Move(d.X, d.Y)
	bp.playerAt = box.Min

	near := make(map[resolv.IShape]bool)
	bp.playerSh.SelectTouchingCells(1).FilterShapes().ByTags(tagObstacle).ForEach(func(sh resolv.IShape) bool {
		near[sh] = true
		return true
	})
	return near
}
