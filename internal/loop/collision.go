package loop

import (
	"github.com/solarlune/resolv"

	"github.com/tomz197/hoops/internal/loop/config"
	"github.com/tomz197/hoops/internal/object"
	"github.com/tomz197/hoops/internal/physics"
)

// Resolv tags
const (
	tagBall  = "ball"
	tagCatch = "catch"
)

// triggerMargin pads the space so a ball held just past a wall still maps
// to cells.
const triggerMargin = 4

// Trigger reports when the ball enters the player's catch region. Both are
// boxes on the court floor in a resolv space; the ball must also be low
// enough to be caught.
type Trigger struct {
	space  *resolv.Space
	ball   *resolv.Object
	catch  *resolv.Object
	origin physics.Vec3
	inside bool
}

// NewTrigger creates a trigger covering court.
func NewTrigger(court physics.Bounds) *Trigger {
	w := int(court.MaxX-court.MinX) + 2*triggerMargin
	h := int(court.MaxZ-court.MinZ) + 2*triggerMargin

	t := &Trigger{
		space:  resolv.NewSpace(w, h, 1, 1),
		ball:   resolv.NewObject(0, 0, 2*object.BallRadius, 2*object.BallRadius, tagBall),
		catch:  resolv.NewObject(0, 0, config.CatchSize, config.CatchSize, tagCatch),
		origin: physics.Vec3{X: court.MinX - triggerMargin, Z: court.MinZ - triggerMargin},
	}
	t.space.Add(t.ball, t.catch)
	return t
}

// place centers o on p's ground position.
func (t *Trigger) place(o *resolv.Object, p physics.Vec3) {
	o.X = p.X - t.origin.X - o.W/2
	o.Y = p.Z - t.origin.Z - o.H/2
	o.Update()
}

// Overlapping reports whether the ball at ballPos is inside the catch region
// of a player standing at playerPos.
func (t *Trigger) Overlapping(playerPos, ballPos physics.Vec3) bool {
	t.place(t.catch, playerPos)
	t.place(t.ball, ballPos)

	if ballPos.Y > config.CatchHeight {
		return false
	}

	check := t.ball.Check(0, 0, tagCatch)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tagCatch) {
		if boxesOverlap(t.ball, o) {
			return true
		}
	}
	return false
}

// Update samples the overlap for this frame and reports an enter edge.
func (t *Trigger) Update(playerPos, ballPos physics.Vec3) bool {
	now := t.Overlapping(playerPos, ballPos)
	entered := now && !t.inside
	t.inside = now
	return entered
}

// Reset forgets the previous overlap.
func (t *Trigger) Reset() {
	t.inside = false
}

// boxesOverlap refines resolv's cell check to the exact boxes.
func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
