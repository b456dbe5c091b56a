package object

import (
	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/physics"
)

// Hoop is the throw target: a rim mounted on a pole.
type Hoop struct {
	Rim  physics.Vec3 // Where a throw ends
	Base physics.Vec3 // Foot of the pole; the player faces it while aiming
}

// NewHoop creates a hoop whose pole stands at base with the rim at rim.
func NewHoop(rim, base physics.Vec3) *Hoop {
	return &Hoop{Rim: rim, Base: base}
}

// Update is a no-op for the static hoop.
func (h *Hoop) Update(_ UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the pole, backboard and rim.
func (h *Hoop) Draw(ctx DrawContext) error {
	proj := ctx.Projection
	c := ctx.Canvas

	top := physics.Vec3{X: h.Base.X, Y: h.Rim.Y + 2, Z: h.Base.Z}
	c.DrawLine(proj.Point(h.Base), proj.Point(top))

	// Backboard
	board := c.BorrowPoints(4)
	board[0] = proj.Point(top.Add(physics.Vec3{Z: -1.5}))
	board[1] = proj.Point(top.Add(physics.Vec3{Z: 1.5}))
	board[2] = proj.Point(top.Add(physics.Vec3{Y: -2.5, Z: 1.5}))
	board[3] = proj.Point(top.Add(physics.Vec3{Y: -2.5, Z: -1.5}))
	c.DrawPolygon(board, false)

	// Rim
	c.DrawLine(proj.Point(physics.Vec3{X: h.Base.X, Y: h.Rim.Y, Z: h.Rim.Z}), proj.Point(h.Rim))
	rim := proj.Point(h.Rim)
	c.DrawLine(
		draw.Point{X: rim.X - BallRadius*2*proj.ScaleX, Y: rim.Y},
		draw.Point{X: rim.X + BallRadius*2*proj.ScaleX, Y: rim.Y},
	)
	return nil
}
