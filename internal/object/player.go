package object

import (
	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/physics"
)

// Player movement and ball anchor parameters.
const (
	MoveSpeed      = 10.0 // Units per second
	PlayerHeight   = 3.0
	OverheadHeight = 4.0 // Ball height while aiming
	DribbleReach   = 1.0 // Horizontal distance of the dribble anchor
	DribbleHeight  = 0.5
)

// Scorer receives a point whenever the ball returns to the player's hands.
type Scorer interface {
	RecordBasket() error
}

// Player is the character that moves on the court and owns the ball.
type Player struct {
	Position physics.Vec3 // Feet, on the floor
	Facing   physics.Vec3 // Unit vector on the ground plane
	Speed    float64

	Ball   *Ball
	hoop   *Hoop
	scorer Scorer
}

// NewPlayer creates a player at pos holding ball, aiming at hoop.
// Returned baskets are reported to scorer.
func NewPlayer(pos physics.Vec3, ball *Ball, hoop *Hoop, scorer Scorer) *Player {
	p := &Player{
		Position: pos,
		Facing:   physics.Vec3{X: 1},
		Speed:    MoveSpeed,
		Ball:     ball,
		hoop:     hoop,
		scorer:   scorer,
	}
	ball.Reset(p.Anchors().Dribble)
	return p
}

// Respawn moves the player to pos and puts the ball back in its hands.
func (p *Player) Respawn(pos physics.Vec3, hoop *Hoop) {
	p.Position = pos
	p.Facing = physics.Vec3{X: 1}
	p.hoop = hoop
	p.Ball.Reset(p.Anchors().Dribble)
}

// Aiming reports whether the player is holding the ball overhead.
func (p *Player) Aiming() bool {
	return p.Ball.ArmsRaised()
}

// Anchors returns the current ball anchors.
func (p *Player) Anchors() Anchors {
	return Anchors{
		Dribble:  p.Position.Add(p.Facing.Scale(DribbleReach)).Add(physics.Up.Scale(DribbleHeight)),
		Overhead: p.Position.Add(physics.Up.Scale(OverheadHeight)),
		Target:   p.hoop.Rim,
	}
}

// Update moves the player, locks the facing while aiming and drives the ball.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	dir := ctx.Input.Axis().Flat().Normalized()
	p.Position = ctx.Court.Contain(p.Position.Add(dir.Scale(p.Speed * dt)))
	if !dir.IsZero() {
		p.Facing = dir
	}

	// Aiming locks the throw direction toward the hoop's base.
	if p.Ball.Possession() == InHands && ctx.Hold.Held {
		p.faceToward(p.hoop.Base)
	}

	p.Ball.Update(dt, ctx.Elapsed, ctx.Hold, p.Anchors())
	return false, nil
}

// OnTriggerEnter is called when the ball enters the player's catch region.
// A loose ball returns to the hands and scores.
func (p *Player) OnTriggerEnter() (bool, error) {
	if !p.Ball.Catch() {
		return false, nil
	}
	if p.scorer == nil {
		return true, nil
	}
	return true, p.scorer.RecordBasket()
}

func (p *Player) faceToward(target physics.Vec3) {
	dir := target.Sub(p.Position).Flat().Normalized()
	if !dir.IsZero() {
		p.Facing = dir
	}
}

// Draw renders a stick figure and the ball it owns.
func (p *Player) Draw(ctx DrawContext) error {
	proj := ctx.Projection
	at := func(dx, dy float64) draw.Point {
		return proj.Point(p.Position.Add(physics.Vec3{X: dx, Y: dy}))
	}

	c := ctx.Canvas
	hip := at(0, 1.2)
	neck := at(0, 2.3)

	// Legs and body
	c.DrawLine(hip, at(-0.4, 0))
	c.DrawLine(hip, at(0.4, 0))
	c.DrawLine(hip, neck)

	// Arms
	if p.Aiming() {
		c.DrawLine(neck, at(-0.4, OverheadHeight-0.4))
		c.DrawLine(neck, at(0.4, OverheadHeight-0.4))
	} else {
		reach := p.Facing.X * DribbleReach
		c.DrawLine(neck, at(reach, 1.3))
		c.DrawLine(neck, at(-reach*0.5, 1.4))
	}

	// Head
	c.DrawEllipse(at(0, PlayerHeight-0.2), 0.35*proj.ScaleX, 0.35*proj.HeightScale, 6, true)

	return p.Ball.Draw(ctx)
}
