package object

import (
	"math"

	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/input"
	"github.com/tomz197/hoops/internal/physics"
)

// Ball flight and dribble parameters.
const (
	FlightDuration   = 0.66 // Seconds from release to the target
	ArcHeight        = 5.0  // Peak height added halfway through the flight
	DribbleFrequency = 5.0  // Radians per second of session time
	DribbleBounce    = 1.0  // Height of a dribble bounce
	BallRadius       = 0.5
)

// Possession is who currently controls the ball.
type Possession int

const (
	InHands Possession = iota // Held by the player
	Flying                    // Following the throw trajectory
	Loose                     // Flight finished, the physics body owns the ball
)

func (p Possession) String() string {
	switch p {
	case InHands:
		return "in-hands"
	case Flying:
		return "flying"
	case Loose:
		return "loose"
	default:
		return "unknown"
	}
}

// Pose is how the player holds the ball. Only meaningful while InHands.
type Pose int

const (
	PoseDribble  Pose = iota // Bouncing at the dribble anchor
	PoseOverhead             // Raised to the overhead anchor, aiming
)

// BallEvent is a transition reported by Ball.Update.
type BallEvent int

const (
	BallNoEvent BallEvent = iota
	BallThrown            // Left the hands this frame
	BallLanded            // Trajectory completed this frame
)

// Anchors are the positions the ball is attached to, supplied each frame by
// the owner of the ball.
type Anchors struct {
	Dribble  physics.Vec3
	Overhead physics.Vec3
	Target   physics.Vec3
}

// Ball is the possession/flight state machine.
//
// Held/Dribble is the initial state. Holding the throw action raises the
// ball overhead; releasing it starts a flight from the overhead anchor to
// the target. When the flight completes the ball turns loose and stops
// being kinematic. Only a separate Catch call brings it back to the hands.
type Ball struct {
	Position physics.Vec3

	possession    Possession
	pose          Pose
	flightElapsed float64
	from, to      physics.Vec3
	kinematic     bool
}

// NewBall creates a ball held in the dribble pose at p.
func NewBall(p physics.Vec3) *Ball {
	return &Ball{Position: p, kinematic: true}
}

// Reset puts the ball back in the hands at p.
func (b *Ball) Reset(p physics.Vec3) {
	*b = Ball{Position: p, kinematic: true}
}

// Possession returns the current possession state.
func (b *Ball) Possession() Possession {
	return b.possession
}

// Pose returns the held pose.
func (b *Ball) Pose() Pose {
	return b.pose
}

// Kinematic reports whether the state machine positions the ball.
// When false the host physics moves it.
func (b *Ball) Kinematic() bool {
	return b.kinematic
}

// ArmsRaised reports whether the holder's arms are up.
func (b *Ball) ArmsRaised() bool {
	return b.possession == InHands && b.pose == PoseOverhead
}

// Update advances the state machine by dt seconds.
// sessionTime drives the dribble bounce.
func (b *Ball) Update(dt, sessionTime float64, hold input.HoldState, a Anchors) BallEvent {
	event := BallNoEvent

	if b.possession == InHands {
		if hold.Held {
			b.pose = PoseOverhead
			b.Position = a.Overhead
		} else {
			b.pose = PoseDribble
			b.Position = a.Dribble.Add(physics.Up.Scale(DribbleOffset(sessionTime)))
		}

		if hold.Released {
			b.possession = Flying
			b.from = a.Overhead
			b.to = a.Target
			b.flightElapsed = 0
			event = BallThrown
		}
	}

	if b.possession == Flying {
		b.flightElapsed += dt
		t := b.flightElapsed / FlightDuration
		b.Position = Trajectory(b.from, b.to, t)

		// Completion only hands the ball to physics; returning to the
		// hands is driven by Catch.
		if t >= 1 {
			b.possession = Loose
			b.kinematic = false
			event = BallLanded
		}
	}

	return event
}

// Catch returns a loose ball to the hands. It reports whether the ball was
// returned; a held or flying ball is left alone.
func (b *Ball) Catch() bool {
	if b.possession != Loose {
		return false
	}
	b.possession = InHands
	b.pose = PoseDribble
	b.kinematic = true
	return true
}

// Trajectory returns the ball position at normalized flight time t:
// a straight line from a to b plus a vertical arc. t is clamped to [0, 1].
func Trajectory(a, b physics.Vec3, t float64) physics.Vec3 {
	return physics.Lerp(a, b, t).Add(physics.Up.Scale(ArcOffset(t)))
}

// ArcOffset is the height added to the straight path at normalized time t.
// It is 0 at both ends and peaks at ArcHeight for t = 0.5.
func ArcOffset(t float64) float64 {
	t = physics.Clamp01(t)
	if t == 1 {
		return 0
	}
	return ArcHeight * math.Sin(t*math.Pi)
}

// DribbleOffset is the dribble bounce height at the given session time.
func DribbleOffset(sessionTime float64) float64 {
	return DribbleBounce * math.Abs(math.Sin(sessionTime*DribbleFrequency))
}

// Draw renders the ball and its floor shadow.
func (b *Ball) Draw(ctx DrawContext) error {
	proj := ctx.Projection

	shadow := proj.Point(physics.Vec3{X: b.Position.X, Z: b.Position.Z})
	half := BallRadius * proj.ScaleX
	ctx.Canvas.DrawLine(
		draw.Point{X: shadow.X - half, Y: shadow.Y},
		draw.Point{X: shadow.X + half, Y: shadow.Y},
	)

	center := proj.Point(b.Position)
	ctx.Canvas.DrawEllipse(center, BallRadius*proj.ScaleX, BallRadius*proj.HeightScale, 8, true)
	return nil
}
