package physics

import "math"

// Bounds is an axis-aligned box on the court floor. The floor is at Y = 0.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contain clamps p to the bounds on the ground plane.
func (b Bounds) Contain(p Vec3) Vec3 {
	p.X = clamp(p.X, b.MinX, b.MaxX)
	p.Z = clamp(p.Z, b.MinZ, b.MaxZ)
	return p
}

// Body is a sphere that falls, bounces on the floor and rebounds off walls.
// It stands in for the rigid body the ball becomes once a throw completes.
type Body struct {
	Position    Vec3
	Velocity    Vec3
	Radius      float64
	Gravity     float64 // Downward acceleration, units/s²
	Restitution float64 // Fraction of speed kept on a bounce
	Friction    float64 // Ground-plane speed kept per second while rolling (0..1)
}

// restSpeed is the vertical speed below which a floor bounce is dropped.
const restSpeed = 0.5

// Reset places the body at p with zero velocity.
func (b *Body) Reset(p Vec3) {
	b.Position = p
	b.Velocity = Vec3{}
}

// Step advances the body by dt seconds inside the given bounds.
func (b *Body) Step(dt float64, bounds Bounds) {
	b.Velocity.Y -= b.Gravity * dt
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	floor := b.Radius
	if b.Position.Y <= floor {
		b.Position.Y = floor
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y * b.Restitution
			if b.Velocity.Y < restSpeed {
				b.Velocity.Y = 0
			}
		}
	}

	if b.Position.Y == floor && b.Velocity.Y == 0 {
		keep := math.Pow(b.Friction, dt)
		b.Velocity.X *= keep
		b.Velocity.Z *= keep
		if b.Velocity.Len() < restSpeed*0.1 {
			b.Velocity = Vec3{}
		}
	}

	if b.Position.X < bounds.MinX+b.Radius {
		b.Position.X = bounds.MinX + b.Radius
		b.Velocity.X = -b.Velocity.X * b.Restitution
	} else if b.Position.X > bounds.MaxX-b.Radius {
		b.Position.X = bounds.MaxX - b.Radius
		b.Velocity.X = -b.Velocity.X * b.Restitution
	}
	if b.Position.Z < bounds.MinZ+b.Radius {
		b.Position.Z = bounds.MinZ + b.Radius
		b.Velocity.Z = -b.Velocity.Z * b.Restitution
	} else if b.Position.Z > bounds.MaxZ-b.Radius {
		b.Position.Z = bounds.MaxZ - b.Radius
		b.Velocity.Z = -b.Velocity.Z * b.Restitution
	}
}

// Resting reports whether the body lies still on the floor.
func (b *Body) Resting() bool {
	return b.Position.Y <= b.Radius && b.Velocity.IsZero()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
