package object

import (
	"time"

	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/input"
	"github.com/tomz197/hoops/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Elapsed float64 // Seconds since the session started
	Input   Input
	Hold    input.HoldState // The throw action for this frame
	Court   physics.Bounds
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas     *draw.Canvas      // High-resolution canvas (2x vertical)
	Writer     *draw.ChunkWriter // Frame output for text, canvas relative
	Projection Projection
}

// Projection maps court space onto the logical canvas with a fixed oblique
// camera: X runs across the screen, Z moves down toward the viewer and Y
// moves up.
type Projection struct {
	ScaleX      float64 // Canvas units per court unit along X
	Horizon     float64 // Canvas Y of the far edge of the floor (Z = 0)
	DepthScale  float64 // Canvas units per court unit along Z
	HeightScale float64 // Canvas units per court unit along Y
}

// Point projects a court-space position to canvas coordinates.
func (p Projection) Point(v physics.Vec3) draw.Point {
	return draw.Point{
		X: v.X * p.ScaleX,
		Y: p.Horizon + v.Z*p.DepthScale - v.Y*p.HeightScale,
	}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}
