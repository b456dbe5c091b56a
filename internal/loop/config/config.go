// Package config centralizes the tunables of the terminal host.
package config

import "time"

// View resolution - the visible court in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution - terminal area used for the court.
// Larger terminals get a centered, bordered court.
const (
	MaxRenderWidth  = 160
	MaxRenderHeight = 50
)

// Court dimensions in court units. The floor is at Y = 0.
const (
	CourtWidth = 60 // Along X
	CourtDepth = 30 // Along Z
)

// Camera. CourtWidth*ScaleX spans the view; the near edge of the floor
// lands at Horizon + CourtDepth*DepthScale.
const (
	ScaleX      = 2.0
	Horizon     = 38.0
	DepthScale  = 1.3
	HeightScale = 2.4
)

// Loose ball body
const (
	BallGravity     = 30.0
	BallRestitution = 0.55
	BallFriction    = 0.3
)

// Catch region around the player's feet
const (
	CatchSize   = 2.0 // Side of the square region on the floor
	CatchHeight = 3.0 // Ball must be at or below this height
)

// Level banner
const (
	BannerSeconds      = 1.6 // How long the banner stays up
	BannerSlideSeconds = 0.8
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
