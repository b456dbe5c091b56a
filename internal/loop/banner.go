package loop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/hoops/internal/loop/config"
)

// Banner is the level title that bounces in when a level loads.
type Banner struct {
	Text string

	tween    *gween.Tween
	progress float32 // 0 off screen, 1 centered
	shown    float64
	active   bool
}

// Show starts sliding text in.
func (b *Banner) Show(text string) {
	b.Text = text
	b.tween = gween.New(0, 1, config.BannerSlideSeconds, ease.OutBounce)
	b.progress = 0
	b.shown = 0
	b.active = true
}

// Hide removes the banner immediately.
func (b *Banner) Hide() {
	b.active = false
}

// Update advances the banner by dt seconds.
func (b *Banner) Update(dt float64) {
	if !b.active {
		return
	}
	b.shown += dt
	b.progress, _ = b.tween.Update(float32(dt))
	if b.shown >= config.BannerSeconds {
		b.active = false
	}
}

// Visible reports whether the banner is on screen.
func (b *Banner) Visible() bool {
	return b.active
}

// Column returns the 1-based column of the banner's first character on a
// screen cols wide. It moves from just off the left edge to the center.
func (b *Banner) Column(cols int) int {
	start := float32(1 - len(b.Text))
	center := float32(cols-len(b.Text))/2 + 1
	return int(start + (center-start)*b.progress)
}
