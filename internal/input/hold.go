package input

// HoldState describes a hold action for one frame, mirroring the
// pressed / held / released queries of a host input system.
type HoldState struct {
	Pressed  bool // Went down this frame
	Held     bool // Is down this frame
	Released bool // Went up this frame
}

// Hold derives frame transitions from a stream of down/up samples.
type Hold struct {
	down bool
}

// Next feeds this frame's sample and returns the resulting transitions.
func (h *Hold) Next(down bool) HoldState {
	st := HoldState{
		Pressed:  down && !h.down,
		Held:     down,
		Released: !down && h.down,
	}
	h.down = down
	return st
}

// Reset forgets the previous sample.
func (h *Hold) Reset() {
	h.down = false
}

// Toggle turns taps into a down/up signal: each tap flips the state.
// Terminals report key presses but not releases, so a tap raises the
// action and the next tap lets it go.
type Toggle struct {
	down bool
}

// Tap flips the toggle when tapped is true and returns the current state.
func (t *Toggle) Tap(tapped bool) bool {
	if tapped {
		t.down = !t.down
	}
	return t.down
}

// Reset releases the toggle without producing a tap.
func (t *Toggle) Reset() {
	t.down = false
}
