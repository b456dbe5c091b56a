// Package input turns raw terminal bytes into per-frame game input.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/hoops/internal/physics"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last byte. It has to bridge the gap between terminal key repeats.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool // Away from the camera (into the court)
	Down  bool // Toward the camera
	Space bool // SPACE arrived this frame
	Enter bool // ENTER arrived this frame
}

// Axis returns the two-axis movement vector on the court floor.
// Components are -1, 0 or 1; the caller normalizes.
func (in Input) Axis() physics.Vec3 {
	var v physics.Vec3
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	if in.Up {
		v.Z--
	}
	if in.Down {
		v.Z++
	}
	return v
}

// keyState tracks the last time each movement key was seen.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, time.Now())
}

// parse updates the key state from buf and builds the frame's input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			s.state.quit = now
		case 'a', 'A', 'h', 'H':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case 'w', 'W', 'k', 'K':
			s.state.up = now
		case 's', 'S', 'j', 'J':
			s.state.down = now
		case ' ':
			in.Space = true
		case '\n', '\r':
			in.Enter = true
		}
	}

	in.Quit = now.Sub(s.state.quit) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	return in
}
