// Package loop runs the game on a raw terminal.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/input"
	"github.com/tomz197/hoops/internal/loop/config"
	"github.com/tomz197/hoops/internal/score"
)

// Options configures a run.
type Options struct {
	Store        score.Store
	Logger       *log.Logger
	MaxTime      time.Duration // Session length, 0 for the default
	TargetScore  int           // First level-up target, 0 for the default
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle. It returns when the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	game := NewGame(opts)
	stream := input.StartStream(r)

	cols, rows, err := termSize()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(cols, rows, config.ViewWidth, config.ViewHeight)
	canvas.Fit(cols, rows, config.MaxRenderWidth, config.MaxRenderHeight)
	cw := draw.NewChunkWriter(w)
	cw.SetOffset(canvas.Offset())

	if err := draw.EnterScreen(w); err != nil {
		return err
	}
	defer draw.LeaveScreen(w)

	lastTime := time.Now()
	for game.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT + UPDATE =====
		if err := game.Step(delta, input.ReadInput(stream)); err != nil {
			return err
		}

		// ===== RESIZE =====
		if cols, rows, err := termSize(); err == nil {
			canvas.Fit(cols, rows, config.MaxRenderWidth, config.MaxRenderHeight)
			cw.SetOffset(canvas.Offset())
		}

		// ===== DRAW =====
		if err := game.Draw(canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}
