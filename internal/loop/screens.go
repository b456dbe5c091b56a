package loop

import (
	"github.com/tomz197/hoops/internal/draw"
	"github.com/tomz197/hoops/internal/object"
	"github.com/tomz197/hoops/internal/physics"
)

// Draw renders the current frame and flushes it to the terminal.
func (g *Game) Draw(canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	cw.Clear()
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas:     canvas,
		Writer:     cw,
		Projection: g.Projection,
	}

	if g.State == GameStatePlaying {
		g.drawCourt(ctx)
		for _, obj := range []object.Object{g.Hoop, g.Player} {
			if err := obj.Draw(ctx); err != nil {
				return err
			}
		}
	}

	if err := canvas.Render(cw); err != nil {
		return err
	}
	if err := canvas.RenderBorder(cw); err != nil {
		return err
	}

	cols, rows := canvas.Size()
	switch g.State {
	case GameStateStart:
		drawStartScreen(cw, cols, rows)
	case GameStatePlaying:
		if err := g.drawPlayingHUD(ctx, cols, rows); err != nil {
			return err
		}
	case GameStateOver:
		if err := g.drawOverScreen(ctx, cols, rows); err != nil {
			return err
		}
	}

	return cw.Flush()
}

// drawCourt draws the floor outline and the dashed half-court line.
func (g *Game) drawCourt(ctx object.DrawContext) {
	p := ctx.Projection
	c := ctx.Canvas
	b := g.Court

	floor := c.BorrowPoints(4)
	floor[0] = p.Point(physics.Vec3{X: b.MinX, Z: b.MinZ})
	floor[1] = p.Point(physics.Vec3{X: b.MaxX, Z: b.MinZ})
	floor[2] = p.Point(physics.Vec3{X: b.MaxX, Z: b.MaxZ})
	floor[3] = p.Point(physics.Vec3{X: b.MinX, Z: b.MaxZ})
	c.DrawPolygon(floor, false)

	mid := (b.MinX + b.MaxX) / 2
	c.DrawDashedLine(
		p.Point(physics.Vec3{X: mid, Z: b.MinZ}),
		p.Point(physics.Vec3{X: mid, Z: b.MaxZ}),
		2, 2,
	)
}

func centered(cw *draw.ChunkWriter, cols, row int, s string) {
	cw.WriteAt(max((cols-len(s))/2+1, 1), row, s)
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, cols, rows int) {
	title := []string{
		` _   _  ___   ___  ____  ____  `,
		`| | | |/ _ \ / _ \|  _ \/ ___| `,
		`| |_| | | | | | | | |_) \___ \ `,
		`|  _  | |_| | |_| |  __/ ___) |`,
		`|_| |_|\___/ \___/|_|   |____/ `,
	}
	top := rows/2 - 7
	for i, line := range title {
		centered(cw, cols, top+i, line)
	}

	controls := []string{
		"WASD / Arrows . . . . Move",
		"SPACE . . . Raise / Shoot",
		"Q . . . . . . . . . . Quit",
	}
	y := top + len(title) + 2
	for i, line := range controls {
		centered(cw, cols, y+i, line)
	}

	centered(cw, cols, y+len(controls)+2, ">>  Press SPACE to Start  <<")
}

// drawPlayingHUD draws the status display and the level banner.
func (g *Game) drawPlayingHUD(ctx object.DrawContext, cols, rows int) error {
	status := object.Text{X: 2, Y: 1, Value: g.Tracker.Status()}
	if err := status.Draw(ctx); err != nil {
		return err
	}

	if g.Banner.Visible() {
		ctx.Writer.WriteAt(max(g.Banner.Column(cols), 1), rows/4, g.Banner.Text)
	}

	hint := "SPACE raise"
	if g.Player.Aiming() {
		hint = "SPACE shoot"
	}
	ctx.Writer.WriteAt(2, rows, hint)
	return nil
}

// drawOverScreen draws the end scene scoreboard.
func (g *Game) drawOverScreen(ctx object.DrawContext, cols, rows int) error {
	status := object.Text{Value: g.Tracker.Status()}
	lines := status.Lines()

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	status.X = max((cols-width)/2+1, 1)
	status.Y = max(rows/2-len(lines)/2, 1)
	if err := status.Draw(ctx); err != nil {
		return err
	}

	centered(ctx.Writer, cols, status.Y+len(lines)+1, "Press ENTER to play again")
	return nil
}
