// Package draw rasterizes the court onto a half-block terminal canvas.
package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Point is a position in logical canvas space.
type Point struct {
	X, Y float64
}

// Half-block glyphs. Each terminal cell holds two vertically stacked pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer with twice the vertical resolution of the
// terminal. Callers draw in logical coordinates; the canvas scales them to
// the cells it currently owns.
type Canvas struct {
	cols, rows int    // Terminal cells owned by the canvas
	pixelRows  int    // rows * 2
	pixels     []bool // [y*cols + x]

	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64
	scaleY        float64

	// 0-based cell offset of the canvas inside a larger terminal.
	offsetCol int
	offsetRow int

	out       strings.Builder
	num       [20]byte
	scaled    []Point
	crossings []float64
	points    []Point
}

// NewScaledCanvas creates a canvas of cols x rows cells showing a logical
// area of logicalWidth x logicalHeight.
func NewScaledCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the number of cells the canvas owns, keeping the logical
// area. It reports whether the size actually changed.
func (c *Canvas) Resize(cols, rows int) bool {
	cols, rows = max(cols, 0), max(rows, 0)
	changed := cols != c.cols || rows != c.rows
	if changed || c.pixels == nil {
		c.cols, c.rows = cols, rows
		c.pixelRows = rows * 2
		c.pixels = make([]bool, c.pixelRows*cols)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.pixelRows) / c.logicalHeight
	return changed
}

// Fit sizes the canvas for a terminal of termCols x termRows, capped at
// maxCols x maxRows and centered. It reports whether the placement changed.
func (c *Canvas) Fit(termCols, termRows, maxCols, maxRows int) bool {
	cols := min(termCols, maxCols)
	rows := min(termRows, maxRows)
	offCol := (termCols - cols) / 2
	offRow := (termRows - rows) / 2

	moved := offCol != c.offsetCol || offRow != c.offsetRow
	c.offsetCol, c.offsetRow = offCol, offRow
	return c.Resize(cols, rows) || moved
}

// Offset returns the 0-based cell offset of the canvas.
func (c *Canvas) Offset() (col, row int) {
	return c.offsetCol, c.offsetRow
}

// Size returns the number of cells owned by the canvas.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.pixelRows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) pixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Lit reports whether the pixel under logical point p is set.
func (c *Canvas) Lit(p Point) bool {
	x, y := c.pixel(p)
	if x < 0 || x >= c.cols || y < 0 || y >= c.pixelRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// Set lights the pixel under logical point p.
func (c *Canvas) Set(p Point) {
	c.setPixel(c.pixel(p))
}

// DrawLine draws a solid line with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	c.line(p1, p2, 1, 0)
}

// DrawDashedLine draws a line lighting dash pixels, then skipping gap pixels.
func (c *Canvas) DrawDashedLine(p1, p2 Point, dash, gap int) {
	c.line(p1, p2, max(dash, 1), max(gap, 0))
}

func (c *Canvas) line(p1, p2 Point, dash, gap int) {
	x1, y1 := c.pixel(p1)
	x2, y2 := c.pixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for step := 0; ; step++ {
		if step%(dash+gap) < dash {
			c.setPixel(x1, y1)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon, filling it first when
// filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawEllipse draws an ellipse with radii rx, ry approximated by a polygon
// of the given number of segments.
func (c *Canvas) DrawEllipse(center Point, rx, ry float64, segments int, filled bool) {
	pts := c.BorrowPoints(max(segments, 3))
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(len(pts))
		pts[i] = Point{X: center.X + math.Cos(a)*rx, Y: center.Y + math.Sin(a)*ry}
	}
	c.DrawPolygon(pts, filled)
}

// fill scanline-fills a polygon in pixel space.
func (c *Canvas) fill(points []Point) {
	c.scaled = c.scaled[:0]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		s := Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		c.scaled = append(c.scaled, s)
		minY = min(minY, s.Y)
		maxY = max(maxY, s.Y)
	}

	n := len(c.scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		xs := c.crossings[:0]
		for i := range n {
			a, b := c.scaled[i], c.scaled[(i+1)%n]
			if (a.Y <= scanY && b.Y > scanY) || (b.Y <= scanY && a.Y > scanY) {
				t := (scanY - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		c.crossings = xs
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a scratch slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, n)
	}
	return c.points[:n]
}

// Render writes every non-empty cell to w as a positioned half-block glyph.
func (c *Canvas) Render(w io.Writer) error {
	c.out.Reset()
	for row := range c.rows {
		top := row * 2 * c.cols
		bottom := top + c.cols
		for col := range c.cols {
			var ch rune
			switch up, down := c.pixels[top+col], c.pixels[bottom+col]; {
			case up && down:
				ch = BlockFull
			case up:
				ch = BlockUpperHalf
			case down:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.cursor(col+1+c.offsetCol, row+1+c.offsetRow)
			c.out.WriteRune(ch)
		}
	}
	_, err := io.WriteString(w, c.out.String())
	return err
}

func (c *Canvas) cursor(col, row int) {
	c.out.WriteString("\033[")
	c.out.Write(strconv.AppendInt(c.num[:0], int64(row), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.num[:0], int64(col), 10))
	c.out.WriteByte('H')
}

// RenderBorder frames the canvas when it is centered inside a larger
// terminal. Sides are only drawn where there is room for them.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasSides := c.offsetCol >= 1
	hasEnds := c.offsetRow >= 1
	if !hasSides && !hasEnds {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1
	bar := strings.Repeat("─", c.cols)

	c.out.Reset()
	if hasEnds {
		if hasSides {
			c.cursor(left, top)
			c.out.WriteString("┌" + bar + "┐")
			c.cursor(left, bottom)
			c.out.WriteString("└" + bar + "┘")
		} else {
			c.cursor(left+1, top)
			c.out.WriteString(bar)
			c.cursor(left+1, bottom)
			c.out.WriteString(bar)
		}
	}
	if hasSides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			c.cursor(left, row)
			c.out.WriteString("│")
			c.cursor(right, row)
			c.out.WriteString("│")
		}
	}
	_, err := io.WriteString(w, c.out.String())
	return err
}

// ToCell converts a logical point to the 1-based terminal cell under it,
// relative to the canvas origin.
func (c *Canvas) ToCell(p Point) (col, row int) {
	x, y := c.pixel(p)
	return x + 1, y/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
