package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitCentersAndCaps(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	changed := c.Fit(200, 60, 160, 50)
	assert.True(t, changed)

	cols, rows := c.Size()
	assert.Equal(t, 160, cols)
	assert.Equal(t, 50, rows)

	offCol, offRow := c.Offset()
	assert.Equal(t, 20, offCol)
	assert.Equal(t, 5, offRow)

	assert.False(t, c.Fit(200, 60, 160, 50), "same terminal is not a change")
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: 1, Y: 1}, Point{X: 8, Y: 6})

	assert.True(t, c.Lit(Point{X: 1, Y: 1}))
	assert.True(t, c.Lit(Point{X: 8, Y: 6}))
	assert.False(t, c.Lit(Point{X: 8, Y: 1}))
}

func TestDashedLineSkipsGaps(t *testing.T) {
	c := NewScaledCanvas(10, 1, 10, 2)
	c.DrawDashedLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 0}, 2, 2)

	var lit []bool
	for x := range 10 {
		lit = append(lit, c.Lit(Point{X: float64(x), Y: 0}))
	}
	assert.Equal(t, []bool{true, true, false, false, true, true, false, false, true, true}, lit)
}

func TestFilledEllipseCoversCenter(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawEllipse(Point{X: 10, Y: 10}, 4, 4, 12, true)
	assert.True(t, c.Lit(Point{X: 10, Y: 10}))

	c.Clear()
	c.DrawEllipse(Point{X: 10, Y: 10}, 4, 4, 12, false)
	assert.False(t, c.Lit(Point{X: 10, Y: 10}))
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.Set(Point{X: 0, Y: 0})
	c.Set(Point{X: 0, Y: 1})
	c.Set(Point{X: 1, Y: 1})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[1;1H█\033[1;2H▄", buf.String())
}

func TestRenderBorderOnlyWhenOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var buf bytes.Buffer
	require.NoError(t, c.RenderBorder(&buf))
	assert.Empty(t, buf.String())

	c.Fit(10, 6, 4, 2)
	require.NoError(t, c.RenderBorder(&buf))
	assert.Contains(t, buf.String(), "┌────┐")
	assert.Equal(t, 4, strings.Count(buf.String(), "│"))
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.SetOffset(3, 2)
	cw.WriteAt(1, 1, "hi")

	assert.Empty(t, buf.String(), "nothing written before flush")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[3;4Hhi", buf.String())
}
