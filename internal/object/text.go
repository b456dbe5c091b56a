package object

import "strings"

// Text is a multi-line block of text.
// X and Y are the 1-based canvas cell of the first line.
type Text struct {
	X     int
	Y     int
	Value string
}

// Lines returns the text split into display lines.
func (t Text) Lines() []string {
	if t.Value == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(t.Value, "\n"), "\n")
}

// Draw writes each line below the previous one.
func (t Text) Draw(ctx DrawContext) error {
	x, y := max(t.X, 1), max(t.Y, 1)
	for i, line := range t.Lines() {
		ctx.Writer.WriteAt(x, y+i, line)
	}
	return nil
}
