package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences used by the host.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	altScreenOn = "\033[?1049h"
	altScreenOf = "\033[?1049l"
)

// ChunkWriter collects one frame of output and writes it in a single flush.
// Cursor positions are canvas relative; the canvas offset is added on write.
type ChunkWriter struct {
	buf    strings.Builder
	out    *bufio.Writer
	num    [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter flushing to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{out: bufio.NewWriterSize(w, 16<<10)}
}

// SetOffset sets the 0-based cell offset added to cursor positions.
func (cw *ChunkWriter) SetOffset(col, row int) {
	cw.offCol, cw.offRow = col, row
}

// MoveCursor queues a cursor move to the 1-based canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// WriteAt queues s at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Write queues raw bytes, such as a pre-positioned canvas render.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString queues s at the current cursor position.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Clear queues a full terminal clear.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(clearScreen)
}

// Flush writes the queued frame and resets the queue.
func (cw *ChunkWriter) Flush() error {
	if _, err := cw.out.WriteString(cw.buf.String()); err != nil {
		return err
	}
	cw.buf.Reset()
	return cw.out.Flush()
}

var _ io.StringWriter = (*ChunkWriter)(nil)

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (cols, rows int, err error)

// DefaultTermSizeFunc measures the terminal attached to stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen switches to the alternate screen and hides the cursor.
func EnterScreen(w io.Writer) error {
	_, err := io.WriteString(w, altScreenOn+hideCursor+clearScreen)
	return err
}

// LeaveScreen restores the cursor and the primary screen.
func LeaveScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen+showCursor+altScreenOf)
	return err
}
