// ABOUTME: Surface is the text-mode drawing capability used by the session and render loop
// ABOUTME: Mode switches execute immediately; drawing commands queue until Flush writes them in one batch

package surface

import (
	"errors"
	"fmt"

	"github.com/mauromedda/termwalk/pkg/tui/internal/pool"
	"github.com/mauromedda/termwalk/pkg/tui/terminal"
	"github.com/mauromedda/termwalk/pkg/tui/theme"
)

// ErrOutOfRange is returned by MoveTo for negative coordinates.
var ErrOutOfRange = errors.New("cursor position out of range")

// Surface draws on a Terminal. It is owned by a single goroutine and is
// not safe for concurrent use.
type Surface struct {
	term  terminal.Terminal
	queue []byte
}

// New returns a Surface writing to t.
func New(t terminal.Terminal) *Surface {
	return &Surface{
		term:  t,
		queue: make([]byte, 0, 256),
	}
}

// --- immediate commands ---

// EnterAlternateScreen switches to the secondary screen buffer.
func (s *Surface) EnterAlternateScreen() error {
	return s.execute("entering alternate screen", seqAltScreenEnter)
}

// LeaveAlternateScreen resets colors and returns to the primary buffer.
func (s *Surface) LeaveAlternateScreen() error {
	return s.execute("leaving alternate screen", seqSGR0+seqAltScreenLeave)
}

// HideCursor makes the terminal cursor invisible.
func (s *Surface) HideCursor() error {
	return s.execute("hiding cursor", seqCursorHide)
}

// ShowCursor makes the terminal cursor visible.
func (s *Surface) ShowCursor() error {
	return s.execute("showing cursor", seqCursorShow)
}

// EnableRawMode puts the input side of the terminal into raw mode.
func (s *Surface) EnableRawMode() error {
	return s.term.EnterRawMode()
}

// DisableRawMode restores the input mode saved by EnableRawMode.
func (s *Surface) DisableRawMode() error {
	return s.term.ExitRawMode()
}

// Size returns the viewport in character cells.
func (s *Surface) Size() (width, height int, err error) {
	return s.term.Size()
}

// execute writes any queued output followed by seq, in one Write,
// so stream order matches call order.
func (s *Surface) execute(what, seq string) error {
	s.queue = append(s.queue, seq...)
	_, err := s.term.Write(s.queue)
	s.queue = s.queue[:0]
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// --- queued commands ---

// Clear queues an erase of the whole visible area.
func (s *Surface) Clear() error {
	s.queue = append(s.queue, seqClearAll...)
	return nil
}

// MoveTo queues a cursor move to the 0-indexed cell (col, row).
func (s *Surface) MoveTo(col, row int) error {
	if col < 0 || row < 0 {
		return fmt.Errorf("move to (%d, %d): %w", col, row, ErrOutOfRange)
	}
	s.queue = appendCursorPos(s.queue, col, row)
	return nil
}

// SetForeground queues a foreground color change.
func (s *Surface) SetForeground(c theme.Color) error {
	s.queue = append(s.queue, c.Code()...)
	return nil
}

// Print queues text at the current cursor position.
func (s *Surface) Print(text string) error {
	s.queue = append(s.queue, text...)
	return nil
}

// Pending returns the number of queued bytes not yet flushed.
func (s *Surface) Pending() int {
	return len(s.queue)
}

// Flush writes everything queued since the last flush as a single
// synchronized-output Write. The queue is emptied even when the write
// fails; a half-delivered frame is never retried.
func (s *Surface) Flush() error {
	if len(s.queue) == 0 {
		return nil
	}
	frame := pool.GetFrame()
	defer pool.PutFrame(frame)

	frame.WriteString(seqSyncBegin)
	frame.Write(s.queue)
	frame.WriteString(seqSyncEnd)
	s.queue = s.queue[:0]

	if _, err := s.term.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}
