// ABOUTME: ProcessTerminal implements Terminal on a pair of tty files using golang.org/x/term.
// ABOUTME: Manages raw mode state and delegates platform-specific resize handling.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal: raw mode is applied to in, output
// and size queries go to out.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
	resizeFn func(width, height int)
	watching bool
}

// NewProcessTerminal returns a ProcessTerminal bound to os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewProcessTerminalFor(os.Stdin, os.Stdout)
}

// NewProcessTerminalFor returns a ProcessTerminal bound to the given files.
// Both usually refer to the same tty.
func NewProcessTerminalFor(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input tty to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("entering raw mode on %s: %w", t.in.Name(), ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether EnterRawMode succeeded and has not been undone.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.oldState != nil
}

// Size returns the current terminal dimensions in cells.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Only the most recent callback is kept; the platform listener starts once.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	start := !t.watching
	t.watching = true
	t.mu.Unlock()

	if start {
		t.startResizeListener()
	}
}
