// ABOUTME: Defines the Terminal interface for raw mode, size queries, and output.
// ABOUTME: Implementations target a real tty (ProcessTerminal) or an in-memory fake (VirtualTerminal).

package terminal

import "errors"

// ErrNotTerminal is returned when raw mode is requested on a file that is not a tty.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
