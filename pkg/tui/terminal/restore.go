// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: RecoverGoroutine does the same for background goroutines without exiting the process.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

const (
	seqShowCursor = "\x1b[?25h"
	seqLeaveAlt   = "\x1b[0m\x1b[?1049l"
)

// restore undoes a session in teardown order: cursor, raw mode, screen.
// Every step runs regardless of earlier failures.
func restore(t Terminal) {
	_, _ = t.Write([]byte(seqShowCursor))
	_ = t.ExitRawMode()
	_, _ = t.Write([]byte(seqLeaveAlt))
}

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it shows the cursor,
// exits raw mode, leaves the alternate screen, prints the panic value
// and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
