// ABOUTME: Fallback for platforms without poll(2): the file itself, read with plain blocking reads
// ABOUTME: The capture goroutine then lives until process exit

//go:build !unix

package input

import (
	"context"
	"io"
	"os"
)

// NewPollReader returns f unchanged; ctx is only observed between reads.
func NewPollReader(_ context.Context, f *os.File) io.Reader {
	return f
}
