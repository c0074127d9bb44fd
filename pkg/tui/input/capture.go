// ABOUTME: Capture reads raw input one byte at a time and forwards each byte as a rune on a Queue
// ABOUTME: Runs on its own goroutine; read or send failures end it without touching the render loop

package input

import (
	"context"
	"fmt"
	"io"
)

// Capture is the producer side of the input pipeline.
type Capture struct {
	reader io.Reader
	queue  *Queue
}

// NewCapture returns a Capture reading from r and sending into q.
// r should be a terminal in raw mode; otherwise bytes arrive a line at a time.
func NewCapture(r io.Reader, q *Queue) *Capture {
	return &Capture{reader: r, queue: q}
}

// Run blocks, capturing until the reader fails, the queue is closed, or
// ctx is cancelled. Cancellation is checked after every read, so a
// reader that blocks forever also keeps Run alive; use NewPollReader for
// a stdin that wakes up on its own. The returned error says why capture
// stopped: ctx.Err(), a wrapped read error (io.EOF included), or ErrClosed.
func (c *Capture) Run(ctx context.Context) error {
	var b [1]byte
	for {
		if _, err := io.ReadFull(c.reader, b[:]); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.queue.Send(rune(b[0])); err != nil {
			return fmt.Errorf("forwarding %q: %w", b[0], err)
		}
	}
}
