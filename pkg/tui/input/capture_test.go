// ABOUTME: Tests for Capture: byte-to-rune forwarding, stop reasons, and cancellation
// ABOUTME: Uses strings.Reader for deterministic input and io.Pipe to control timing

package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func drain(q *Queue) string {
	var b strings.Builder
	for {
		r, ok := q.TryRecv()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}

func TestCapture_ForwardsEveryByteInOrder(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c := NewCapture(strings.NewReader("wasdq"), q)

	err := c.Run(context.Background())

	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want io.EOF", err)
	}
	if got := drain(q); got != "wasdq" {
		t.Errorf("queued %q, want %q", got, "wasdq")
	}
}

func TestCapture_BytesBecomeRunes(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c := NewCapture(strings.NewReader("\xc3\x1b"), q)

	_ = c.Run(context.Background())

	for _, want := range []rune{0xc3, 0x1b} {
		r, ok := q.TryRecv()
		if !ok || r != want {
			t.Fatalf("TryRecv() = %U, %v; want %U", r, ok, want)
		}
	}
}

func TestCapture_StopsWhenQueueClosed(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	q.Close()
	c := NewCapture(strings.NewReader("d"), q)

	if err := c.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Run() error = %v, want ErrClosed", err)
	}
}

func TestCapture_CancelCheckedAfterRead(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	defer pr.Close()
	q := NewQueue()
	c := NewCapture(pr, q)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	if _, err := pw.Write([]byte("d")); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return q.Len() == 1 })

	cancel()
	// The capture goroutine is parked in Read; the next byte wakes it.
	go func() { _, _ = pw.Write([]byte("s")) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
	if got := drain(q); got != "d" {
		t.Errorf("queued %q, want only %q", got, "d")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}
