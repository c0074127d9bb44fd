// ABOUTME: Tests for ProcessTerminal against a pseudo-terminal pair from creack/pty.
// ABOUTME: Covers raw-mode byte delivery, size queries, writes, and non-tty rejection.

//go:build unix

package terminal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/creack/pty"
)

// compile-time check: ProcessTerminal must satisfy Terminal.
var _ Terminal = (*ProcessTerminal)(nil)

func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestProcessTerminal_Size(t *testing.T) {
	ptmx, tty := openPTY(t)

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 5, Cols: 10}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	pt := NewProcessTerminalFor(tty, tty)
	w, h, err := pt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 10 || h != 5 {
		t.Errorf("Size() = (%d, %d), want (10, 5)", w, h)
	}
}

func TestProcessTerminal_RawModeDeliversSingleBytes(t *testing.T) {
	ptmx, tty := openPTY(t)
	pt := NewProcessTerminalFor(tty, tty)

	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	defer func() { _ = pt.ExitRawMode() }()

	if !pt.IsRawMode() {
		t.Fatal("expected raw mode after EnterRawMode")
	}

	if _, err := ptmx.Write([]byte("d")); err != nil {
		t.Fatalf("writing to master: %v", err)
	}

	got := make(chan byte, 1)
	go func() {
		var b [1]byte
		if _, err := io.ReadFull(tty, b[:]); err == nil {
			got <- b[0]
		}
	}()

	select {
	case b := <-got:
		if b != 'd' {
			t.Errorf("read %q, want 'd'", b)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("byte not delivered without newline; raw mode not active")
	}
}

func TestProcessTerminal_ExitRawModeIsIdempotent(t *testing.T) {
	_, tty := openPTY(t)
	pt := NewProcessTerminalFor(tty, tty)

	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	for i := range 2 {
		if err := pt.ExitRawMode(); err != nil {
			t.Fatalf("ExitRawMode() call %d: %v", i, err)
		}
	}
	if pt.IsRawMode() {
		t.Error("expected raw mode off after ExitRawMode")
	}
}

func TestProcessTerminal_Write(t *testing.T) {
	ptmx, tty := openPTY(t)
	pt := NewProcessTerminalFor(tty, tty)

	if _, err := pt.Write([]byte("hi")); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	buf := make([]byte, 2)
	if _, err := io.ReadFull(ptmx, buf); err != nil {
		t.Fatalf("reading master: %v", err)
	}
	if string(buf) != "hi" {
		t.Errorf("master read %q, want %q", buf, "hi")
	}
}

func TestProcessTerminal_RejectsNonTTY(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pt := NewProcessTerminalFor(f, f)
	err = pt.EnterRawMode()
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("EnterRawMode() error = %v, want ErrNotTerminal", err)
	}
	if pt.IsRawMode() {
		t.Error("raw mode must stay off for a non-tty")
	}
}
