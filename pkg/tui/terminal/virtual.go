// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, tracks raw-mode transitions, and can inject per-operation failures.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// Op names a VirtualTerminal operation for failure injection.
type Op int

const (
	OpEnterRaw Op = iota
	OpExitRaw
	OpSize
	OpWrite
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	resizeFn   func(width, height int)
	enterCount int
	exitCount  int
	writeCount int
	failures   map[Op]error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:    width,
		height:   height,
		failures: make(map[Op]error),
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpEnterRaw]; err != nil {
		return err
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpExitRaw]; err != nil {
		return err
	}
	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpSize]; err != nil {
		return 0, 0, err
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[OpWrite]; err != nil {
		return 0, err
	}
	v.writeCount++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// Fail makes every later call of op return err. A nil err clears the failure.
func (v *VirtualTerminal) Fail(op Op, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err == nil {
		delete(v.failures, op)
		return
	}
	v.failures[op] = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and the write counter.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode succeeded.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// WriteCount returns how many successful Write calls were made since the last Reset.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
