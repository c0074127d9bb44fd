// ABOUTME: Error is the single failure type a frame can return
// ABOUTME: It records which frame phase hit the surface error and unwraps to the cause

package game

import "fmt"

// Frame phases that touch the surface.
const (
	PhaseSize    = "reading viewport size"
	PhaseClear   = "clearing"
	PhaseOverlay = "drawing overlay"
	PhaseEntity  = "drawing entity"
	PhaseFlush   = "flushing"
)

// Error reports a surface failure during a frame. The loop stops after
// returning one.
type Error struct {
	Phase string
	Frame uint64
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("frame %d: %s: %v", e.Frame, e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
