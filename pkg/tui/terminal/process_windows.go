// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: The render loop re-reads the size every frame, so no listener is required.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows; there is no SIGWINCH.
func (t *ProcessTerminal) startResizeListener() {}
