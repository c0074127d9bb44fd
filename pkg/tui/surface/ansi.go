// ABOUTME: Escape sequences emitted by Surface, one constant per terminal capability
// ABOUTME: Cursor positions are 0-indexed in the API and converted to 1-indexed CSI H here

package surface

import "strconv"

const (
	seqAltScreenEnter = "\x1b[?1049h"
	seqAltScreenLeave = "\x1b[?1049l"
	seqCursorHide     = "\x1b[?25l"
	seqCursorShow     = "\x1b[?25h"
	seqClearAll       = "\x1b[2J"
	seqSGR0           = "\x1b[0m"

	// Synchronized output (mode 2026): the terminal holds rendering
	// until the end marker, so a flushed frame appears all at once.
	seqSyncBegin = "\x1b[?2026h"
	seqSyncEnd   = "\x1b[?2026l"
)

// appendCursorPos appends CSI row;col H for a 0-indexed (col, row).
func appendCursorPos(dst []byte, col, row int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}
