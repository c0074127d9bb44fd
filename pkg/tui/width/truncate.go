// ABOUTME: Truncate cuts a string to a column budget without splitting grapheme clusters
// ABOUTME: Escape sequences are copied through; a wide cluster that does not fit is dropped whole

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate returns the longest prefix of s that fits in maxCols cells.
// Unlike an ellipsis-style shortener it never adds characters, so the
// result can be written at column 0 of a row without wrapping.
func Truncate(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) <= maxCols {
			return s
		}
		return s[:maxCols]
	}
	if VisibleWidth(s) <= maxCols {
		return s
	}

	var b strings.Builder
	col := 0
	full := false
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			// Sequences past the cut are kept so trailing resets still apply.
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		i += len(s[i:]) - len(rest)
		if full {
			continue
		}
		cw := graphemeWidth(cluster)
		if col+cw > maxCols {
			full = true
			continue
		}
		b.WriteString(cluster)
		col += cw
	}
	return b.String()
}
