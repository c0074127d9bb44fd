// ABOUTME: Pre-sets the lipgloss background so rendering never queries the terminal
// ABOUTME: Import with _ from main; an OSC 11 reply would arrive on stdin as keystrokes

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// lipgloss resolves AdaptiveColor by asking the terminal for its
	// background (OSC 11). While stdin is captured byte by byte, the
	// reply would be queued as input. With an explicit value the query
	// is never sent.
	lipgloss.SetHasDarkBackground(true)
}
