// ABOUTME: Error banner printed on stderr after the terminal has been restored
// ABOUTME: Styled with lipgloss; falls back to plain text when stderr has no color support

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(0, 1)
	bannerTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// printError writes err as a bordered banner.
func printError(w io.Writer, err error) {
	body := bannerTitle.Render("termwalk: error") + "\n" + strings.TrimSpace(err.Error())
	fmt.Fprintln(w, bannerStyle.Render(body))
}
