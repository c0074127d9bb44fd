// ABOUTME: ParseColor turns settings strings into Colors: names, palette indexes, and #rrggbb hex
// ABOUTME: Hex parsing goes through go-colorful, which accepts both #rgb and #rrggbb

package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":   "\x1b[30m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[97m",
	"grey":    "\x1b[90m",
	"gray":    "\x1b[90m",
	"default": "\x1b[39m",
}

// ParseColor parses a color name ("red"), a 256-color index ("208"),
// or a hex triplet ("#ff0000", "#f00").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if code, ok := namedColors[s]; ok {
		return NewColor(code), nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return ANSI256(uint8(n)), nil
}
