// ABOUTME: Color and palette types for the two painted roles: instruction text and the glyph
// ABOUTME: Color.Code is the SGR sequence queued before text; constructors cover 16, 256, and 24-bit colors

package theme

import (
	"strconv"
	"strings"
)

// Color represents a terminal foreground color as a raw SGR sequence.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// RGB returns a 24-bit foreground color.
func RGB(r, g, b uint8) Color {
	var sb strings.Builder
	sb.WriteString("\x1b[38;2;")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte('m')
	return Color{code: sb.String()}
}

// ANSI256 returns a foreground color from the 256-color palette.
func ANSI256(index uint8) Color {
	return Color{code: "\x1b[38;5;" + strconv.Itoa(int(index)) + "m"}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// IsZero reports whether c carries no escape code.
func (c Color) IsZero() bool {
	return c.code == ""
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Palette holds the colors of everything painted in a frame.
type Palette struct {
	Text  Color // instruction line
	Glyph Color // the movable entity
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns white instructions and a pure red glyph.
func DefaultPalette() Palette {
	return Palette{
		Text:  NewColor("\x1b[97m"),
		Glyph: RGB(255, 0, 0),
	}
}

// WithOverrides returns a copy of p where every non-zero color in o replaces p's.
func (p Palette) WithOverrides(o Palette) Palette {
	if !o.Text.IsZero() {
		p.Text = o.Text
	}
	if !o.Glyph.IsZero() {
		p.Glyph = o.Glyph
	}
	return p
}
