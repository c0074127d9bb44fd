// ABOUTME: Settings loading from an optional YAML file layered over built-in defaults
// ABOUTME: Validates theme, glyph width, colors, and log level before anything touches the terminal

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termwalk/internal/log"
	"github.com/mauromedda/termwalk/pkg/tui/theme"
	"github.com/mauromedda/termwalk/pkg/tui/width"
)

// GlyphCells is the number of terminal cells one grid column occupies.
const GlyphCells = 2

// Settings holds the user-tunable presentation options.
type Settings struct {
	Theme      string `yaml:"theme"`
	Glyph      string `yaml:"glyph"`
	GlyphColor string `yaml:"glyph_color"`
	TextColor  string `yaml:"text_color"`
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"`
}

// Defaults returns the settings used when no file is present.
func Defaults() *Settings {
	return &Settings{
		Theme:    "default",
		Glyph:    "[]",
		LogLevel: "info",
	}
}

// Load reads settings from path. With an empty path the default file is
// tried and a missing one is not an error; an explicit path must exist.
// The result is merged onto Defaults, env-expanded, and validated.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile()
	}

	file, err := loadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			file = &Settings{}
		} else {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	s := merge(Defaults(), file)
	ResolveEnvVars(s)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// loadFile decodes one YAML file. Unknown keys are rejected.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-empty fields of over onto base.
func merge(base, over *Settings) *Settings {
	result := *base
	if over == nil {
		return &result
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}
	if over.Glyph != "" {
		result.Glyph = over.Glyph
	}
	if over.GlyphColor != "" {
		result.GlyphColor = over.GlyphColor
	}
	if over.TextColor != "" {
		result.TextColor = over.TextColor
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	return &result
}

// Override applies command-line values on top of s. Empty values keep
// the current setting.
func (s *Settings) Override(over Settings) {
	*s = *merge(s, &over)
}

// Validate reports the first setting that cannot be used.
func (s *Settings) Validate() error {
	if theme.Builtin(s.Theme) == nil {
		return fmt.Errorf("unknown theme %q (have %v)", s.Theme, theme.BuiltinNames())
	}
	if w := width.VisibleWidth(s.Glyph); w != GlyphCells {
		return fmt.Errorf("glyph %q is %d cells wide, want %d", s.Glyph, w, GlyphCells)
	}
	if _, err := s.Palette(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Palette returns the color overrides named in the settings. Unset
// colors stay zero so the theme's own colors apply.
func (s *Settings) Palette() (theme.Palette, error) {
	var p theme.Palette
	if s.TextColor != "" {
		c, err := theme.ParseColor(s.TextColor)
		if err != nil {
			return p, fmt.Errorf("text_color: %w", err)
		}
		p.Text = c
	}
	if s.GlyphColor != "" {
		c, err := theme.ParseColor(s.GlyphColor)
		if err != nil {
			return p, fmt.Errorf("glyph_color: %w", err)
		}
		p.Glyph = c
	}
	return p, nil
}

// Level returns the parsed log level, falling back to info.
func (s *Settings) Level() slog.Level {
	l, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return l
}
