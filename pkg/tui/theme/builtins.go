// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:  ANSI256(250),
			Glyph: ANSI256(203),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:  NewColor("\x1b[30m"),
			Glyph: ANSI256(160),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:  NewColor("\x1b[39m"),
			Glyph: NewColor("\x1b[39m").Bold(),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
