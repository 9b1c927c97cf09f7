package tabsite

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// Theme is a colour scheme name.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const themeKey = "theme"

// Palette is the set of colours a theme renders with.
type Palette struct {
	Background colorful.Color
	Surface    colorful.Color
	Text       colorful.Color
	Accent     colorful.Color
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Background: mustHex("#fdf6f0"),
		Surface:    mustHex("#ffffff"),
		Text:       mustHex("#3d3d3d"),
		Accent:     mustHex("#f4a6c1"),
	},
	ThemeDark: {
		Background: mustHex("#1e1b24"),
		Surface:    mustHex("#2a2632"),
		Text:       mustHex("#ece6f2"),
		Accent:     mustHex("#c3a6f4"),
	},
}

// Palette returns the colours for t.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeDark]
}

// Icon returns the toggle glyph: the sun switches to light, the moon to dark.
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// ThemeStore persists the theme preference in a JSON file through viper.
// The default is dark; any saved value other than "dark" means light.
type ThemeStore struct {
	v     *viper.Viper
	path  string
	theme Theme
}

// OpenThemeStore loads the preference from path. A missing file is not an
// error. An empty path keeps the preference in memory only.
func OpenThemeStore(path string) (*ThemeStore, error) {
	v := viper.New()
	v.SetDefault(themeKey, string(ThemeDark))
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading theme file: %w", err)
		}
	}
	ts := &ThemeStore{v: v, path: path, theme: ThemeLight}
	if v.GetString(themeKey) == string(ThemeDark) {
		ts.theme = ThemeDark
	}
	return ts, nil
}

// Theme returns the current theme.
func (ts *ThemeStore) Theme() Theme { return ts.theme }

// Toggle flips the theme and persists it.
func (ts *ThemeStore) Toggle() (Theme, error) {
	next := ThemeDark
	if ts.theme == ThemeDark {
		next = ThemeLight
	}
	ts.theme = next
	ts.v.Set(themeKey, string(next))
	if ts.path == "" {
		return next, nil
	}
	if err := ts.v.WriteConfigAs(ts.path); err != nil {
		return next, fmt.Errorf("writing theme file: %w", err)
	}
	return next, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
