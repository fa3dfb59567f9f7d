// Package config loads a ggchess style from TOML files.
//
// Files are read in order and later files override earlier ones; keys that
// no file sets keep the values of ggchess.DefaultStyle. Colors are hex
// strings such as "#f0d9b5".
//
//	square_size = 96
//
//	[square]
//	light = "#eeeed2"
//	dark = "#769656"
//
//	[text]
//	enabled = false
//
//	[glyphs]
//	theme = "merida"
//	backend = "builtin"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchess"
	"github.com/gogpu/ggchess/glyph"
)

// Config is a loaded configuration.
type Config struct {
	SquareSize int
	Style      ggchess.Style
}

type fileConfig struct {
	SquareSize int         `koanf:"square_size"`
	Square     squareTable `koanf:"square"`
	Text       textTable   `koanf:"text"`
	Glyphs     glyphsTable `koanf:"glyphs"`
}

type squareTable struct {
	Light          string `koanf:"light"`
	Dark           string `koanf:"dark"`
	LightHighlight string `koanf:"light_highlight"`
	DarkHighlight  string `koanf:"dark_highlight"`
}

type textTable struct {
	Enabled  bool    `koanf:"enabled"`
	Light    string  `koanf:"light"` // label color on light cells
	Dark     string  `koanf:"dark"`  // label color on dark cells
	FontSize float64 `koanf:"font_size"`
	Padding  int     `koanf:"padding"`
	FontPath string  `koanf:"font_path"`
}

type glyphsTable struct {
	Theme         string        `koanf:"theme"`
	AssetRoot     string        `koanf:"asset_root"`
	CacheRoot     string        `koanf:"cache_root"`
	ReadOnlyCache bool          `koanf:"read_only_cache"`
	Backend       string        `koanf:"backend"`
	Rasterizer    string        `koanf:"rasterizer"`
	Timeout       time.Duration `koanf:"timeout"`
}

// DefaultPaths returns the files Load reads when called without paths, in
// increasing priority: the user config file, then ./ggchess.toml.
func DefaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "ggchess", "config.toml"),
		"ggchess.toml",
	}
}

// Load reads the given TOML files, skipping those that do not exist. With
// no paths it reads DefaultPaths.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	fc := defaults()
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return fc.resolve()
}

// defaults mirrors ggchess.DefaultStyle so that unset keys keep their
// default values after unmarshaling.
func defaults() fileConfig {
	s := ggchess.DefaultStyle()
	return fileConfig{
		SquareSize: ggchess.DefaultSquareSize,
		Square: squareTable{
			Light:          hex(s.Square.Light),
			Dark:           hex(s.Square.Dark),
			LightHighlight: hex(s.Square.LightHighlight),
			DarkHighlight:  hex(s.Square.DarkHighlight),
		},
		Text: textTable{
			Enabled:  s.Text.Enabled,
			Light:    hex(s.Text.Light),
			Dark:     hex(s.Text.Dark),
			FontSize: s.Text.FontSize,
			Padding:  s.Text.Padding,
			FontPath: s.Text.FontPath,
		},
		Glyphs: glyphsTable{
			Theme:         s.Glyphs.Theme,
			AssetRoot:     s.Glyphs.AssetRoot,
			CacheRoot:     s.Glyphs.CacheRoot,
			ReadOnlyCache: s.Glyphs.ReadOnlyCache,
			Backend:       s.Glyphs.Backend,
			Rasterizer:    s.Glyphs.Rasterizer,
			Timeout:       s.Glyphs.Timeout,
		},
	}
}

func (fc fileConfig) resolve() (*Config, error) {
	if fc.SquareSize <= 0 {
		return nil, fmt.Errorf("config: square_size must be positive, got %d", fc.SquareSize)
	}

	var style ggchess.Style
	colors := []struct {
		key string
		src string
		dst *gg.RGBA
	}{
		{"square.light", fc.Square.Light, &style.Square.Light},
		{"square.dark", fc.Square.Dark, &style.Square.Dark},
		{"square.light_highlight", fc.Square.LightHighlight, &style.Square.LightHighlight},
		{"square.dark_highlight", fc.Square.DarkHighlight, &style.Square.DarkHighlight},
		{"text.light", fc.Text.Light, &style.Text.Light},
		{"text.dark", fc.Text.Dark, &style.Text.Dark},
	}
	for _, c := range colors {
		col, err := colorful.Hex(c.src)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", c.key, err)
		}
		*c.dst = gg.RGB(col.R, col.G, col.B)
	}

	style.Text.Enabled = fc.Text.Enabled
	style.Text.FontSize = fc.Text.FontSize
	style.Text.Padding = fc.Text.Padding
	style.Text.FontPath = expandPath(fc.Text.FontPath)

	style.Glyphs = glyph.Source{
		Theme:         fc.Glyphs.Theme,
		AssetRoot:     expandPath(fc.Glyphs.AssetRoot),
		CacheRoot:     expandPath(fc.Glyphs.CacheRoot),
		ReadOnlyCache: fc.Glyphs.ReadOnlyCache,
		Backend:       fc.Glyphs.Backend,
		Rasterizer:    expandPath(fc.Glyphs.Rasterizer),
		Timeout:       fc.Glyphs.Timeout,
	}

	return &Config{SquareSize: fc.SquareSize, Style: style}, nil
}

func hex(c gg.RGBA) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
