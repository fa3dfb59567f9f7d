package glyph

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Rasterizer backends selectable through Source.Backend.
const (
	BackendExec    = "exec"
	BackendBuiltin = "builtin"
)

// DefaultTheme is the theme used by DefaultSource.
const DefaultTheme = "cburnett"

// Source describes where glyphs come from and where rasterized glyphs are
// cached.
type Source struct {
	// Theme selects a subdirectory of AssetRoot.
	Theme string

	// AssetRoot holds one directory of SVG files per theme.
	AssetRoot string

	// CacheRoot holds rasterized PNG files. Empty disables the disk tier.
	CacheRoot string

	// ReadOnlyCache makes the disk tier lookup-only.
	ReadOnlyCache bool

	// Backend is BackendExec (the default when empty) or BackendBuiltin.
	Backend string

	// Rasterizer is the executable run by the exec backend.
	Rasterizer string

	// Timeout bounds one run of the exec backend. Zero means no limit.
	Timeout time.Duration
}

// DefaultSource returns the cburnett theme under the XDG data directory,
// cached under the XDG cache directory and rasterized by inkscape.
func DefaultSource() Source {
	return Source{
		Theme:      DefaultTheme,
		AssetRoot:  filepath.Join(xdg.DataHome, "ggchess", "pieces"),
		CacheRoot:  filepath.Join(xdg.CacheHome, "ggchess", "pieces"),
		Backend:    BackendExec,
		Rasterizer: "inkscape",
	}
}

// VectorPath returns the SVG source of the token in the selected theme.
func (s Source) VectorPath(token string) string {
	return filepath.Join(s.AssetRoot, s.Theme, token+".svg")
}

// CacheDir returns the directory of rasterized glyphs of the given width.
// It returns "" when the disk tier is disabled.
func (s Source) CacheDir(size int) string {
	if s.CacheRoot == "" {
		return ""
	}
	return filepath.Join(s.CacheRoot, s.Theme, strconv.Itoa(size))
}

// NewRasterizer returns the Rasterizer selected by Backend.
func (s Source) NewRasterizer() (Rasterizer, error) {
	switch s.Backend {
	case "", BackendExec:
		path := s.Rasterizer
		if path == "" {
			path = "inkscape"
		}
		return &ExecRasterizer{Path: path, Timeout: s.Timeout}, nil
	case BackendBuiltin:
		return SVGRasterizer{}, nil
	default:
		return nil, &ConfigurationError{Field: "backend", Value: s.Backend, Err: ErrUnknownBackend}
	}
}
