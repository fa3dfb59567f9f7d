package ggchess

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchess/glyph"
)

// DefaultSquareSize is the cell size in pixels when WithSquareSize is not
// given.
const DefaultSquareSize = 128

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := ggchess.NewRenderer(fen, ggchess.DefaultStyle(),
//	    ggchess.WithSquareSize(64))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	squareSize int
	rasterizer glyph.Rasterizer
	glyphs     *glyph.Provider
	font       *text.FontSource
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		squareSize: DefaultSquareSize,
	}
}

// WithSquareSize sets the cell size in pixels. The image is 8*n pixels
// square.
func WithSquareSize(n int) Option {
	return func(o *options) {
		o.squareSize = n
	}
}

// WithRasterizer replaces the rasterizer selected by Style.Glyphs.Backend.
//
// Example:
//
//	// Render glyphs in process instead of running inkscape
//	r, err := ggchess.NewRenderer(fen, style,
//	    ggchess.WithRasterizer(glyph.SVGRasterizer{}))
func WithRasterizer(r glyph.Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithGlyphProvider shares an existing provider between renderers. Its size
// must equal the square size, or NewRenderer fails.
func WithGlyphProvider(p *glyph.Provider) Option {
	return func(o *options) {
		o.glyphs = p
	}
}

// WithFontSource uses an already loaded font for the labels instead of
// Style.Text.FontPath.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}
