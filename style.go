package ggchess

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchess/glyph"
)

// DefaultFontSize is the label size of DefaultStyle.
const DefaultFontSize = 24

// Style is the complete, immutable appearance of a rendered board.
// Start from DefaultStyle and override fields as needed.
type Style struct {
	Square SquareStyle
	Text   TextStyle
	Glyphs glyph.Source
}

// SquareStyle holds cell fill colors. Every color is selected by the cell
// parity, not by rank or file.
type SquareStyle struct {
	Light          gg.RGBA
	Dark           gg.RGBA
	LightHighlight gg.RGBA
	DarkHighlight  gg.RGBA
}

// Fill returns the normal fill of a cell.
func (s SquareStyle) Fill(p Parity) gg.RGBA {
	if p == Dark {
		return s.Dark
	}
	return s.Light
}

// Highlight returns the fill of a highlighted cell.
func (s SquareStyle) Highlight(p Parity) gg.RGBA {
	if p == Dark {
		return s.DarkHighlight
	}
	return s.LightHighlight
}

// TextStyle configures the coordinate labels drawn along the bottom and
// right edges.
type TextStyle struct {
	Enabled bool

	// Light is the label color on light cells, Dark on dark cells.
	Light gg.RGBA
	Dark  gg.RGBA

	// FontSize in points at 72 dpi, i.e. pixels.
	FontSize float64

	// Padding is the inset of a label from the cell edge, in pixels.
	Padding int

	// FontPath is a TTF/OTF file. Empty selects the bundled Go Bold font.
	FontPath string
}

// Color returns the label color for a cell.
func (t TextStyle) Color(p Parity) gg.RGBA {
	if p == Dark {
		return t.Dark
	}
	return t.Light
}

// DefaultStyle returns the classic brown board with coordinate labels and
// the cburnett piece set.
func DefaultStyle() Style {
	return Style{
		Square: SquareStyle{
			Light:          gg.Hex("#f0d9b5"),
			Dark:           gg.Hex("#b58863"),
			LightHighlight: gg.Hex("#cdd26a"),
			DarkHighlight:  gg.Hex("#aaa23a"),
		},
		Text: TextStyle{
			Enabled:  true,
			Light:    gg.Hex("#946f51"),
			Dark:     gg.Hex("#f0d9b5"),
			FontSize: DefaultFontSize,
			Padding:  8,
		},
		Glyphs: glyph.DefaultSource(),
	}
}
