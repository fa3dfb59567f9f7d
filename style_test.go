package ggchess

import (
	"testing"

	"github.com/gogpu/ggchess/glyph"
)

func TestStyleParitySelection(t *testing.T) {
	s := DefaultStyle()

	if s.Square.Fill(Light) != s.Square.Light || s.Square.Fill(Dark) != s.Square.Dark {
		t.Error("Fill does not follow parity")
	}
	if s.Square.Highlight(Light) != s.Square.LightHighlight || s.Square.Highlight(Dark) != s.Square.DarkHighlight {
		t.Error("Highlight does not follow parity")
	}
	if s.Text.Color(Light) != s.Text.Light || s.Text.Color(Dark) != s.Text.Dark {
		t.Error("label Color does not follow parity")
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()

	if got := nrgba(s.Square.Light); got.R != 0xf0 || got.G != 0xd9 || got.B != 0xb5 {
		t.Errorf("light square = %v", got)
	}
	if got := nrgba(s.Square.Dark); got.R != 0xb5 || got.G != 0x88 || got.B != 0x63 {
		t.Errorf("dark square = %v", got)
	}
	if !s.Text.Enabled || s.Text.FontSize != 24 || s.Text.Padding != 8 {
		t.Errorf("text defaults = %+v", s.Text)
	}
	// Labels contrast with the cell they sit on.
	if s.Text.Dark != s.Square.Light {
		t.Error("labels on dark cells should use the light square color")
	}
	if s.Glyphs.Theme != glyph.DefaultTheme || s.Glyphs.Rasterizer != "inkscape" {
		t.Errorf("glyph source = %+v", s.Glyphs)
	}
}
