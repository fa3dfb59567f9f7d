package ggchess

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchess/glyph"
)

var (
	whiteInk = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	blackInk = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// stubRasterizer draws a glyph as an opaque block over the middle half of
// a transparent square: white for "w" tokens, black for "b" tokens.
type stubRasterizer struct {
	mu    sync.Mutex
	calls int
	fail  error
}

func (s *stubRasterizer) Rasterize(_ context.Context, vectorPath string, width int) ([]byte, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}

	ink := whiteInk
	if strings.HasPrefix(filepath.Base(vectorPath), "b") {
		ink = blackInk
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	for y := width / 4; y < width*3/4; y++ {
		for x := width / 4; x < width*3/4; x++ {
			img.SetNRGBA(x, y, ink)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *stubRasterizer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// testStyle returns the default style with labels off, glyph assets in a
// temporary directory and no disk cache.
func testStyle(t *testing.T) Style {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, glyph.DefaultTheme)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range glyph.AllPieces() {
		if err := os.WriteFile(filepath.Join(dir, p.Token()+".svg"), []byte("<svg/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	style := DefaultStyle()
	style.Text.Enabled = false
	style.Glyphs.AssetRoot = root
	style.Glyphs.CacheRoot = ""
	return style
}

func newTestRenderer(t *testing.T, fen string, style Style, size int) (*Renderer, *stubRasterizer) {
	t.Helper()
	stub := &stubRasterizer{}
	r, err := NewRenderer(fen, style, WithSquareSize(size), WithRasterizer(stub))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, stub
}

func mustRender(t *testing.T, r *Renderer, highlighted ...Square) image.Image {
	t.Helper()
	img, err := r.Render(highlighted...)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img
}

// pixel returns the non-premultiplied color at (x, y).
func pixel(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// near reports whether got matches want within tol per channel.
func near(got, want color.NRGBA, tol uint8) bool {
	return absDiff(got.R, want.R) <= tol &&
		absDiff(got.G, want.G) <= tol &&
		absDiff(got.B, want.B) <= tol &&
		absDiff(got.A, want.A) <= tol
}

// nrgba converts a style color for comparison with pixels.
func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

const tolerance = 2
