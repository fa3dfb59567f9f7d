package glyph

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// newAssets creates an asset root with one directory per theme, each holding
// the 12 SVG files, and returns the root.
func newAssets(t *testing.T, themes ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, theme := range themes {
		dir := filepath.Join(root, theme)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, p := range AllPieces() {
			if err := os.WriteFile(filepath.Join(dir, p.Token()+".svg"), []byte(testSVG), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">
<rect x="10" y="10" width="25" height="25" fill="#ff0000"/>
</svg>`

// encodePNG returns a w x h PNG filled with c.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// fakeRasterizer returns a solid PNG whose red channel depends on the file
// name, so different pieces produce different images.
type fakeRasterizer struct {
	mu    sync.Mutex
	calls map[string]int
	width int // output width; 0 means the requested width
	err   error
	data  []byte // raw output overriding the generated PNG
}

func (f *fakeRasterizer) Rasterize(_ context.Context, vectorPath string, width int) ([]byte, error) {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[filepath.Base(vectorPath)]++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if f.data != nil {
		return f.data, nil
	}
	if f.width > 0 {
		width = f.width
	}
	name := filepath.Base(vectorPath)
	shade := uint8(len(name)*17 + int(name[0]) + int(name[1]))
	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: shade, G: 10, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *fakeRasterizer) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

var errFake = errors.New("fake rasterizer failure")

// sameImage reports whether a and b have identical bounds and pixels.
func sameImage(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			r1, g1, b1, a1 := a.At(x, y).RGBA()
			r2, g2, b2, a2 := b.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}
	return true
}
