package glyph

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGRasterizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wK.svg")
	require.NoError(t, os.WriteFile(path, []byte(testSVG), 0o644))

	data, err := SVGRasterizer{}.Rasterize(context.Background(), path, 90)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 90, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	r, _, _, a := img.At(45, 45).RGBA()
	assert.Equal(t, uint32(0xffff), a, "rect interior is opaque")
	assert.Greater(t, r, uint32(0xf000))

	_, _, _, a = img.At(2, 2).RGBA()
	assert.Zero(t, a, "background is transparent")
}

func TestSVGRasterizerAspectRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 60"><rect width="40" height="60" fill="#000"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o644))

	data, err := SVGRasterizer{}.Rasterize(context.Background(), path, 40)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestSVGRasterizerMissingFile(t *testing.T) {
	_, err := SVGRasterizer{}.Rasterize(context.Background(), filepath.Join(t.TempDir(), "x.svg"), 32)
	assert.ErrorIs(t, err, ErrProcess)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
