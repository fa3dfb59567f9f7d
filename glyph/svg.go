package glyph

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGRasterizer renders SVG files in process with oksvg. The output height
// follows the aspect ratio of the SVG view box; the background is
// transparent.
type SVGRasterizer struct{}

// Rasterize implements Rasterizer.
func (SVGRasterizer) Rasterize(ctx context.Context, vectorPath string, width int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RasterizationError{Path: vectorPath, Kind: ErrProcess, Err: err}
	}

	// #nosec G304 -- path is built from the configured asset root and a token
	f, err := os.Open(vectorPath)
	if err != nil {
		return nil, &RasterizationError{Path: vectorPath, Kind: ErrProcess, Err: err}
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.WarnErrorMode)
	if err != nil {
		return nil, &RasterizationError{Path: vectorPath, Kind: ErrProcess, Err: err}
	}

	w := float64(width)
	h := w
	if icon.ViewBox.W > 0 && icon.ViewBox.H > 0 {
		h = w * icon.ViewBox.H / icon.ViewBox.W
	}
	height := max(int(math.Round(h)), 1)

	icon.SetTarget(0, 0, w, float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &RasterizationError{Path: vectorPath, Kind: ErrOutput, Err: err}
	}
	return buf.Bytes(), nil
}
