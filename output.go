package ggchess

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	// #nosec G304 -- output path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ggchess: create %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("ggchess: encode %s: %w", path, err)
	}
	return f.Close()
}
