package ggchess

import (
	"fmt"

	"github.com/gogpu/ggchess/glyph"
)

// ConfigurationError reports an invalid theme, backend or size.
type ConfigurationError = glyph.ConfigurationError

// RasterizationError reports a failed glyph rasterization.
type RasterizationError = glyph.RasterizationError

// PositionError reports a malformed FEN string. It is returned before any
// rendering work begins.
type PositionError struct {
	FEN string
	Err error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("ggchess: invalid position %q: %v", e.FEN, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// AssetError reports a bundled or configured asset that could not be loaded.
type AssetError struct {
	Asset string // "font"
	Path  string // empty for the bundled font
	Err   error
}

func (e *AssetError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ggchess: load bundled %s: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("ggchess: load %s %s: %v", e.Asset, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
