// Package ggchess renders chess positions to raster images.
//
// # Quick Start
//
//	import "github.com/gogpu/ggchess"
//
//	img, err := ggchess.Render(
//	    "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
//	    ggchess.DefaultStyle(), 128, ggchess.C7, ggchess.C5)
//	if err != nil {
//	    return err
//	}
//	ggchess.SavePNG("board.png", img)
//
// # Rendering
//
// A [Renderer] paints the 64 cells with the [Style] fill colors, replacing
// the fill of highlighted squares, draws the file letters along the bottom
// edge and the rank digits along the right edge, and composites the piece
// glyphs from a [glyph.Provider] onto their cells. Rank 8 is at the top and
// file a at the left.
//
// Drawing is done with github.com/gogpu/gg on a fresh canvas per call, so
// highlights of one call never show up in another.
//
// # Coordinate System
//
// Cells are addressed by image column and row, origin at the top-left.
// [SquareAt] maps a cell to a [Square] (file = col, rank = 7 - row) and
// [Square.Cell] maps back. [CellParity] is (col+row) mod 2 and selects the
// fill, highlight and label colors alike.
//
// # Errors
//
//   - [PositionError]: malformed FEN, reported before any other work
//   - [ConfigurationError]: unknown theme, backend or size
//   - [AssetError]: the label font could not be loaded
//   - [RasterizationError]: a glyph could not be rasterized
//
// All errors abort the render; no partial image is returned.
package ggchess
