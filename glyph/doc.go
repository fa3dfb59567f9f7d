// Package glyph produces raster images of chess piece glyphs.
//
// A [Provider] is bound to one theme and one pixel width. It resolves a
// [Piece] through an ordered lookup chain: the in-memory tier owned by the
// provider, the on-disk PNG cache, and finally a [Rasterizer] that converts
// the theme's SVG source to PNG.
//
// # Asset layout
//
//	<AssetRoot>/<theme>/<token>.svg        vector sources
//	<CacheRoot>/<theme>/<size>/<token>.png rasterized glyphs
//
// where token is [Piece.Token], for example "wK" or "bN".
//
// # Write-back policy
//
// The first tier that holds a glyph wins. A hit in a later tier is promoted
// into every earlier tier, and a freshly rasterized glyph is stored in every
// tier. A read-only disk tier is only read. Failed rasterizations are never
// stored anywhere.
//
// # Rasterizers
//
// [ExecRasterizer] runs an Inkscape compatible executable:
//
//	inkscape wK.svg -w 128 --export-type png -o -
//
// [SVGRasterizer] renders in process and needs no external tools.
package glyph
