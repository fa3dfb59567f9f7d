package ggchess

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/ggchess/glyph"
)

// Renderer draws one position in one style at one square size.
//
// A Renderer is safe for concurrent use: every Render call paints a fresh
// canvas, and the glyph provider synchronizes its caches.
type Renderer struct {
	position   Position
	style      Style
	squareSize int
	glyphs     *glyph.Provider
	face       text.Face
}

// Render parses fen and draws it. It is shorthand for NewRenderer followed
// by Renderer.Render.
//
// Example:
//
//	img, err := ggchess.Render("k7/8/8/8/8/8/8/K7 w - - 0 1",
//	    ggchess.DefaultStyle(), 64, ggchess.A8)
func Render(fen string, style Style, squareSize int, highlighted ...Square) (image.Image, error) {
	r, err := NewRenderer(fen, style, WithSquareSize(squareSize))
	if err != nil {
		return nil, err
	}
	return r.Render(highlighted...)
}

// NewRenderer parses fen and creates a Renderer for it. A malformed FEN
// fails with *PositionError before anything else is loaded.
func NewRenderer(fen string, style Style, opts ...Option) (*Renderer, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewRendererForPosition(pos, style, opts...)
}

// NewRendererForPosition creates a Renderer for pos.
//
// The glyph provider is created here, so an unknown theme fails with
// *ConfigurationError, and the label font is loaded here, so a missing font
// fails with *AssetError.
func NewRendererForPosition(pos Position, style Style, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.squareSize <= 0 {
		return nil, &ConfigurationError{Field: "square size", Value: strconv.Itoa(o.squareSize), Err: glyph.ErrInvalidSize}
	}
	if style.Text.Enabled && style.Text.FontSize <= 0 {
		return nil, &ConfigurationError{
			Field: "font size",
			Value: strconv.FormatFloat(style.Text.FontSize, 'g', -1, 64),
			Err:   glyph.ErrInvalidSize,
		}
	}

	glyphs := o.glyphs
	if glyphs == nil {
		gopts := []glyph.Option{glyph.WithLogger(Logger())}
		if o.rasterizer != nil {
			gopts = append(gopts, glyph.WithRasterizer(o.rasterizer))
		}
		var err error
		if glyphs, err = glyph.New(o.squareSize, style.Glyphs, gopts...); err != nil {
			return nil, err
		}
	} else if glyphs.Size() != o.squareSize {
		return nil, &ConfigurationError{
			Field: "glyph provider size",
			Value: strconv.Itoa(glyphs.Size()),
			Err:   fmt.Errorf("ggchess: provider renders %dpx glyphs for %dpx squares", glyphs.Size(), o.squareSize),
		}
	}

	src := o.font
	if src == nil {
		var err error
		if src, err = loadFont(style.Text.FontPath); err != nil {
			return nil, err
		}
	}

	fontSize := style.Text.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize // labels are disabled
	}

	return &Renderer{
		position:   pos,
		style:      style,
		squareSize: o.squareSize,
		glyphs:     glyphs,
		face:       src.Face(fontSize),
	}, nil
}

// loadFont loads the label font, falling back to the bundled Go Bold font.
func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		src, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			return nil, &AssetError{Asset: "font", Err: err}
		}
		return src, nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, &AssetError{Asset: "font", Path: path, Err: err}
	}
	return src, nil
}

// SquareSize returns the cell size in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Glyphs returns the glyph provider used by r.
func (r *Renderer) Glyphs() *glyph.Provider {
	return r.glyphs
}

// Render draws the board with the given squares highlighted. It is
// RenderContext with context.Background.
func (r *Renderer) Render(highlighted ...Square) (image.Image, error) {
	return r.RenderContext(context.Background(), highlighted...)
}

// RenderContext draws the board on a fresh 8*size by 8*size canvas.
// Highlighted squares are a set: repeats have no effect. ctx bounds glyph
// rasterization. On error no image is returned.
func (r *Renderer) RenderContext(ctx context.Context, highlighted ...Square) (image.Image, error) {
	start := time.Now()

	marked := make(map[Square]bool, len(highlighted))
	for _, sq := range highlighted {
		marked[sq] = true
	}

	n := 8 * r.squareSize
	dc := gg.NewContext(n, n)
	defer dc.Close()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if err := r.drawCell(ctx, dc, col, row, marked); err != nil {
				return nil, err
			}
		}
	}

	img := dc.Image()
	Logger().Debug("ggchess: rendered board",
		"size", n, "highlighted", len(marked), "elapsed", time.Since(start))
	return img, nil
}

func (r *Renderer) drawCell(ctx context.Context, dc *gg.Context, col, row int, marked map[Square]bool) error {
	sq := SquareAt(col, row)
	parity := CellParity(col, row)
	s := float64(r.squareSize)
	x, y := float64(col)*s, float64(row)*s

	fill := r.style.Square.Fill(parity)
	if marked[sq] {
		fill = r.style.Square.Highlight(parity)
	}
	setColor(dc, fill)
	dc.DrawRectangle(x, y, s, s)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("ggchess: fill %v: %w", sq, err)
	}

	if r.style.Text.Enabled {
		r.drawLabels(dc, col, row, parity)
	}

	piece, ok := r.position.PieceAt(sq)
	if !ok {
		return nil
	}
	img, err := r.glyphs.RenderContext(ctx, piece)
	if err != nil {
		return err
	}
	// Source-over keeps the cell visible under transparent glyph pixels.
	dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             x,
		Y:             y,
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// drawLabels draws the file letter at the bottom-left of bottom row cells
// and the rank digit at the top-right of right column cells. The corner
// cell gets both.
func (r *Renderer) drawLabels(dc *gg.Context, col, row int, parity Parity) {
	s := float64(r.squareSize)
	pad := float64(r.style.Text.Padding)
	x, y := float64(col)*s, float64(row)*s

	dc.SetFont(r.face)
	setColor(dc, r.style.Text.Color(parity))

	if row == 7 {
		dc.DrawString(fileNames[col:col+1], x+pad, y+s-pad)
	}
	if col == 7 {
		label := rankNames[7-row : 8-row]
		w, _ := dc.MeasureString(label)
		dc.DrawString(label, x+s-pad-w, y+pad+r.face.Metrics().Ascent)
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
