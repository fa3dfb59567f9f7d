package glyph

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/nfnt/resize"
	"golang.org/x/sync/singleflight"
)

// Option configures a Provider during creation.
type Option func(*options)

type options struct {
	rasterizer Rasterizer
	logger     *slog.Logger
}

// WithRasterizer replaces the rasterizer selected by Source.Backend.
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithLogger sets the logger for cache and rasterizer diagnostics.
// By default the provider logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Provider renders piece glyphs of one theme at one pixel width.
//
// Provider is safe for concurrent use. Concurrent misses of the same piece
// share one rasterization.
type Provider struct {
	size   int
	src    Source
	themes []string

	tiers      []Tier
	rasterizer Rasterizer
	logger     *slog.Logger

	group          singleflight.Group
	hits           []atomic.Uint64 // per tier
	misses         atomic.Uint64
	rasterizations atomic.Uint64
}

// New creates a provider for glyphs size pixels wide.
//
// The theme is validated immediately: if src.Theme is not one of
// ListThemes(src.AssetRoot), or the asset root cannot be read, New returns a
// *ConfigurationError wrapping ErrThemeNotFound.
func New(size int, src Source, opts ...Option) (*Provider, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	if size <= 0 {
		return nil, &ConfigurationError{Field: "size", Value: strconv.Itoa(size), Err: ErrInvalidSize}
	}

	themes, err := ListThemes(src.AssetRoot)
	if err != nil {
		// No asset root means no theme at all.
		return nil, &ConfigurationError{Field: "theme", Value: src.Theme, Err: errors.Join(ErrThemeNotFound, err)}
	}
	if !slices.Contains(themes, src.Theme) {
		return nil, &ConfigurationError{Field: "theme", Value: src.Theme, Err: ErrThemeNotFound}
	}

	r := o.rasterizer
	if r == nil {
		if r, err = src.NewRasterizer(); err != nil {
			return nil, err
		}
	}

	tiers := []Tier{newMemoryTier()}
	if dir := src.CacheDir(size); dir != "" {
		tiers = append(tiers, &diskTier{dir: dir, readOnly: src.ReadOnlyCache})
	}

	return &Provider{
		size:       size,
		src:        src,
		themes:     themes,
		tiers:      tiers,
		rasterizer: r,
		logger:     o.logger,
		hits:       make([]atomic.Uint64, len(tiers)),
	}, nil
}

// Size returns the glyph width in pixels.
func (p *Provider) Size() int {
	return p.size
}

// Theme returns the theme the provider renders.
func (p *Provider) Theme() string {
	return p.src.Theme
}

// Themes returns the themes found under the asset root when the provider
// was created.
func (p *Provider) Themes() []string {
	return slices.Clone(p.themes)
}

// Render returns the glyph of piece. It is RenderContext with
// context.Background.
func (p *Provider) Render(piece Piece) (image.Image, error) {
	return p.RenderContext(context.Background(), piece)
}

// RenderContext returns the glyph of piece, consulting the lookup chain
// first. On a full miss the rasterizer runs once and blocks until it
// finishes or ctx is done. Errors are *RasterizationError; nothing is
// cached on failure.
//
// Concurrent callers of the same piece share one rasterization. The shared
// run is detached from the caller that started it: a canceled caller gets
// its own error back while the others keep waiting for the result.
func (p *Provider) RenderContext(ctx context.Context, piece Piece) (image.Image, error) {
	if !piece.Valid() {
		return nil, ErrInvalidPiece
	}
	token := piece.Token()

	if img, ok := p.lookup(token); ok {
		return img, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &RasterizationError{Path: p.src.VectorPath(token), Kind: ErrProcess, Err: err}
	}

	detached := context.WithoutCancel(ctx)
	ch := p.group.DoChan(token, func() (any, error) {
		// A concurrent call may have finished between lookup and DoChan.
		if img, ok, _ := p.tiers[0].Load(token); ok {
			p.hits[0].Add(1)
			return img, nil
		}
		p.misses.Add(1)
		img, err := p.rasterize(detached, token)
		if err != nil {
			return nil, err
		}
		p.store(len(p.tiers), token, img)
		return img, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			p.logger.Debug("glyph: shared rasterization", "token", token)
		}
		return res.Val.(image.Image), nil
	case <-ctx.Done():
		return nil, &RasterizationError{Path: p.src.VectorPath(token), Kind: ErrProcess, Err: ctx.Err()}
	}
}

// lookup walks the tiers in order. A hit in tier i is promoted into
// tiers[:i].
func (p *Provider) lookup(token string) (image.Image, bool) {
	for i, t := range p.tiers {
		img, ok, err := t.Load(token)
		if err != nil {
			p.logger.Warn("glyph: cache tier failed", "tier", t.Name(), "token", token, "err", err)
			continue
		}
		if !ok {
			continue
		}
		p.hits[i].Add(1)
		p.logger.Debug("glyph: cache hit", "tier", t.Name(), "token", token)
		img = p.fit(img)
		p.store(i, token, img)
		return img, true
	}
	return nil, false
}

// store writes img into tiers[:upto]. Tiers are memoization only, so write
// failures are logged and dropped.
func (p *Provider) store(upto int, token string, img image.Image) {
	for _, t := range p.tiers[:upto] {
		if err := t.Store(token, img); err != nil {
			p.logger.Warn("glyph: cache store failed", "tier", t.Name(), "token", token, "err", err)
		}
	}
}

func (p *Provider) rasterize(ctx context.Context, token string) (image.Image, error) {
	path := p.src.VectorPath(token)
	p.logger.Debug("glyph: rasterize", "path", path, "width", p.size)

	data, err := p.rasterizer.Rasterize(ctx, path, p.size)
	if err != nil {
		var rerr *RasterizationError
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, &RasterizationError{Path: path, Kind: ErrProcess, Err: err}
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &RasterizationError{Path: path, Kind: ErrOutput, Err: err}
	}
	p.rasterizations.Add(1)
	return p.fit(img), nil
}

// fit scales img to the provider width when a rasterizer or an old cache
// file disagrees with it. The aspect ratio is kept.
func (p *Provider) fit(img image.Image) image.Image {
	if img.Bounds().Dx() == p.size {
		return img
	}
	p.logger.Debug("glyph: resize", "from", img.Bounds().Dx(), "to", p.size)
	return resize.Resize(uint(p.size), 0, img, resize.Lanczos3) //nolint:gosec // size is positive
}

// Stats reports how glyph requests were served.
type Stats struct {
	// Hits counts lookups served by each tier, keyed by tier name
	// ("memory", "disk").
	Hits map[string]uint64
	// Misses counts requests that fell through every tier and reached the
	// rasterizer. Callers sharing one rasterization count once.
	Misses uint64
	// Rasterizations counts successful rasterizer runs.
	Rasterizations uint64
	// Cached is the number of glyphs held in memory.
	Cached int
}

// Stats returns a snapshot of the provider counters.
func (p *Provider) Stats() Stats {
	s := Stats{
		Hits:           make(map[string]uint64, len(p.tiers)),
		Misses:         p.misses.Load(),
		Rasterizations: p.rasterizations.Load(),
	}
	if m, ok := p.tiers[0].(*memoryTier); ok {
		s.Cached = m.entries.Len()
	}
	for i, t := range p.tiers {
		s.Hits[t.Name()] = p.hits[i].Load()
	}
	return s
}
