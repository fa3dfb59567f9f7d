package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/ggchess/internal/cache"
)

// Tier is one level of the glyph lookup chain.
//
// Load reports a miss as (nil, false, nil). An error means the tier could
// not answer; the provider logs it and moves on to the next tier.
type Tier interface {
	Name() string
	Load(token string) (image.Image, bool, error)
	Store(token string, img image.Image) error
}

// memoryTier keeps glyphs for the lifetime of one provider.
type memoryTier struct {
	entries *cache.Cache[string, image.Image]
}

func newMemoryTier() *memoryTier {
	return &memoryTier{entries: cache.New[string, image.Image]()}
}

func (m *memoryTier) Name() string { return "memory" }

func (m *memoryTier) Load(token string) (image.Image, bool, error) {
	img, ok := m.entries.Get(token)
	return img, ok, nil
}

func (m *memoryTier) Store(token string, img image.Image) error {
	m.entries.Set(token, img)
	return nil
}

// diskTier reads and writes <dir>/<token>.png.
type diskTier struct {
	dir      string
	readOnly bool
}

func (d *diskTier) Name() string { return "disk" }

func (d *diskTier) path(token string) string {
	return filepath.Join(d.dir, token+".png")
}

func (d *diskTier) Load(token string) (image.Image, bool, error) {
	// #nosec G304 -- path is built from the configured cache root and a token
	f, err := os.Open(d.path(token))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("glyph: decode %s: %w", f.Name(), err)
	}
	return img, true, nil
}

// Store writes through a temporary file and a rename so readers never see a
// partial PNG. Concurrent writers race benignly: the content is the same.
func (d *diskTier) Store(token string, img image.Image) error {
	if d.readOnly {
		return nil
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("glyph: create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(d.dir, token+".*.tmp")
	if err != nil {
		return fmt.Errorf("glyph: create cache file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("glyph: encode cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("glyph: write cache file: %w", err)
	}
	return os.Rename(tmp.Name(), d.path(token))
}
