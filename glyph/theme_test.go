package glyph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListThemes(t *testing.T) {
	root := newAssets(t, "merida", "cburnett", "alpha")
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))

	themes, err := ListThemes(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "cburnett", "merida"}, themes)

	again, err := ListThemes(root)
	require.NoError(t, err)
	assert.Equal(t, themes, again)
}

func TestListThemesMissingRoot(t *testing.T) {
	_, err := ListThemes(filepath.Join(t.TempDir(), "nope"))

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "asset root", cerr.Field)
}
