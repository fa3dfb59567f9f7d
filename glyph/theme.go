package glyph

import (
	"os"
	"sort"
)

// ListThemes returns the sorted names of the theme directories under root.
func ListThemes(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &ConfigurationError{Field: "asset root", Value: root, Err: err}
	}

	themes := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			themes = append(themes, e.Name())
		}
	}
	sort.Strings(themes)
	return themes, nil
}
