package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which entries of a suite directory are skipped
type Filter struct {
	patterns []string
}

// NewFilter creates a new Filter from doublestar patterns relative to the suite root
func NewFilter(patterns []string) *Filter {
	return &Filter{patterns: patterns}
}

// Ignored reports whether path, found while walking root, is skipped.
// Names starting with "." or "_" are always skipped, except suite initialization files.
// Directories also match patterns ending in "/**".
func (f *Filter) Ignored(root, path string, isDir bool) bool {
	name := filepath.Base(path)
	if (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) && !isInitFile(name) {
		return true
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range f.patterns {
		if match(pattern, relPath) || (isDir && match(pattern, relPath+"/")) {
			return true
		}
	}
	return false
}

func match(pattern, relPath string) bool {
	matched, err := doublestar.Match(pattern, relPath)
	return err == nil && matched
}

func isInitFile(name string) bool {
	return strings.TrimSuffix(name, filepath.Ext(name)) == "__init__"
}
