package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is a suite file or directory found on disk
type Source struct {
	Path     string
	IsDir    bool
	InitFile string    // Initialization file of a directory, if any
	Children []*Source // Child sources in load order
}

// Scanner finds suite sources in a file or directory
type Scanner struct {
	extensions map[string]bool
	filter     *Filter
}

// NewScanner creates a new Scanner reading files with the given extensions inside directories
func NewScanner(extensions []string, filter *Filter) *Scanner {
	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[strings.ToLower(ext)] = true
	}
	return &Scanner{extensions: extMap, filter: filter}
}

// Scan builds the source tree rooted at root
func (s *Scanner) Scan(root string) (*Source, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	// Suite names come from the base name, so "." must resolve to the real directory
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSuiteNotFound, root)
		}
		return nil, fmt.Errorf("suite path %s: %w", root, err)
	}

	if !info.IsDir() {
		if !s.acceptsFile(root) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, root)
		}
		return &Source{Path: root}, nil
	}

	return s.scanDir(root, root)
}

func (s *Scanner) scanDir(root, dir string) (*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	src := &Source{Path: dir, IsDir: true}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if s.filter.Ignored(root, path, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			child, err := s.scanDir(root, path)
			if err != nil {
				return nil, err
			}
			src.Children = append(src.Children, child)
			continue
		}

		if !s.extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		if isInitFile(entry.Name()) {
			if src.InitFile == "" && !isJSONFile(path) {
				src.InitFile = path
			}
			continue
		}

		src.Children = append(src.Children, &Source{Path: path})
	}

	return src, nil
}

// acceptsFile reports whether a file given directly as the suite path can be loaded
func (s *Scanner) acceptsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return s.extensions[ext] || ext == robotExtension || isJSONFile(path)
}
