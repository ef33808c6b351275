// Package scan discovers the candidate files of a web project: it walks the
// project tree, filters out library, minimized, and oversized files, and
// offers heuristics for likely entry points and API endpoints. The
// dependency analyzer consumes its output as a plain list of file paths.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrNoFiles is returned when a scan finds no analyzable files.
	ErrNoFiles = errors.New("no relevant files found in the project directory")

	// ErrNotFound is returned when an explicitly named file is absent
	// from the project tree.
	ErrNotFound = errors.New("file not found in the root directory")
)

// DefaultMaxFileSize is the size cutoff above which files are treated as
// generated or vendored and skipped.
const DefaultMaxFileSize = 100 * 1024

// webExtensions are the file extensions eligible for analysis.
var webExtensions = map[string]bool{
	".php":  true,
	".js":   true,
	".html": true,
	".htm":  true,
	".css":  true,
}

// libraryIndicators are directory-name fragments that mark vendored or
// third-party code.
var libraryIndicators = []string{
	"vendor", "node_modules", "lib", "libs", "library", "libraries",
	"framework", "frameworks", "dist", "build", "external", "third-party",
}

// libraryFilePrefixes are file-name prefixes of well-known frontend
// libraries that are not part of the project's own code.
var libraryFilePrefixes = []string{"jquery", "bootstrap", "vue", "react", "angular", "lodash", "moment"}

// minimizedPatterns match minified or bundled asset names.
var minimizedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.min\.(js|css)$`),
	regexp.MustCompile(`-min\.(js|css)$`),
	regexp.MustCompile(`\.bundle\.(js|css)$`),
}

// Scanner walks a project root and selects candidate files for analysis.
type Scanner struct {
	Root             string
	ExcludeLibraries bool
	ExcludeMinimized bool
	MaxFileSize      int64

	// ExcludeDirs are additional directory names (exact match) pruned
	// from the walk, on top of the built-in library indicators.
	ExcludeDirs []string
}

// NewScanner returns a Scanner with the default exclusions enabled.
func NewScanner(root string) *Scanner {
	return &Scanner{
		Root:             root,
		ExcludeLibraries: true,
		ExcludeMinimized: true,
		MaxFileSize:      DefaultMaxFileSize,
	}
}

// Scan walks the root directory and returns every file that passes the
// extension and exclusion filters. It returns ErrNoFiles when nothing
// qualifies.
func (s *Scanner) Scan() ([]string, error) {
	var files []string

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if d.IsDir() {
			if path == s.Root {
				return nil
			}
			if s.ExcludeLibraries && s.isLibraryDirectory(d.Name()) {
				return filepath.SkipDir
			}
			for _, name := range s.ExcludeDirs {
				if d.Name() == name {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !webExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if s.shouldInclude(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.Root, err)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// Find resolves a list of explicit file names against the project tree.
// Every name must exist somewhere under the root; a missing name yields an
// error wrapping ErrNotFound.
func (s *Scanner) Find(names []string) ([]string, error) {
	found := make([]string, 0, len(names))
	for _, name := range names {
		path, err := s.findFile(name)
		if err != nil {
			return nil, err
		}
		found = append(found, path)
	}
	return found, nil
}

// findFile locates a single file by base name anywhere under the root.
func (s *Scanner) findFile(name string) (string, error) {
	var match string
	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			match = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", s.Root, err)
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return match, nil
}

// isLibraryDirectory reports whether a directory name suggests vendored or
// third-party code.
func (s *Scanner) isLibraryDirectory(name string) bool {
	lower := strings.ToLower(name)
	for _, indicator := range libraryIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// isLibraryFile reports whether a file name starts with a well-known
// library prefix.
func (s *Scanner) isLibraryFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, prefix := range libraryFilePrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}

// isMinimizedFile reports whether a file name looks minified or bundled.
func (s *Scanner) isMinimizedFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, p := range minimizedPatterns {
		if p.MatchString(base) {
			return true
		}
	}
	return false
}

// shouldInclude applies the file-level exclusion rules.
func (s *Scanner) shouldInclude(path string, d fs.DirEntry) bool {
	if s.ExcludeLibraries && s.isLibraryFile(path) {
		return false
	}
	if s.ExcludeMinimized && s.isMinimizedFile(path) {
		return false
	}
	if s.MaxFileSize > 0 {
		info, err := d.Info()
		if err != nil || info.Size() > s.MaxFileSize {
			return false
		}
	}
	return true
}
