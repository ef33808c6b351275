package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files (path -> content) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// baseNames maps absolute scan results back to root-relative slash paths.
func baseNames(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestScan_WebFilesOnly(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":   "<?php ?>",
		"app.js":      "",
		"page.html":   "",
		"style.css":   "",
		"readme.md":   "",
		"data.json":   "",
		"sub/inc.php": "",
	})

	files, err := NewScanner(root).Scan()
	require.NoError(t, err)

	got := baseNames(t, root, files)
	assert.ElementsMatch(t, []string{"index.php", "app.js", "page.html", "style.css", "sub/inc.php"}, got)
}

func TestScan_NoFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"readme.md": ""})

	_, err := NewScanner(root).Scan()
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestScan_LibraryDirectoriesPruned(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":               "",
		"vendor/pkg/thing.php":    "",
		"node_modules/m/index.js": "",
		"assets/lib/old.js":       "",
		"dist/bundle.js":          "",
	})

	files, err := NewScanner(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"index.php"}, baseNames(t, root, files))
}

func TestScan_LibraryDirectoriesKeptWhenDisabled(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":            "",
		"vendor/pkg/thing.php": "",
	})

	s := NewScanner(root)
	s.ExcludeLibraries = false
	files, err := s.Scan()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestScan_LibraryFilesSkipped(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":        "",
		"jquery-3.6.0.js":  "",
		"bootstrap.css":    "",
		"js/moment-old.js": "",
	})

	files, err := NewScanner(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"index.php"}, baseNames(t, root, files))
}

func TestScan_MinimizedFilesSkipped(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.js":        "",
		"app.min.js":    "",
		"site-min.css":  "",
		"out.bundle.js": "",
	})

	files, err := NewScanner(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, baseNames(t, root, files))
}

func TestScan_MaxFileSize(t *testing.T) {
	root := writeTree(t, map[string]string{
		"small.js": "x",
		"big.js":   strings.Repeat("x", 64),
	})

	s := NewScanner(root)
	s.MaxFileSize = 32
	files, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"small.js"}, baseNames(t, root, files))
}

func TestScan_ExcludeDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":        "",
		"legacy/old.php":   "",
		"current/page.php": "",
	})

	s := NewScanner(root)
	s.ExcludeDirs = []string{"legacy"}
	files, err := s.Scan()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.php", "current/page.php"}, baseNames(t, root, files))
}

func TestFind(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.php":      "",
		"deep/nested.js": "",
	})

	s := NewScanner(root)

	files, err := s.Find([]string{"index.php", "nested.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.php", "deep/nested.js"}, baseNames(t, root, files))

	_, err = s.Find([]string{"missing.php"})
	assert.ErrorIs(t, err, ErrNotFound)
}
