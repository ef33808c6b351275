package graph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateStore(t *testing.T) {
	root := t.TempDir()
	indexPath := filepath.Join(root, "index.php")
	require.NoError(t, os.WriteFile(indexPath, []byte("<?php include 'gone.php'; ?>"), 0o644))

	index := DisplayPath(root, indexPath)
	gone := DisplayPath(root, filepath.Join(root, "gone.php"))

	ctx := context.Background()
	store := NewMemStore()
	err := PopulateStore(ctx, store, root, []string{indexPath}, []Edge{
		{Source: index, Target: gone, Root: root},
	})
	require.NoError(t, err)

	f, err := store.GetFile(ctx, index)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, CategoryServerScript, f.Category)
	assert.Positive(t, f.Size, "candidate nodes carry the on-disk size")

	placeholder, err := store.GetFile(ctx, gone)
	require.NoError(t, err)
	require.NotNil(t, placeholder, "unresolved targets get placeholder nodes")
	assert.Zero(t, placeholder.Size)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, 1, stats.EdgeCount)
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"index.php", CategoryServerScript},
		{"APP.JS", CategoryBrowserScript},
		{"page.html", CategoryMarkup},
		{"old.htm", CategoryMarkup},
		{"site.css", CategoryStylesheet},
		{"notes.txt", Category("")},
		{"noext", Category("")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.path), "path %q", tt.path)
	}
}
