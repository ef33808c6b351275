package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `outputDir: out/diagrams
format: plantuml
excludeDirs:
  - legacy
  - tmp
excludeImages: false
handleDynamic: true
maxFileSize: 204800
showPath: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modernizer.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "out/diagrams", cfg.OutputDir)
	assert.Equal(t, "plantuml", cfg.Format)
	assert.Equal(t, []string{"legacy", "tmp"}, cfg.ExcludeDirs)
	require.NotNil(t, cfg.ExcludeImages)
	assert.False(t, *cfg.ExcludeImages)
	require.NotNil(t, cfg.HandleDynamic)
	assert.True(t, *cfg.HandleDynamic)
	assert.Nil(t, cfg.ExcludeLibraries, "unset booleans stay nil so defaults apply")
	assert.Equal(t, int64(204800), cfg.MaxFileSize)
	assert.True(t, cfg.ShowPath)
}

func TestLoad_YamlExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modernizer.yaml"), []byte("format: ascii\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.Format)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modernizer.yml"), []byte("format: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
