package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from modernizer.yml.
// Zero values defer to the CLI defaults.
type ProjectConfig struct {
	OutputDir        string   `yaml:"outputDir,omitempty"`
	Format           string   `yaml:"format,omitempty"`
	ExcludeDirs      []string `yaml:"excludeDirs,omitempty"`
	ExcludeImages    *bool    `yaml:"excludeImages,omitempty"`
	HandleDynamic    *bool    `yaml:"handleDynamic,omitempty"`
	ExcludeLibraries *bool    `yaml:"excludeLibraries,omitempty"`
	ExcludeMinimized *bool    `yaml:"excludeMinimized,omitempty"`
	MaxFileSize      int64    `yaml:"maxFileSize,omitempty"`
	ShowPath         bool     `yaml:"showPath,omitempty"`
}

// Load attempts to read modernizer.yml or modernizer.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"modernizer.yml", "modernizer.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
