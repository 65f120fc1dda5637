package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config file location, relative to the
// directory the tool runs in.
const DefaultPath = "docsite.yaml"

// Config holds the fixed paths and conventions the converter runs with. The
// core packages take it as an explicit argument so they can be tested
// against temporary directories.
type Config struct {
	// InputPath is the source .docx document.
	InputPath string `yaml:"input"`
	// OutputRoot is the directory the site tree is written into.
	OutputRoot string `yaml:"output"`
	// PageSize is the maximum number of items per listing page.
	PageSize int `yaml:"page_size"`
}

// Default returns the conventional configuration: the document lives at
// content/content.docx and the site is written into the current directory,
// ten items per listing page.
func Default() Config {
	return Config{
		InputPath:  "content/content.docx",
		OutputRoot: ".",
		PageSize:   10,
	}
}

// Load reads configuration from a YAML file, applying it over the defaults.
// A missing file at the default path is not an error -- the defaults are
// returned as-is. A missing file at an explicitly given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s not found", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.PageSize < 1 {
		return cfg, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}
