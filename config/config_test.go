package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"docsite/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault verifies the conventional defaults.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "content/content.docx", cfg.InputPath)
	assert.Equal(t, ".", cfg.OutputRoot)
	assert.Equal(t, 10, cfg.PageSize)
}

// TestLoad_MissingDefaultFile verifies that an absent file at the default
// path yields the defaults, not an error.
func TestLoad_MissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := config.Load("")
	require.NoError(t, err, "missing default config file should not be an error")
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_MissingExplicitFile verifies that an absent file at an explicit
// path is an error.
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "explicit config path must exist")
}

// TestLoad_Overrides verifies that file values override defaults and that
// omitted keys keep their defaults.
func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	err := os.WriteFile(path, []byte("input: docs/site.docx\npage_size: 5\n"), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "docs/site.docx", cfg.InputPath)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, ".", cfg.OutputRoot, "omitted key should keep its default")
}

// TestLoad_InvalidPageSize verifies that a non-positive page size is
// rejected.
func TestLoad_InvalidPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	err := os.WriteFile(path, []byte("page_size: 0\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load(path)
	assert.Error(t, err)
}

// TestLoad_Malformed verifies that unparseable YAML is an error.
func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	err := os.WriteFile(path, []byte("input: [unclosed\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load(path)
	assert.Error(t, err)
}
