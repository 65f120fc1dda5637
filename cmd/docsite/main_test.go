package main

import (
	"os"
	"path/filepath"
	"testing"

	"docsite/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_DefaultInvocation verifies that running with no flags in a
// directory without a config file succeeds with the defaults.
func TestLoadConfig_DefaultInvocation(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := loadConfig("", "", "")
	require.NoError(t, err, "default invocation without a config file must not fail")
	assert.Equal(t, config.Default(), cfg)
}

// TestLoadConfig_FlagOverrides verifies that flag values win over the config
// file.
func TestLoadConfig_FlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	err := os.WriteFile(path, []byte("input: a.docx\noutput: from-file\n"), 0o644)
	require.NoError(t, err)

	cfg, err := loadConfig(path, "b.docx", "")
	require.NoError(t, err)
	assert.Equal(t, "b.docx", cfg.InputPath, "flag must override the config file")
	assert.Equal(t, "from-file", cfg.OutputRoot, "unset flag must keep the file value")
}

// TestLoadConfig_MissingExplicitFile verifies that a named config file must
// exist.
func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "", "")
	assert.Error(t, err)
}
