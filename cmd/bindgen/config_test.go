package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
packages:
  - ./screens/...
  - ./widgets
include_tests: true
output_dir: gen
file_suffix: .annobind.go
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{
		Packages:     []string{"./screens/...", "./widgets"},
		IncludeTests: true,
		OutputDir:    "gen",
		FileSuffix:   ".annobind.go",
	}, cfg)

	pc := cfg.processorConfig()
	assert.Equal(t, cfg.Packages, pc.Patterns)
	assert.True(t, pc.IncludeTests)
	assert.Equal(t, "gen", pc.OutputDir)
	assert.Equal(t, ".annobind.go", pc.FileSuffix)
}

func TestLoadConfig_Missing(t *testing.T) {
	// the default file is optional
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, cfg)

	// an explicit one is not
	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "reading config")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [unterminated\n"), 0o644))
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "parsing config")
}
