package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhump/annobind/processor"
)

// DefaultConfigFile is read when --config is not given and the file exists
// in the current directory.
const DefaultConfigFile = "bindgen.yaml"

// FileConfig is the contents of a bindgen.yaml file.
type FileConfig struct {
	Packages     []string `yaml:"packages"`
	IncludeTests bool     `yaml:"include_tests"`
	OutputDir    string   `yaml:"output_dir"`
	FileSuffix   string   `yaml:"file_suffix"`
}

// LoadConfig reads the configuration at path. If path is blank, the default
// file is read if present; otherwise an empty configuration is returned.
func LoadConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// processorConfig converts the file configuration for use by the processor.
func (c *FileConfig) processorConfig() processor.Config {
	return processor.Config{
		Patterns:     c.Packages,
		IncludeTests: c.IncludeTests,
		OutputDir:    c.OutputDir,
		FileSuffix:   c.FileSuffix,
	}
}
