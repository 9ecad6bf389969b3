package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the scan directory
// when --config is not given.
const DefaultConfigFile = ".nativecom.yaml"

// FileConfig mirrors the optional YAML configuration file. Flags given
// on the command line take precedence over values loaded from it.
type FileConfig struct {
	// Target is the directory the dispatch module is written to.
	Target string `yaml:"target"`
	// Package is the package name of the dispatch module.
	Package string `yaml:"package"`
	// Header overrides the generated-file header comment.
	Header string `yaml:"header"`
	// SkipEntryPoints disables emission of the exported entry points.
	SkipEntryPoints bool `yaml:"skip_entry_points"`
}

// LoadFileConfig reads a FileConfig from path. When explicit is false
// a missing file is not an error and a zero config is returned.
func LoadFileConfig(path string, explicit bool) (*FileConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("cli: read config %s: %w", path, err)
	}
	cfg := &FileConfig{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("cli: parse config %s: %w", path, err)
	}
	return cfg, nil
}
