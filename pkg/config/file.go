package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultFileName is probed in the working directory when no config file
// path is given.
const defaultFileName = "conveyor.yaml"

// LoadFile overlays a YAML config file onto config. An empty path probes
// for the default file name; a missing default file is not an error, a
// missing explicit path is.
func LoadFile(path string, config *Config) error {
	explicit := path != ""
	if !explicit {
		path = defaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
