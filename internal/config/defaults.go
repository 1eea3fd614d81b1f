package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are the CLI's starting values, optionally read from a YAML file.
type Defaults struct {
	Length  int    `yaml:"length"`
	Exclude string `yaml:"exclude"`
	Count   int    `yaml:"count"`
	Copy    bool   `yaml:"copy"`
}

// BuiltinDefaults returns the values used when no file sets them.
func BuiltinDefaults() Defaults {
	return Defaults{Length: 12, Count: 1}
}

// DefaultsPath returns path, or $PASSGEN_CONFIG when path is empty.
func DefaultsPath(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv("PASSGEN_CONFIG")
}

// LoadDefaults reads the YAML file at path over BuiltinDefaults. An empty path
// returns the built-in values; a named file that does not exist is an error.
func LoadDefaults(path string) (Defaults, error) {
	d := BuiltinDefaults()
	if path == "" {
		return d, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return d, fmt.Errorf("opening config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return d, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	if d.Count < 1 {
		d.Count = 1
	}
	return d, nil
}
