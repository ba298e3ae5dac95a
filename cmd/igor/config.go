package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL settings read from a YAML file.
type Config struct {
	Prompt       string   `yaml:"prompt"`
	Continuation string   `yaml:"continuation"`
	History      string   `yaml:"history"`
	Banner       bool     `yaml:"banner"`
	Prelude      []string `yaml:"prelude"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt:       "igor> ",
		Continuation: "....> ",
		History:      "~/.igor_history",
		Banner:       true,
	}
}

// LoadConfig reads the config file at path over the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := decodeConfig(path, cfg); err != nil {
			return nil, err
		}
	}
	cfg.History = expandHome(cfg.History)
	return cfg, nil
}

func decodeConfig(path string, cfg *Config) error {
	file, err := os.Open(expandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
