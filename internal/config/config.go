// Package config loads tool configuration from a .todo.json file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full tool configuration
type Config struct {
	Storage StorageConfig `json:"storage"`
	List    ListConfig    `json:"list"`
}

// StorageConfig contains task-file settings
type StorageConfig struct {
	Path string `json:"path"`
}

// ListConfig contains default list presentation settings
type ListConfig struct {
	Sort  string `json:"sort"`
	Order string `json:"order"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "tasks.json",
		},
		List: ListConfig{
			Sort:  "due",
			Order: "asc",
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. .todo.json in the given directory
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".todo.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.List.Sort == "" {
		cfg.List.Sort = defaults.List.Sort
	}
	if cfg.List.Order == "" {
		cfg.List.Order = defaults.List.Order
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
