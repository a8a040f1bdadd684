// Package config provides configuration loading and management for gfsrg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxPower is the largest power of 2 whose field the module can construct.
const MaxPower = 20

// Config represents the complete gfsrg configuration
type Config struct {
	// Workers bounds concurrently running tasks (default: number of CPUs)
	Workers int `yaml:"workers"`
	// TaskTimeout bounds a single build or check task (0 = no limit)
	TaskTimeout time.Duration `yaml:"task_timeout"`
	// Output is the results destination: blank or "stdout", "stderr", or a file path
	Output string `yaml:"output"`
	// MetricsFile receives a Prometheus textfile at exit (blank = disabled)
	MetricsFile string `yaml:"metrics_file"`
	// MaxPower rejects powers above it (default: MaxPower)
	MaxPower int `yaml:"max_power"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Workers:     runtime.NumCPU(),
		TaskTimeout: 0,
		Output:      "",
		MetricsFile: "",
		MaxPower:    MaxPower,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.TaskTimeout < 0 {
		return fmt.Errorf("task_timeout must not be negative, got %v", c.TaskTimeout)
	}
	if c.MaxPower < 1 || c.MaxPower > MaxPower {
		return fmt.Errorf("max_power must be between 1 and %d, got %d", MaxPower, c.MaxPower)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
	if other.TaskTimeout != 0 {
		c.TaskTimeout = other.TaskTimeout
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.MetricsFile != "" {
		c.MetricsFile = other.MetricsFile
	}
	if other.MaxPower != 0 {
		c.MaxPower = other.MaxPower
	}
}
