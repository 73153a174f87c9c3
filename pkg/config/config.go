// Package config holds the settings of the seqview command-line driver
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/KevoDB/seqview/pkg/common/log"
)

const (
	DefaultConfigFileName = "seqview.json"
	CurrentConfigVersion  = 1
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("config not found")
	ErrMalformed      = errors.New("malformed config")
)

type Config struct {
	Version int `json:"version"`

	// Logging
	LogLevel string `json:"log_level"`

	// Shell
	Prompt      string `json:"prompt"`
	HistoryFile string `json:"history_file"`

	// Output
	ShowDigest bool `json:"show_digest"`
	MaxPrint   int  `json:"max_print"` // elements printed per traversal, 0 for all

	mu sync.RWMutex
}

// NewDefaultConfig creates a Config with recommended default values
func NewDefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		LogLevel:    "info",
		Prompt:      "seqview> ",
		HistoryFile: filepath.Join(os.TempDir(), ".seqview_history"),
		ShowDigest:  false,
		MaxPrint:    0,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.validate()
}

func (c *Config) validate() error {
	if c.Version <= 0 {
		return fmt.Errorf("%w: invalid version %d", ErrInvalidConfig, c.Version)
	}

	if c.Version > CurrentConfigVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidConfig, c.Version)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if strings.TrimSpace(c.Prompt) == "" {
		return fmt.Errorf("%w: prompt must not be empty", ErrInvalidConfig)
	}

	if c.MaxPrint < 0 {
		return fmt.Errorf("%w: max print must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Level returns the configured log level; Validate guarantees it parses
func (c *Config) Level() log.Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// LoadConfig reads and validates the configuration stored at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path, replacing any existing file
// atomically
func (c *Config) Save(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename config: %w", err)
	}

	return nil
}

// Update applies the given function to modify the configuration
func (c *Config) Update(fn func(*Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c)
}
