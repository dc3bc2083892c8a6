// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for herodex configuration and data.
	DefaultConfigDir = ".herodex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDataDir is the default data directory name inside the config dir.
	DefaultDataDir = "data"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	LLM     LLMConfig     `yaml:"llm,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// LLMConfig holds configuration for the generation provider.
type LLMConfig struct {
	Provider   string `yaml:"provider,omitempty"`
	Model      string `yaml:"model,omitempty"`
	ImageModel string `yaml:"image_model,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// StorageConfig holds configuration for flat-file storage.
type StorageConfig struct {
	// Path is the data directory holding catalog, logs, and images.
	// Relative paths are resolved against the working directory.
	Path string `yaml:"path,omitempty"`
}

// ServerConfig holds configuration for the HTTP UI server.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:   "openai",
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		Storage: StorageConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultDataDir),
		},
		Server: ServerConfig{
			Addr: ":8321",
		},
	}
}

// Load loads configuration from the .herodex directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'herodex init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = key
	}
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// DataDir resolves the configured data directory against basePath.
func (c *Config) DataDir(basePath string) string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(basePath, c.Storage.Path)
}

// Exists checks if a herodex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
