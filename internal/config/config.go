// Package config loads the run configuration for wrapper execution:
// per-tool binary overrides and execution limits, from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root of the TOML run configuration.
type Config struct {
	// Tools maps tool names to binary paths, overriding the bare tool
	// name resolved through PATH.
	Tools map[string]string `toml:"tools"`

	Run RunConfig `toml:"run"`
}

// RunConfig carries execution limits and placement.
type RunConfig struct {
	// TimeoutSeconds bounds one external invocation; 0 means no limit.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// WorkDir is the working directory for invocations. Empty means the
	// current directory.
	WorkDir string `toml:"work_dir"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Tools: map[string]string{},
		Run:   RunConfig{TimeoutSeconds: 0},
	}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Run.TimeoutSeconds < 0 {
		return fmt.Errorf("config: run.timeout_seconds must not be negative")
	}

	for name, bin := range cfg.Tools {
		if bin == "" {
			return fmt.Errorf("config: tools.%s has an empty binary path", name)
		}
	}

	if cfg.Run.WorkDir != "" {
		info, err := os.Stat(cfg.Run.WorkDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config: run.work_dir %q is not a directory", cfg.Run.WorkDir)
		}
	}

	return nil
}

// Binary resolves the binary for a tool, falling back to the default when
// no override is configured.
func (c Config) Binary(tool, fallback string) string {
	if bin, ok := c.Tools[tool]; ok && bin != "" {
		return bin
	}

	return fallback
}
