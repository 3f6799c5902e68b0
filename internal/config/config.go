// Package config holds runtime configuration: defaults, optional TOML config
// file loading, and validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime settings. Populated by [Default] and optionally
// overlaid from a TOML file by [Load] before CLI flags apply their own
// overrides.
type Config struct {
	Tools ToolsConfig `toml:"tools"`
	Run   RunConfig   `toml:"run"`
	Log   LogConfig   `toml:"log"`
}

// ToolsConfig names the external executables. Plain names resolve via PATH;
// absolute paths pin a specific build.
type ToolsConfig struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// RunConfig tunes command execution.
type RunConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Optional log file path; empty disables the file sink.
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Tools: ToolsConfig{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Run: RunConfig{
			TimeoutSeconds: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML config file over the defaults, so the file only needs
// the keys it wants to change.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges after defaults, file, and flag overrides have
// all been applied.
func (c *Config) Validate() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must not be empty")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must not be empty")
	}
	if c.Run.TimeoutSeconds <= 0 {
		return fmt.Errorf("run.timeout_seconds must be positive, got %d", c.Run.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the execution timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Run.TimeoutSeconds) * time.Second
}
