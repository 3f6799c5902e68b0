package main

import (
	"os"

	"ffrun/internal/config"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "ffrun",
	Short: "FFmpeg command runner with smart concatenation",
	Long: `ffrun - FFmpeg command runner with smart concatenation

Executes FFmpeg commands on behalf of a workflow host. The SMART_CONCAT
command probes two input videos, classifies their aspect ratios, and
crops (never squeezes) both to a canonical resolution before joining
them. Any other command string is run as-is after {input1}/{input2}/
{input3}/{output} placeholder substitution.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ffrun {{.Version}}\n")
}

// loadConfig resolves the effective config: defaults, then the optional
// config file, then persistent flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
