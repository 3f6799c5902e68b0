// Package check provides pre-run dependency validation and the interactive
// `ffrun check` diagnostics for ffmpeg, ffprobe, and the encoders the smart
// concat path uses.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"ffrun/internal/config"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by Deps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Deps ensures both external tools resolve before a run; fail fast here
// beats a confusing mid-run spawn error.
func Deps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.Tools.FFmpeg); err != nil {
		if cfg.Tools.FFmpeg != "ffmpeg" {
			return fmt.Errorf("ffmpeg not found at %s", cfg.Tools.FFmpeg)
		}
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath(cfg.Tools.FFprobe); err != nil {
		if cfg.Tools.FFprobe != "ffprobe" {
			return fmt.Errorf("ffprobe not found at %s", cfg.Tools.FFprobe)
		}
		return ErrFfprobeNotFound
	}
	return nil
}

// Run executes the interactive check flow: tool availability and versions,
// plus libx264/aac encoder presence. Informational only; it reports every
// item rather than stopping at the first failure.
func Run(cfg *config.Config, log zerolog.Logger) {
	checkTool(log, "ffmpeg", cfg.Tools.FFmpeg)
	checkTool(log, "ffprobe", cfg.Tools.FFprobe)
	checkEncoders(log, cfg.Tools.FFmpeg)
}

func checkTool(log zerolog.Logger, name, bin string) {
	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error().Str("tool", name).Str("bin", bin).Msg("not found")
		return
	}

	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Warn().Str("tool", name).Str("path", path).Msg("found but -version failed")
		return
	}
	version := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
	log.Info().Str("tool", name).Str("path", path).Str("version", version).Msg("ok")
}

// checkEncoders inspects `ffmpeg -encoders` for the codecs smart concat
// encodes with.
func checkEncoders(log zerolog.Logger, ffmpegBin string) {
	out, err := exec.Command(ffmpegBin, "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn().Msg("could not list encoders")
		return
	}
	listing := string(out)
	for _, enc := range []string{"libx264", "aac"} {
		if strings.Contains(listing, enc) {
			log.Info().Str("encoder", enc).Msg("available")
		} else {
			log.Error().Str("encoder", enc).Msg("missing")
		}
	}
}
