package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoVideoStream is returned when ffprobe finds no usable video stream
// (audio-only files, or files whose only video stream is attached cover art).
var ErrNoVideoStream = errors.New("no video stream found")

// MediaInfo holds the probed properties of one input file. Width and Height
// come from the primary video stream; HasAudio reports whether at least one
// audio stream exists. Immutable for the lifetime of one invocation.
type MediaInfo struct {
	Path     string
	Width    int
	Height   int
	Duration float64
	Codec    string
	PixFmt   string
	HasAudio bool
}

// Probe runs a single ffprobe JSON call against path and returns the parsed
// result. One external process per call; probing is cheap and deterministic,
// so there is no retry.
func Probe(ctx context.Context, ffprobeBin, path string) (*MediaInfo, error) {
	cmd := exec.CommandContext(ctx, ffprobeBin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	info, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	info.Path = path
	return info, nil
}

// ParseJSON converts raw ffprobe JSON output into a MediaInfo.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*MediaInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildInfo(&raw)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	Index       int            `json:"index"`
	CodecName   string         `json:"codec_name"`
	CodecType   string         `json:"codec_type"`
	PixFmt      string         `json:"pix_fmt"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Disposition map[string]int `json:"disposition"`
}

// --- Conversion from wire types to domain type ---

func buildInfo(raw *ffprobeOutput) (*MediaInfo, error) {
	info := &MediaInfo{
		Duration: parseFloat(raw.Format.Duration),
	}

	var video *ffprobeStream
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			// Skip attached cover art; the first real video stream wins.
			if s.Disposition["attached_pic"] == 1 {
				continue
			}
			if video == nil {
				video = s
			}
		case "audio":
			info.HasAudio = true
		}
	}

	if video == nil {
		return nil, ErrNoVideoStream
	}

	info.Width = video.Width
	info.Height = video.Height
	info.Codec = video.CodecName
	info.PixFmt = video.PixFmt
	return info, nil
}

// Resolution returns "WxH" for logging, or "unknown" for degenerate probes.
func (m *MediaInfo) Resolution() string {
	if m.Width <= 0 || m.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(m.Width) + "x" + strconv.Itoa(m.Height)
}

// ffprobe returns numbers as strings.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
