package planner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ffrun/internal/probe"
)

// ErrInvalidDimensions is returned when a probe reported a zero width or
// height. The plan builder refuses to emit a filter graph from degenerate
// dimensions rather than hand ffmpeg a malformed expression.
var ErrInvalidDimensions = errors.New("invalid video dimensions")

// Normalization constants keeping the two processed streams
// concatenation-compatible.
const (
	concatFrameRate  = 30
	concatPixFmt     = "yuv420p"
	concatSampleRate = 44100
)

// ConcatPlan is the fully resolved recipe for one smart concat: both probed
// inputs, the selected canonical resolution, and the tunable parameters.
// The plan only builds strings; the executor runs them.
type ConcatPlan struct {
	Input1    *probe.MediaInfo
	Input2    *probe.MediaInfo
	Target    Resolution
	Params    ConcatParams
	WithAudio bool
}

// BuildConcatPlan classifies both inputs, selects the canonical output
// resolution, and returns a plan ready to render into a command string.
// Audio is carried through only when both inputs have an audio stream;
// otherwise the output is video-only.
func BuildConcatPlan(in1, in2 *probe.MediaInfo, p ConcatParams) (*ConcatPlan, error) {
	for _, in := range []*probe.MediaInfo{in1, in2} {
		if in.Width <= 0 || in.Height <= 0 {
			return nil, fmt.Errorf("%w: %s (%s)", ErrInvalidDimensions, in.Path, in.Resolution())
		}
	}

	o1 := Classify(in1.Width, in1.Height)
	o2 := Classify(in2.Width, in2.Height)

	return &ConcatPlan{
		Input1:    in1,
		Input2:    in2,
		Target:    SelectResolution(o1, o2),
		Params:    p,
		WithAudio: in1.HasAudio && in2.HasAudio,
	}, nil
}

// FilterGraph renders the filter_complex expression: per input a
// trim/scale/crop/normalize chain (crop-to-fill, never letterbox), then a
// concat of the normalized streams.
func (pl *ConcatPlan) FilterGraph() string {
	var parts []string
	parts = append(parts,
		pl.videoChain(0, pl.Input1, pl.Params.Trim1),
		pl.videoChain(1, pl.Input2, pl.Params.Trim2),
	)

	if pl.WithAudio {
		parts = append(parts,
			audioChain(0, pl.Params.Trim1),
			audioChain(1, pl.Params.Trim2),
			"[v0][a0][v1][a1]concat=n=2:v=1:a=1[outv][outa]",
		)
	} else {
		parts = append(parts, "[v0][v1]concat=n=2:v=1:a=0[outv]")
	}
	return strings.Join(parts, ";")
}

// videoChain builds one input's processing chain: trim to the window, scale
// uniformly so both target dimensions are covered, center-crop the overscan
// down to exactly the target, then normalize frame rate and pixel format.
func (pl *ConcatPlan) videoChain(idx int, in *probe.MediaInfo, t Trim) string {
	// Uniform upscale factor covering the larger of the two axis ratios;
	// the excess on the other axis is what gets cropped away.
	scale := math.Max(
		float64(pl.Target.W)/float64(in.Width),
		float64(pl.Target.H)/float64(in.Height),
	)
	scaledW := int(float64(in.Width) * scale)
	scaledH := int(float64(in.Height) * scale)

	cropX := max(0, (scaledW-pl.Target.W)/2)
	cropY := max(0, (scaledH-pl.Target.H)/2)

	return fmt.Sprintf(
		"[%d:v]trim=start=%s:end=%s,setpts=PTS-STARTPTS,scale=%d:%d,crop=%d:%d:%d:%d,fps=%d,format=%s[v%d]",
		idx, ftoa(t.Start), ftoa(t.End),
		scaledW, scaledH,
		pl.Target.W, pl.Target.H, cropX, cropY,
		concatFrameRate, concatPixFmt, idx,
	)
}

func audioChain(idx int, t Trim) string {
	return fmt.Sprintf(
		"[%d:a]atrim=start=%s:end=%s,asetpts=PTS-STARTPTS,aresample=%d[a%d]",
		idx, ftoa(t.Start), ftoa(t.End), concatSampleRate, idx,
	)
}

// Command renders the full ffmpeg invocation for the plan. CRF and preset
// pass through to the encoder unchanged. Paths are double-quoted because the
// command runs through a shell.
func (pl *ConcatPlan) Command(ffmpegBin, outputPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -i %q -i %q -y -filter_complex %q -map \"[outv]\"",
		ffmpegBin, pl.Input1.Path, pl.Input2.Path, pl.FilterGraph())

	if pl.WithAudio {
		b.WriteString(" -map \"[outa]\"")
	} else {
		b.WriteString(" -an")
	}

	fmt.Fprintf(&b, " -c:v libx264 -crf %d -preset %s", pl.Params.CRF, pl.Params.Preset)
	if pl.WithAudio {
		b.WriteString(" -c:a aac")
	}
	fmt.Fprintf(&b, " %q", outputPath)
	return b.String()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
