package planner

import (
	"regexp"
	"strconv"
)

// Trim is a [Start,End] playback window in seconds.
type Trim struct {
	Start float64
	End   float64
}

// ConcatParams holds the tunable trim and encoder settings for a smart
// concat, parsed from free-text key=value tokens in the command string.
type ConcatParams struct {
	Trim1  Trim
	Trim2  Trim
	CRF    int    // libx264 constant rate factor, 0..51.
	Preset string // libx264 speed preset.
}

// DefaultConcatParams returns the parameter defaults applied when a token is
// absent or malformed.
func DefaultConcatParams() ConcatParams {
	return ConcatParams{
		Trim1:  Trim{Start: 0.5, End: 4.5},
		Trim2:  Trim{Start: 0.5, End: 7.5},
		CRF:    18,
		Preset: "veryfast",
	}
}

var (
	reTrim1  = regexp.MustCompile(`trim1=(\d+\.?\d*):(\d+\.?\d*)`)
	reTrim2  = regexp.MustCompile(`trim2=(\d+\.?\d*):(\d+\.?\d*)`)
	reCRF    = regexp.MustCompile(`crf=(\d+)`)
	rePreset = regexp.MustCompile(`preset=(\w+)`)
)

var validPresets = map[string]bool{
	"ultrafast": true,
	"superfast": true,
	"veryfast":  true,
	"faster":    true,
	"fast":      true,
	"medium":    true,
	"slow":      true,
	"slower":    true,
	"veryslow":  true,
}

// ParseConcatParams scans command for parameter overrides. Each key falls
// back to its default independently when missing, malformed, or out of
// range; a bad optional token never fails the run.
func ParseConcatParams(command string) ConcatParams {
	p := DefaultConcatParams()

	if t, ok := parseTrim(reTrim1, command); ok {
		p.Trim1 = t
	}
	if t, ok := parseTrim(reTrim2, command); ok {
		p.Trim2 = t
	}
	if m := reCRF.FindStringSubmatch(command); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 && n <= 51 {
			p.CRF = n
		}
	}
	if m := rePreset.FindStringSubmatch(command); m != nil && validPresets[m[1]] {
		p.Preset = m[1]
	}
	return p
}

func parseTrim(re *regexp.Regexp, command string) (Trim, bool) {
	m := re.FindStringSubmatch(command)
	if m == nil {
		return Trim{}, false
	}
	start, err1 := strconv.ParseFloat(m[1], 64)
	end, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || end <= start {
		return Trim{}, false
	}
	return Trim{Start: start, End: end}, true
}
