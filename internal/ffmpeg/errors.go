package ffmpeg

import (
	"regexp"
	"strings"
)

// Pre-compiled regexes for classifying ffmpeg stderr into the failure
// categories seen most often in practice. Checked in order by
// [ClassifyStderr]; the first match wins.
var (
	reMissingInput = regexp.MustCompile(
		`No such file or directory|Could not open file`)

	reInvalidData = regexp.MustCompile(
		`Invalid data found when processing input|moov atom not found`)

	reUnknownEncoder = regexp.MustCompile(
		`Unknown encoder|Encoder not found`)

	rePermission = regexp.MustCompile(`Permission denied`)
)

// ClassifyStderr maps stderr to a short diagnosis, or "" when no known
// pattern matches and the raw stderr tail is the best available message.
func ClassifyStderr(stderr string) string {
	switch {
	case reMissingInput.MatchString(stderr):
		return "input file missing or unreadable"
	case reInvalidData.MatchString(stderr):
		return "input is not valid media (corrupt or truncated file)"
	case reUnknownEncoder.MatchString(stderr):
		return "requested encoder is not available in this ffmpeg build"
	case rePermission.MatchString(stderr):
		return "permission denied reading input or writing output"
	}
	return ""
}

const stderrTailLen = 500

// tail returns the last n bytes of s, trimmed, for compact error messages.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
