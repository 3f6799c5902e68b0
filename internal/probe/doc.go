// Package probe provides ffprobe-based media inspection. A single JSON call
// per file yields the video dimensions and audio presence the concat planner
// needs; parsing is split from process spawning so tests run without a real
// ffprobe binary.
package probe
