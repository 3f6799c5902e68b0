// Package ffmpeg executes prepared command strings through the shell with a
// wall-clock timeout, split stdout/stderr capture, output verification, and
// stderr classification for readable failure messages.
package ffmpeg
