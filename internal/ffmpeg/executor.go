package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Sentinel errors for the two failure modes that carry no exit code.
var (
	// ErrTimeout reports that the wall-clock timeout expired and the
	// process was terminated.
	ErrTimeout = errors.New("command timed out")

	// ErrOutputMissing reports a zero exit with no (or an empty) output
	// file. Some ffmpeg failures exit 0 after writing a truncated file,
	// so exit code alone is not trusted.
	ErrOutputMissing = errors.New("output file missing or empty")
)

// ProcessError reports a non-zero exit, with captured stderr attached for
// diagnosis.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	if hint := ClassifyStderr(e.Stderr); hint != "" {
		return fmt.Sprintf("command failed (exit %d): %s", e.ExitCode, hint)
	}
	return fmt.Sprintf("command failed (exit %d): %s", e.ExitCode, tail(e.Stderr, stderrTailLen))
}

// Result holds the outcome of a single command invocation.
type Result struct {
	ExitCode   int
	Stdout     string
	Stderr     string
	OutputSize int64
}

// Run spawns command through the shell, captures stdout and stderr
// separately, and enforces timeout as a wall clock limit: on expiry the
// process is killed and ErrTimeout is returned rather than hanging.
// After a clean exit the declared outputPath must exist and be non-empty.
//
// Commands are not assumed idempotent (they may append to or overwrite
// files), so nothing is retried here.
func Run(ctx context.Context, command string, timeout time.Duration, outputPath string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() == context.DeadlineExceeded {
		return res, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &ProcessError{ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
		return res, fmt.Errorf("spawn command: %w", err)
	}

	fi, statErr := os.Stat(outputPath)
	if statErr != nil || fi.Size() == 0 {
		return res, fmt.Errorf("%w: %s", ErrOutputMissing, outputPath)
	}
	res.OutputSize = fi.Size()
	return res, nil
}
