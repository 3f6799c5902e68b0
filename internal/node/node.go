// Package node is the callable core a workflow host adapter talks to: it
// takes one request of scalar inputs, dispatches between smart concatenation
// and literal command templating, runs the result, and maps every failure to
// a descriptive error value. Nothing here panics the host.
package node

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ffrun/internal/config"
	"ffrun/internal/ffmpeg"
	"ffrun/internal/planner"
	"ffrun/internal/probe"
	"ffrun/internal/template"

	"github.com/rs/zerolog"
)

// SmartConcatToken selects the smart-concat path when present (in any case)
// in the command string.
const SmartConcatToken = "SMART_CONCAT"

// Request carries one invocation's inputs. Input2 and Input3 are optional;
// Command is either the SMART_CONCAT form with key=value overrides or a
// literal shell command with placeholders.
type Request struct {
	Input1  string
	Input2  string
	Input3  string
	Output  string
	Command string
	Execute bool
}

// Result is the terminal artifact of one invocation.
type Result struct {
	Message    string
	OutputPath string
}

// Runner executes requests with the configured tool paths and timeout. One
// invocation at a time; no state is shared between runs.
type Runner struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewRunner(cfg *config.Config, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run performs one full invocation: validate -> (probe -> plan | template)
// -> execute -> verify. When Execute is false it short-circuits with a no-op
// result and no side effects.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if !req.Execute {
		return Result{Message: "execution skipped"}, nil
	}

	if err := validate(req); err != nil {
		return Result{}, err
	}

	inputs := req.inputs()
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return Result{}, fmt.Errorf("input file not found: %s", in)
		}
	}

	var command string
	if strings.Contains(strings.ToUpper(req.Command), SmartConcatToken) {
		if len(inputs) != 2 {
			return Result{}, fmt.Errorf("smart concat requires exactly 2 input files, got %d", len(inputs))
		}
		cmd, err := r.buildSmartConcat(ctx, req.Command, inputs[0], inputs[1], req.Output)
		if err != nil {
			return Result{}, err
		}
		command = cmd
	} else {
		command = resolveTemplate(req.Command, inputs, req.Output)
	}

	if dir := filepath.Dir(req.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	r.log.Info().Str("command", command).Msg("executing")

	res, err := ffmpeg.Run(ctx, command, r.cfg.Timeout(), req.Output)
	if err != nil {
		r.log.Error().Err(err).Msg("execution failed")
		return Result{}, err
	}

	r.log.Info().Str("output", req.Output).Int64("bytes", res.OutputSize).Msg("done")
	return Result{
		Message:    fmt.Sprintf("wrote %d bytes to %s", res.OutputSize, req.Output),
		OutputPath: req.Output,
	}, nil
}

// buildSmartConcat probes both inputs, classifies and plans, and renders the
// full ffmpeg command.
func (r *Runner) buildSmartConcat(ctx context.Context, command, in1, in2, output string) (string, error) {
	params := planner.ParseConcatParams(command)

	info1, err := probe.Probe(ctx, r.cfg.Tools.FFprobe, in1)
	if err != nil {
		return "", err
	}
	info2, err := probe.Probe(ctx, r.cfg.Tools.FFprobe, in2)
	if err != nil {
		return "", err
	}

	plan, err := planner.BuildConcatPlan(info1, info2, params)
	if err != nil {
		return "", err
	}

	r.log.Info().
		Str("input1", info1.Resolution()).
		Str("input2", info2.Resolution()).
		Str("target", plan.Target.String()).
		Int("crf", params.CRF).
		Str("preset", params.Preset).
		Msg("smart concat plan")

	return plan.Command(r.cfg.Tools.FFmpeg, output), nil
}

// resolveTemplate substitutes the placeholders for which values were
// provided. Paths are double-quoted here because the command runs through a
// shell; the template text itself is caller-trusted and substituted as-is.
func resolveTemplate(command string, inputs []string, output string) string {
	b := template.Bindings{
		template.Output: quote(output),
	}
	keys := []string{template.Input1, template.Input2, template.Input3}
	for i, in := range inputs {
		b[keys[i]] = quote(in)
	}
	return template.Resolve(command, b)
}

func quote(s string) string {
	return `"` + s + `"`
}

func validate(req Request) error {
	if strings.TrimSpace(req.Input1) == "" {
		return errors.New("at least one input file path is required")
	}
	if strings.TrimSpace(req.Command) == "" {
		return errors.New("command is required")
	}
	out := strings.TrimSpace(req.Output)
	if out == "" {
		return errors.New("output path is required")
	}
	if strings.HasSuffix(out, "/") {
		return errors.New("output path must include a filename")
	}
	if fi, err := os.Stat(out); err == nil && fi.IsDir() {
		return fmt.Errorf("output path is a directory: %s", out)
	}
	return nil
}

// inputs returns the provided input paths in order, blanks dropped.
func (req Request) inputs() []string {
	var paths []string
	for _, p := range []string{req.Input1, req.Input2, req.Input3} {
		if s := strings.TrimSpace(p); s != "" {
			paths = append(paths, s)
		}
	}
	return paths
}
