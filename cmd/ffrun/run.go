package main

import (
	"fmt"

	"ffrun/internal/check"
	"ffrun/internal/logging"
	"ffrun/internal/node"

	"github.com/spf13/cobra"
)

var (
	runInput1  string
	runInput2  string
	runInput3  string
	runOutput  string
	runCommand string
	runTimeout int
	runDryRun  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute an FFmpeg command or smart concat",
	Long: `Execute one FFmpeg invocation.

With --command SMART_CONCAT (optionally followed by trim1=S:E trim2=S:E
crf=N preset=NAME overrides), both inputs are probed and concatenated at
a canonical resolution. Any other command string is run literally after
placeholder substitution. --dry-run skips execution entirely.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runInput1, "input1", "", "First input video")
	runCmd.Flags().StringVar(&runInput2, "input2", "", "Second input video (optional)")
	runCmd.Flags().StringVar(&runInput3, "input3", "", "Third input video (optional, template commands only)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "Output file path")
	runCmd.Flags().StringVar(&runCommand, "command", node.SmartConcatToken, "Command string")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "Execution timeout in seconds (overrides config)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Validate and plan, but do not execute")

	_ = runCmd.MarkFlagRequired("input1")
	_ = runCmd.MarkFlagRequired("output")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runTimeout > 0 {
		cfg.Run.TimeoutSeconds = runTimeout
	}

	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := check.Deps(&cfg); err != nil {
		return err
	}

	runner := node.NewRunner(&cfg, log)
	res, err := runner.Run(cmd.Context(), node.Request{
		Input1:  runInput1,
		Input2:  runInput2,
		Input3:  runInput3,
		Output:  runOutput,
		Command: runCommand,
		Execute: !runDryRun,
	})
	if err != nil {
		return err
	}

	log.Info().Msg(res.Message)
	if res.OutputPath != "" {
		fmt.Println(res.OutputPath)
	}
	return nil
}
