// Command nlsat solves a NumberLink puzzle from a problem file and
// writes the resulting solution grid.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nlsat/problem"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := exitSuccess
	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if exitCode == exitSuccess {
			exitCode = exitParseError
		}
		fmt.Fprintln(os.Stderr, err)
	}

	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	var (
		outputPath     string
		varLimit       int
		binaryEncoding bool
		formatName     string
		verbose        bool
		configPath     string
	)

	cmd := &cobra.Command{
		Use:          "nlsat <problem-file>",
		Short:        "Solve a NumberLink puzzle via SAT encoding",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				log.SetOutput(os.Stderr)
			}

			cfg := defaultSolverConfig()
			if configPath != "" {
				loaded, err := loadConfigFile(configPath, cfg)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("var-limit") {
				cfg.VarLimit = varLimit
			}
			if cmd.Flags().Changed("binary-encoding") {
				cfg.BinaryEncoding = binaryEncoding
			}
			if cmd.Flags().Changed("format") {
				f, ok := problem.ParseFormat(formatName)
				if !ok {
					return fmt.Errorf("unknown format %q", formatName)
				}
				cfg.Format = f
			}

			in, err := os.Open(args[0])
			if err != nil {
				*exitCode = exitParseError

				return err
			}
			defer in.Close()

			out, err := openOutput(outputPath)
			if err != nil {
				*exitCode = exitAbort

				return err
			}
			defer out.Close()

			*exitCode = solve(in, out, cfg, verbose)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "solution output path (default: stdout)")
	cmd.Flags().IntVarP(&varLimit, "var-limit", "l", 0, "skip a plan whose variable count would exceed this (0 = no limit)")
	cmd.Flags().BoolVarP(&binaryEncoding, "binary-encoding", "b", false, "use a binary label encoding instead of one-hot")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "override auto-detected format: adc2015, adc2016, or adc2017")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with solver tuning knobs")

	return cmd
}
