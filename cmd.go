package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

type options struct {
	dirs    bool
	json    bool
	depth   int
	noColor bool
	verbose bool
}

func newRootCmd(logger *log.Logger, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "diffdirs <dirA> <dirB>",
		Short:         "Compare two directories and show missing paths",
		Long:          "diffdirs walks two directory trees and lists the relative paths that exist in only one of them.",
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var collectOpts []CollectOption
			if cmd.Flags().Changed("depth") {
				if opts.depth < 0 {
					return fmt.Errorf("--depth must not be negative, got %d: %w", opts.depth, newInvalidDepthError(opts.depth))
				}
				collectOpts = append(collectOpts, WithMaxDepth(opts.depth))
			}
			if opts.verbose {
				collectOpts = append(collectOpts, WithSkipHandler(func(path string, err error) {
					logger.Printf("warning: skipped %s: %v", path, err)
				}))
			}
			return compare(cmd.Context(), args[0], args[1], opts, stdout, collectOpts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.dirs, "dirs", false, "Compare only directories (not files)")
	flags.BoolVar(&opts.json, "json", false, "Output results in JSON format")
	flags.IntVar(&opts.depth, "depth", 0, "Maximum depth to traverse (0 = only root)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Warn about entries that could not be read")
	return cmd
}

func compare(ctx context.Context, dirA, dirB string, opts *options, stdout io.Writer, collectOpts []CollectOption) error {
	kind := FilesOnly
	if opts.dirs {
		kind = DirsOnly
	}
	res, err := DiffDirs(ctx, dirA, dirB, kind, collectOpts...)
	if err != nil {
		return err
	}

	format := FormatHuman
	if opts.json {
		format = FormatJSON
	}
	color := !opts.noColor && isTerminal(stdout)
	return NewReporter(stdout, format, color, dirA, dirB).Render(res)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "diffdirs: ", 0)
	cmd := newRootCmd(logger, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}
