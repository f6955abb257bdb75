// Command datasplit is the CLI entrypoint for the dataset splitter.
//
// It resolves configuration from flags, environment and an optional config
// file, then partitions every class directory under the source into train
// and val trees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/display"
	"github.com/backmassage/datasplit/internal/logging"
	"github.com/backmassage/datasplit/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()
	code := 0
	cmd := newRootCommand(&cfg, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "datasplit: %v\n", err)
		return 1
	}
	return code
}

// newRootCommand builds the datasplit command. Flag, environment and
// validation errors are returned from Execute; failures after the logger
// exists are logged and reported through code.
func newRootCommand(cfg *config.Config, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datasplit [flags] [data_root]",
		Short:         "Split a class-per-directory image dataset into train and val sets",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "datasplit %s (%s)\n", version, commit)
				return nil
			}
			if err := config.Load(cmd.Flags(), args, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			*code = execute(cfg)
			return nil
		},
	}
	config.DefineFlags(cmd.Flags(), cfg)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	return cmd
}

// execute runs the split with a live logger and returns the exit code.
func execute(cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "datasplit: %v\n", err)
		return 1
	}
	defer log.Close()

	// Logger available: all output goes through log from here on.
	display.PrintBanner(os.Stdout)
	log.Info("=== datasplit v%s (%s) ===", version, commit)

	// Every path the run touches is resolved inside the data root.
	root, err := filepath.Abs(cfg.DataRoot)
	if err != nil {
		log.Error("Cannot resolve data root: %s", cfg.DataRoot)
		return 1
	}
	fs := osfs.New(root)

	// Cancel on SIGINT/SIGTERM; the pipeline stops before the next file.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current file")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := pipeline.Run(ctx, cfg, fs, log, display.NewProgress(cfg.Progress, os.Stdout))
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.ShowSummary && stats.Classes > 0 {
		if err := display.PrintSummary(os.Stdout, stats.Rows()); err != nil {
			log.Warn("Cannot render summary: %v", err)
		}
	}
	return 0
}
