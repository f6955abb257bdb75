package config

// This file defines the CLI flags and resolves the final Config from flags,
// DATASPLIT_* environment variables, an optional config file, and defaults,
// in that order of precedence. Negated flags (e.g. --no-summary) are applied
// after resolution so DefaultConfig values hold unless the user sets them.

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased, underscore-joined flag names when
// reading settings from the environment (e.g. DATASPLIT_SPLIT_RATE).
const EnvPrefix = "DATASPLIT"

// Flag names shared by DefineFlags and Load.
const (
	flagSource        = "source"
	flagTrainDir      = "train-dir"
	flagValDir        = "val-dir"
	flagSplitRate     = "split-rate"
	flagSeed          = "seed"
	flagDryRun        = "dry-run"
	flagProgress      = "progress"
	flagNoSummary     = "no-summary"
	flagColor         = "color"
	flagNoColor       = "no-color"
	flagVerbose       = "verbose"
	flagLog           = "log"
	flagLogMaxSize    = "log-max-size"
	flagLogMaxBackups = "log-max-backups"
	flagConfig        = "config"
)

// DefineFlags registers every configurable flag on fs, using cfg's current
// values as defaults. Layout, sampling, behavior and display flags are grouped
// the same way the help text groups them.
func DefineFlags(fs *pflag.FlagSet, cfg *Config) {
	defineLayoutFlags(fs, cfg)
	defineSamplingFlags(fs, cfg)
	defineDisplayFlags(fs, cfg)
}

// defineLayoutFlags registers --source, --train-dir, --val-dir, --dry-run.
func defineLayoutFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.String(flagSource, cfg.SourceDir, "Source directory name under the data root (one subdirectory per class)")
	fs.String(flagTrainDir, cfg.TrainDir, "Training output directory name under the data root")
	fs.String(flagValDir, cfg.ValDir, "Validation output directory name under the data root")
	fs.BoolP(flagDryRun, "d", cfg.DryRun, "Plan and report only; do not create or copy anything")
}

// defineSamplingFlags registers --split-rate and --seed.
func defineSamplingFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Float64(flagSplitRate, cfg.SplitRate, "Fraction of each class assigned to validation (0.0-1.0)")
	fs.Int64(flagSeed, cfg.Seed, "Random seed; the same seed and input reproduce the same split")
}

// defineDisplayFlags registers progress, summary, color, verbosity, log and config flags.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.String(flagProgress, string(cfg.Progress), "Progress output: plain | bar | none")
	fs.Bool(flagNoSummary, false, "Hide the per-class summary table")
	fs.Bool(flagColor, false, "Force colored logs")
	fs.Bool(flagNoColor, false, "Disable colored logs")
	fs.BoolP(flagVerbose, "v", cfg.Verbose, "Verbose output")
	fs.StringP(flagLog, "l", cfg.LogFile, "Append logs to file")
	fs.Int(flagLogMaxSize, cfg.LogMaxSize, "Rotate the log file after this many megabytes")
	fs.Int(flagLogMaxBackups, cfg.LogMaxBackups, "Rotated log files to keep (0 keeps all)")
	fs.StringP(flagConfig, "c", "", "Read settings from a YAML, TOML or JSON file")
}

// Load resolves cfg from the parsed flag set, the environment and an optional
// config file. args are the positional arguments left after flag parsing; at
// most one is accepted and it replaces the data root.
func Load(fs *pflag.FlagSet, args []string, cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return errors.Annotate(err, "bind flags")
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Annotatef(err, "read config file %s", path)
		}
		cfg.ConfigFile = path
	}

	if err := parsePositionalArgs(args, v, cfg); err != nil {
		return err
	}

	cfg.SourceDir = v.GetString(flagSource)
	cfg.TrainDir = v.GetString(flagTrainDir)
	cfg.ValDir = v.GetString(flagValDir)
	cfg.SplitRate = v.GetFloat64(flagSplitRate)
	cfg.Seed = v.GetInt64(flagSeed)
	cfg.DryRun = v.GetBool(flagDryRun)
	cfg.Verbose = v.GetBool(flagVerbose)
	cfg.LogFile = v.GetString(flagLog)
	cfg.LogMaxSize = v.GetInt(flagLogMaxSize)
	cfg.LogMaxBackups = v.GetInt(flagLogMaxBackups)

	progress, err := parseProgressStyle(v.GetString(flagProgress))
	if err != nil {
		return err
	}
	cfg.Progress = progress

	applyNegatedFlags(cfg, v)
	return nil
}

// parsePositionalArgs sets DataRoot from the single optional positional
// argument, falling back to a "data-root" key from env or config file.
func parsePositionalArgs(args []string, v *viper.Viper, cfg *Config) error {
	switch len(args) {
	case 0:
		if root := v.GetString("data-root"); root != "" {
			cfg.DataRoot = NormalizeDirArg(root)
		}
	case 1:
		cfg.DataRoot = NormalizeDirArg(args[0])
	default:
		return errors.Errorf("expected at most one data_root argument, got %d", len(args))
	}
	return nil
}

// applyNegatedFlags copies negated and override flag values into cfg.
// --no-color wins over --color.
func applyNegatedFlags(cfg *Config, v *viper.Viper) {
	if v.GetBool(flagNoSummary) {
		cfg.ShowSummary = false
	}
	if v.GetBool(flagNoColor) {
		cfg.ColorMode = ColorNever
	} else if v.GetBool(flagColor) {
		cfg.ColorMode = ColorAlways
	}
}

// parseProgressStyle accepts a progress style name case-insensitively.
func parseProgressStyle(s string) (ProgressStyle, error) {
	switch ProgressStyle(strings.ToLower(strings.TrimSpace(s))) {
	case ProgressPlain:
		return ProgressPlain, nil
	case ProgressBar:
		return ProgressBar, nil
	case ProgressNone:
		return ProgressNone, nil
	default:
		return "", errors.NotValidf("progress style %q (use 'plain', 'bar' or 'none')", s)
	}
}
