// Package config holds runtime configuration: defaults, CLI flag definitions,
// layered loading, and validation. Defaults reproduce the classic flower
// dataset layout so a bare invocation needs no arguments.
package config

import (
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ProgressStyle selects how per-class copy progress is rendered.
type ProgressStyle string

const (
	ProgressPlain ProgressStyle = "plain" // "[class] processing [i/n]" rewritten in place (default).
	ProgressBar   ProgressStyle = "bar"   // Progress bar with counter.
	ProgressNone  ProgressStyle = "none"  // No progress output.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [Load], and then passed (by pointer) to packages that need it.
type Config struct {
	// Layout. SourceDir, TrainDir and ValDir are names relative to DataRoot.
	DataRoot  string // Default: "flower_data" (relative to the working directory).
	SourceDir string // Default: "flower_photos".
	TrainDir  string // Default: "train".
	ValDir    string // Default: "val".

	// Sampling.
	SplitRate float64 // Default: 0.1. Fraction of each class sent to ValDir.
	Seed      int64   // Default: 0. Fixed so runs are reproducible.

	// Behavior flags.
	DryRun bool // Plan and report only; no directory is touched.

	// Display and logging.
	Verbose       bool
	Progress      ProgressStyle // Default: "plain".
	ShowSummary   bool          // Default: true. Per-class table after the run.
	ColorMode     ColorMode     // Default: "auto".
	LogFile       string        // Optional log file path.
	LogMaxSize    int           // Megabytes before the log file is rotated. Default: 100.
	LogMaxBackups int           // Rotated log files to keep. Default: 0 (all).
	ConfigFile    string        // Optional YAML/TOML/JSON file with flag-named keys.
}

// DefaultConfig returns a Config with the defaults of the original flower
// splitter: flower_data/flower_photos split 9:1 into train/ and val/ with seed 0.
func DefaultConfig() Config {
	return Config{
		DataRoot:      "flower_data",
		SourceDir:     "flower_photos",
		TrainDir:      "train",
		ValDir:        "val",
		SplitRate:     0.1,
		Seed:          0,
		DryRun:        false,
		Verbose:       false,
		Progress:      ProgressPlain,
		ShowSummary:   true,
		ColorMode:     ColorAuto,
		LogMaxSize:    100,
		LogMaxBackups: 0,
	}
}

// SourcePath returns DataRoot joined with SourceDir.
func (c *Config) SourcePath() string { return filepath.Join(c.DataRoot, c.SourceDir) }

// TrainPath returns DataRoot joined with TrainDir.
func (c *Config) TrainPath() string { return filepath.Join(c.DataRoot, c.TrainDir) }

// ValPath returns DataRoot joined with ValDir.
func (c *Config) ValPath() string { return filepath.Join(c.DataRoot, c.ValDir) }

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields, the split rate range, and that the layout names
// are usable. Overlap with the source root is checked separately by
// [Config.ValidatePaths] once paths are resolved.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.NotValidf("color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	switch c.Progress {
	case ProgressPlain, ProgressBar, ProgressNone:
		// valid
	default:
		return errors.NotValidf("progress style %q (use 'plain', 'bar' or 'none')", c.Progress)
	}

	if c.SplitRate < 0 || c.SplitRate > 1 {
		return errors.NotValidf("split rate %v (must be within 0.0-1.0)", c.SplitRate)
	}
	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 {
		return errors.NotValidf("log rotation settings (size and backups must not be negative)")
	}

	if c.DataRoot == "" {
		return errors.New("data root must not be empty")
	}
	names := map[string]string{"source": c.SourceDir, "train": c.TrainDir, "val": c.ValDir}
	for label, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.Errorf("%s directory name must not be empty", label)
		}
	}
	if filepath.Clean(c.TrainDir) == filepath.Clean(c.ValDir) {
		return errors.New("train and val directories must differ")
	}
	return nil
}

// ValidatePaths ensures neither output root equals, lies inside, or contains
// the source root. Output roots are deleted before being rebuilt, so any
// overlap would destroy source data or make the splitter copy its own output.
// All arguments must be absolute, cleaned paths.
func (c *Config) ValidatePaths(sourceAbs string, outputAbs ...string) error {
	for _, out := range outputAbs {
		if isWithin(out, sourceAbs) || isWithin(sourceAbs, out) {
			return errors.Errorf("output directory %s overlaps source directory %s", out, sourceAbs)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or is nested below it.
func isWithin(path, dir string) bool {
	sep := string(filepath.Separator)
	return path == dir || strings.HasPrefix(path+sep, strings.TrimSuffix(dir, sep)+sep)
}
