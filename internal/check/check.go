// Package check provides the preflight validation that runs before the
// splitter touches the filesystem: the source directory must exist, and
// neither output root may overlap it.
package check

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/juju/errors"

	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/fsutil"
)

// Sentinel errors returned by Preflight. Match with errors.Is.
const (
	ErrSourceNotFound       = errors.ConstError("source directory not found")
	ErrNotADirectory        = errors.ConstError("source path is not a directory")
	ErrOutputOverlapsSource = errors.ConstError("output directory overlaps source directory")
)

// Preflight validates the layout on fs, which must be rooted at the data
// root: cfg.SourceDir must be an existing directory, and cfg.TrainDir and
// cfg.ValDir must neither equal, contain, nor lie inside it. It never
// mutates fs.
func Preflight(cfg *config.Config, fs billy.Filesystem) error {
	root := string(filepath.Separator)
	source := filepath.Join(root, cfg.SourceDir)
	if err := cfg.ValidatePaths(source,
		filepath.Join(root, cfg.TrainDir),
		filepath.Join(root, cfg.ValDir),
	); err != nil {
		return errors.Annotatef(ErrOutputOverlapsSource, "train %q, val %q, source %q", cfg.TrainDir, cfg.ValDir, cfg.SourceDir)
	}

	exists, err := fsutil.Exists(fs, cfg.SourceDir)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Annotatef(ErrSourceNotFound, "path '%s'", cfg.SourcePath())
	}
	isDir, err := fsutil.IsDir(fs, cfg.SourceDir)
	if err != nil {
		return err
	}
	if !isDir {
		return errors.Annotatef(ErrNotADirectory, "path '%s'", cfg.SourcePath())
	}
	return nil
}
