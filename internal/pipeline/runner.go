package pipeline

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/juju/errors"

	"github.com/backmassage/datasplit/internal/check"
	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/display"
	"github.com/backmassage/datasplit/internal/fsutil"
	"github.com/backmassage/datasplit/internal/planner"
)

// Logger is the logging surface Run needs; *logging.Logger satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Run is the top-level entry point. fs must be rooted at the data root; the
// source, train and val directories are resolved relative to it.
//
// Flow: preflight → discover classes → prepare train/ and val/ trees →
// for each class: list → sample → copy with progress. Nothing is mutated
// before preflight passes, and nothing at all in dry-run mode. The returned
// stats cover every class processed before an error, if any.
func Run(ctx context.Context, cfg *config.Config, fs billy.Filesystem, log Logger, progress display.Progress) (RunStats, error) {
	var stats RunStats

	if err := check.Preflight(cfg, fs); err != nil {
		return stats, err
	}

	classes, err := DiscoverClasses(fs, cfg.SourceDir)
	if err != nil {
		return stats, err
	}
	stats.Classes = len(classes)
	logBatchHeader(cfg, log, &stats)
	if len(classes) == 0 {
		log.Warn("No class directories found in %s", cfg.SourcePath())
	}

	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be created or copied")
	} else if err := prepareTrees(cfg, fs, classes); err != nil {
		return stats, err
	}

	sampler := planner.NewSampler(cfg.Seed)
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return stats, errors.Annotate(err, "interrupted")
		}
		cs, err := processClass(ctx, cfg, fs, log, progress, sampler, class)
		stats.add(cs)
		if err != nil {
			return stats, err
		}
	}

	log.Success("processing done!")
	return stats, nil
}

// prepareTrees recreates the train and val roots and one empty directory per
// class under each.
func prepareTrees(cfg *config.Config, fs billy.Filesystem, classes []string) error {
	for _, root := range []string{cfg.TrainDir, cfg.ValDir} {
		if err := fsutil.PrepareDir(fs, root); err != nil {
			return err
		}
		for _, class := range classes {
			if err := fsutil.PrepareDir(fs, fs.Join(root, class)); err != nil {
				return err
			}
		}
	}
	return nil
}

// processClass lists, plans and copies one class. The sampler is drawn
// exactly once per class, including in dry-run mode, so a dry run reports
// the same split a real run produces.
func processClass(
	ctx context.Context,
	cfg *config.Config,
	fs billy.Filesystem,
	log Logger,
	progress display.Progress,
	sampler *planner.Sampler,
	class string,
) (ClassStats, error) {
	cs := ClassStats{Class: class}
	classDir := fs.Join(cfg.SourceDir, class)

	images, nested, err := ListImages(fs, classDir)
	if err != nil {
		return cs, err
	}
	for _, name := range nested {
		log.Warn("[%s] skipping nested directory %s", class, name)
	}
	cs.Skipped = len(nested)

	plan := planner.BuildPlan(class, images, cfg.SplitRate, sampler)
	cs.Files = len(images)
	cs.Train = plan.TrainCount()
	cs.Val = plan.ValCount()
	log.Debug("[%s] %d files: %d train, %d val", class, cs.Files, cs.Train, cs.Val)

	if cfg.DryRun {
		log.Info("[DRY] [%s] would copy %d to %s, %d to %s", class, cs.Train, cfg.TrainDir, cs.Val, cfg.ValDir)
		for _, name := range plan.ValFiles() {
			log.Debug("[DRY] [%s] val: %s", class, name)
		}
		return cs, nil
	}

	dest := map[planner.Split]string{
		planner.SplitTrain: fs.Join(cfg.TrainDir, class),
		planner.SplitVal:   fs.Join(cfg.ValDir, class),
	}

	progress.Start(class, len(images))
	defer progress.Done()
	for i, name := range images {
		if err := ctx.Err(); err != nil {
			return cs, errors.Annotatef(err, "interrupted in class %s", class)
		}
		n, err := fsutil.CopyFile(fs, fs.Join(classDir, name), dest[plan.Assign(name)])
		if err != nil {
			return cs, err
		}
		cs.Copied++
		cs.Bytes += n
		progress.Step(i + 1)
	}
	return cs, nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log Logger, stats *RunStats) {
	log.Info("Found %d classes in %s", stats.Classes, cfg.SourcePath())
	log.Info("Validation share: %s per class (seed %d)", display.FormatPercent(cfg.SplitRate), cfg.Seed)
	log.Info("Train: %s", cfg.TrainPath())
	log.Info("Val:   %s", cfg.ValPath())
}
