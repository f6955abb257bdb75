package pipeline

import (
	"github.com/samber/lo"

	"github.com/backmassage/datasplit/internal/display"
)

// ClassStats holds the counters for one class.
type ClassStats struct {
	Class   string
	Files   int   // Image files found (and planned).
	Train   int   // Files assigned to training.
	Val     int   // Files assigned to validation.
	Copied  int   // Files actually copied (0 in dry-run).
	Skipped int   // Nested directories ignored.
	Bytes   int64 // Bytes copied.
}

// RunStats tracks aggregate counters across a run, plus one entry per class
// in processing order.
type RunStats struct {
	Classes  int
	Files    int
	Train    int
	Val      int
	Copied   int
	Bytes    int64
	PerClass []ClassStats
}

// add folds one class into the totals.
func (s *RunStats) add(cs ClassStats) {
	s.Files += cs.Files
	s.Train += cs.Train
	s.Val += cs.Val
	s.Copied += cs.Copied
	s.Bytes += cs.Bytes
	s.PerClass = append(s.PerClass, cs)
}

// Rows converts the per-class stats into summary table rows.
func (s *RunStats) Rows() []display.SummaryRow {
	return lo.Map(s.PerClass, func(cs ClassStats, _ int) display.SummaryRow {
		return display.SummaryRow{
			Class: cs.Class,
			Files: cs.Files,
			Train: cs.Train,
			Val:   cs.Val,
			Bytes: cs.Bytes,
		}
	})
}
