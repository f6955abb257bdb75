package planner

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Split is the subset a file is assigned to.
type Split int

const (
	SplitTrain Split = iota
	SplitVal
)

// String returns "train" or "val".
func (s Split) String() string {
	if s == SplitVal {
		return "val"
	}
	return "train"
}

// ClassPlan holds the split decision for every file of one class. It is
// produced by BuildPlan and consumed by the pipeline, which copies Files in
// order to the directory their Split names.
type ClassPlan struct {
	Class string
	Files []string           // File names in listing order.
	Val   mapset.Set[string] // Sampled validation names; always a subset of Files.
}

// Assign returns the subset name belongs to.
func (p *ClassPlan) Assign(name string) Split {
	if p.Val.Contains(name) {
		return SplitVal
	}
	return SplitTrain
}

// ValCount is the number of files assigned to validation.
func (p *ClassPlan) ValCount() int { return p.Val.Cardinality() }

// TrainCount is the number of files assigned to training.
func (p *ClassPlan) TrainCount() int { return len(p.Files) - p.Val.Cardinality() }

// ValFiles returns the validation names in listing order.
func (p *ClassPlan) ValFiles() []string {
	return lo.Filter(p.Files, func(name string, _ int) bool { return p.Val.Contains(name) })
}

// TrainFiles returns the training names in listing order.
func (p *ClassPlan) TrainFiles() []string {
	return lo.Reject(p.Files, func(name string, _ int) bool { return p.Val.Contains(name) })
}
