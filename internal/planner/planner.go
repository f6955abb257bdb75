package planner

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// ValCount returns floor(total * rate), the validation size for a class of
// total files. rate is expected in [0, 1].
func ValCount(total int, rate float64) int {
	if total <= 0 || rate <= 0 {
		return 0
	}
	k := int(float64(total) * rate)
	if k > total {
		return total
	}
	return k
}

// BuildPlan samples ValCount(len(files), rate) names from files for the
// validation subset; every other name goes to training. files keeps its
// order in the returned plan.
func BuildPlan(class string, files []string, rate float64, s *Sampler) *ClassPlan {
	idx := s.Sample(len(files), ValCount(len(files), rate))
	val := mapset.NewThreadUnsafeSet(lo.Map(idx, func(i int, _ int) string { return files[i] })...)
	return &ClassPlan{
		Class: class,
		Files: files,
		Val:   val,
	}
}
