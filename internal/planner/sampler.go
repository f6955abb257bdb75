package planner

import "math/rand"

// Sampler draws samples without replacement from a seeded generator. It is
// not safe for concurrent use; the splitter draws from it sequentially.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns k distinct indices from [0, n) using a partial Fisher-Yates
// shuffle: position i is swapped with a uniformly chosen position in [i, n),
// for i < k. k is clamped to [0, n]. Exactly k values are drawn from the
// generator, so the stream position after a call depends only on k.
func (s *Sampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}
