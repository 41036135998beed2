// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
)

// WeightedUnit is one entry of a random spawn table.
type WeightedUnit struct {
	UnitType defs.UnitType
	Weight   int
}

// PRNGService wraps a seeded generator so demo scenarios can be replayed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed; 0 seeds from the
// clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// ChooseWeighted picks a unit type with probability proportional to its
// weight. With no usable weights the first entry wins.
func (s *PRNGService) ChooseWeighted(entries []WeightedUnit) defs.UnitType {
	if len(entries) == 0 {
		return defs.DefaultUnit
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].UnitType
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.UnitType
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].UnitType
}
