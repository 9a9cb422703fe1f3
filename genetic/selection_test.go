package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubChromosome has a fixed fitness.
type stubChromosome struct {
	id      int
	fitness float64
}

func (s *stubChromosome) Cost() float64    { return -s.fitness }
func (s *stubChromosome) Fitness() float64 { return s.fitness }
func (s *stubChromosome) Len() int         { return 1 }

func stubs(fitnesses ...float64) []*stubChromosome {
	out := make([]*stubChromosome, len(fitnesses))
	for i, f := range fitnesses {
		out[i] = &stubChromosome{id: i, fitness: f}
	}
	return out
}

func sumFitness(members []*stubChromosome) float64 {
	sum := 0.0
	for _, m := range members {
		sum += m.fitness
	}
	return sum
}

func TestRouletteSelectNeverPicksZeroFitness(t *testing.T) {
	members := stubs(0, 1, 0, 2, 0)
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 10000; i++ {
		picked := RouletteSelect(rng, members, sumFitness(members))
		assert.NotZero(t, picked.fitness, "picked zero-fitness member %d", picked.id)
	}
}

func TestRouletteSelectIsFitnessProportional(t *testing.T) {
	members := stubs(1, 3)
	rng := rand.New(rand.NewSource(22))

	const draws = 20000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[RouletteSelect(rng, members, 4).id]++
	}
	assert.InDelta(t, 0.25, float64(counts[0])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(counts[1])/draws, 0.02)
}

func TestRouletteSelectDegenerateSumIsUniform(t *testing.T) {
	members := stubs(0, 0, 0, 0)
	rng := rand.New(rand.NewSource(23))

	const draws = 8000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[RouletteSelect(rng, members, 0).id]++
	}
	for id := range members {
		assert.InDelta(t, 0.25, float64(counts[id])/draws, 0.03, "member %d", id)
	}
}

func TestRouletteSelectFallsBackToLastMember(t *testing.T) {
	// A sum larger than the accumulated fitness leaves the draw past the end of
	// the wheel, which selects the last member.
	members := stubs(1, 1, 1)
	rng := rand.New(rand.NewSource(24))

	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, RouletteSelect(rng, members, 1e12).id)
	}
}
