package genetic

import "math/rand"

// Chromosome is one candidate solution held by a Population.
type Chromosome interface {
	// Cost returns the raw objective value. For routes lower is better.
	Cost() float64
	// Fitness returns the non-negative suitability used for selection.
	// Higher is always better.
	Fitness() float64
	// Len returns the number of genes.
	Len() int
}

// Representation knows how to create and recombine chromosomes of one encoding.
// All randomness is drawn from the rng passed in, in a fixed order, so a seeded
// source reproduces a run exactly.
type Representation[C Chromosome] interface {
	// Random returns a new chromosome with random content.
	Random(rng *rand.Rand) C
	// Crossover recombines two parents with probability pcross. The returned
	// children are always new values the caller may mutate freely.
	Crossover(rng *rand.Rand, parent1, parent2 C, pcross float64) (C, C)
	// Mutate alters a chromosome in place according to pmutation.
	Mutate(rng *rand.Rand, c C, pmutation float64)
	// Clone returns an independent copy of c.
	Clone(c C) C
}

// flip returns true with the given probability.
func flip(rng *rand.Rand, probability float64) bool {
	return rng.Float64() < probability
}
