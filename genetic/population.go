package genetic

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
)

// Summary holds the per-generation statistics of a population.
type Summary struct {
	Fitness Stats
	Cost    Stats
}

// Population holds one generation of chromosomes and builds the next.
type Population[C Chromosome] struct {
	Members        []C // Current generation, always PopSize long.
	PopSize        int
	Elitism        int // Best members cloned into the next generation; 0 disables
	Representation Representation[C]
	Logger         *slog.Logger

	rng *rand.Rand
}

// NewPopulation creates popSize random chromosomes and computes their fitness.
func NewPopulation[C Chromosome](repr Representation[C], popSize int, rng *rand.Rand) (*Population[C], error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if repr == nil {
		return nil, errors.New("representation is required")
	}
	if popSize < 2 {
		return nil, configErrorf("pop_size", "must be at least 2, got %d", popSize)
	}

	members := make([]C, popSize)
	for i := range members {
		members[i] = repr.Random(rng)
		members[i].Fitness()
	}
	return &Population[C]{
		Members:        members,
		PopSize:        popSize,
		Representation: repr,
		Logger:         slog.Default(),
		rng:            rng,
	}, nil
}

// Evaluate computes cost and fitness for every member and returns their
// max, min and average. Cached values are reused; every operator that changes a
// chromosome's content resets its cache first.
func (p *Population[C]) Evaluate() Summary {
	fitnesses := make([]float64, len(p.Members))
	costs := make([]float64, len(p.Members))
	for i, m := range p.Members {
		fitnesses[i] = m.Fitness()
		costs[i] = m.Cost()
	}
	return Summary{
		Fitness: Summarize(fitnesses),
		Cost:    Summarize(costs),
	}
}

// FitnessSum returns the total fitness of the current generation.
func (p *Population[C]) FitnessSum() float64 {
	sum := 0.0
	for _, m := range p.Members {
		sum += m.Fitness()
	}
	return sum
}

// Reproduce replaces the current generation. Parent pairs are drawn by roulette
// selection against the fitness sum of the current generation, computed once.
// Each pair is recombined with probability pcross, and both children are mutated
// and appended. Pairs are produced until at least PopSize children exist, then
// the surplus child of the last pair, if any, is dropped.
//
// With Elitism > 0 the next generation starts with clones of the fittest
// members, which then compete for selection like any other member.
func (p *Population[C]) Reproduce(pmutation, pcross float64) {
	fitnessSum := p.FitnessSum()
	if fitnessSum <= 0 {
		p.Logger.Debug("Degenerate fitness sum, selecting parents uniformly",
			"fitness_sum", fitnessSum,
			"pop_size", p.PopSize)
	}

	next := make([]C, 0, p.PopSize+1)
	for _, elite := range p.elites() {
		next = append(next, p.Representation.Clone(elite))
	}
	for len(next) < p.PopSize {
		parent1 := RouletteSelect(p.rng, p.Members, fitnessSum)
		parent2 := RouletteSelect(p.rng, p.Members, fitnessSum)

		child1, child2 := p.Representation.Crossover(p.rng, parent1, parent2, pcross)
		p.Representation.Mutate(p.rng, child1, pmutation)
		p.Representation.Mutate(p.rng, child2, pmutation)

		next = append(next, child1, child2)
	}
	p.Members = next[:p.PopSize]
}

// elites returns the Elitism fittest members, fittest first.
func (p *Population[C]) elites() []C {
	if p.Elitism <= 0 {
		return nil
	}
	ranked := append([]C(nil), p.Members...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness() > ranked[j].Fitness()
	})
	return ranked[:min(p.Elitism, len(ranked))]
}

// Best returns the member with the highest fitness. Ties go to the earliest.
func (p *Population[C]) Best() C {
	best := p.Members[0]
	for _, m := range p.Members[1:] {
		if m.Fitness() > best.Fitness() {
			best = m
		}
	}
	return best
}

// Worst returns the member with the lowest fitness. Ties go to the earliest.
func (p *Population[C]) Worst() C {
	worst := p.Members[0]
	for _, m := range p.Members[1:] {
		if m.Fitness() < worst.Fitness() {
			worst = m
		}
	}
	return worst
}

// Size returns the number of members.
func (p *Population[C]) Size() int {
	return len(p.Members)
}

// checkSize reports ErrInvariantViolation if the generation has the wrong size.
func (p *Population[C]) checkSize() error {
	if len(p.Members) != p.PopSize {
		return fmt.Errorf("%w: population has %d members, want %d", ErrInvariantViolation, len(p.Members), p.PopSize)
	}
	return nil
}
