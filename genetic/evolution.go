package genetic

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerationStats is one History entry.
type GenerationStats struct {
	Generation int // 0 is the initial population
	Fitness    Stats
	Cost       Stats
}

// History is the append-only per-generation record of a run.
type History struct {
	RunID       string
	Generations []GenerationStats
}

// Append records the statistics of one generation.
func (h *History) Append(stats GenerationStats) {
	h.Generations = append(h.Generations, stats)
}

// Len returns the number of recorded generations.
func (h *History) Len() int {
	return len(h.Generations)
}

// Fitness returns the (max, min, avg) fitness series, one entry per generation.
func (h *History) Fitness() []Stats {
	series := make([]Stats, len(h.Generations))
	for i, g := range h.Generations {
		series[i] = g.Fitness
	}
	return series
}

// Cost returns the (max, min, avg) cost series, one entry per generation.
func (h *History) Cost() []Stats {
	series := make([]Stats, len(h.Generations))
	for i, g := range h.Generations {
		series[i] = g.Cost
	}
	return series
}

// BestFitness returns the highest max fitness recorded in any generation.
func (h *History) BestFitness() float64 {
	best := 0.0
	for i, g := range h.Generations {
		if i == 0 || g.Fitness.Max > best {
			best = g.Fitness.Max
		}
	}
	return best
}

// LowestCost returns the lowest min cost recorded in any generation.
func (h *History) LowestCost() float64 {
	lowest := 0.0
	for i, g := range h.Generations {
		if i == 0 || g.Cost.Min < lowest {
			lowest = g.Cost.Min
		}
	}
	return lowest
}

// Reporter receives progress notifications from an Evolution.
type Reporter interface {
	StartRun(runID string, config *RunConfig)
	EndGeneration(runID string, stats GenerationStats)
	EndRun(runID string, history *History)
}

// Evolution drives a Population through a fixed number of generations.
type Evolution[C Chromosome] struct {
	RunID      string
	Config     *RunConfig
	Population *Population[C]
	History    *History
	Reporters  []Reporter
	Logger     *slog.Logger
}

// NewEvolution validates config and creates the initial population. A nil rng
// is replaced by one seeded from config.Seed, or from the clock when Seed is 0.
func NewEvolution[C Chromosome](config *RunConfig, repr Representation[C], rng *rand.Rand) (*Evolution[C], error) {
	if config == nil {
		return nil, errors.New("run config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(config.Seed)
	}

	pop, err := NewPopulation(repr, config.PopSize, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial population: %w", err)
	}
	pop.Elitism = config.Elitism

	runID := uuid.NewString()
	return &Evolution[C]{
		RunID:      runID,
		Config:     config,
		Population: pop,
		History:    &History{RunID: runID},
		Logger:     slog.Default(),
	}, nil
}

// NewRand returns a random source for seed, or a clock-seeded one when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Run records the initial population as generation 0 and then executes
// Config.Generations reproduce-evaluate-record cycles. On return the history
// holds Generations+1 entries and Population holds the final generation.
func (e *Evolution[C]) Run() error {
	if e.Logger == nil {
		e.Logger = slog.Default()
	}
	e.Population.Logger = e.Logger
	e.Logger.Info("Starting evolution",
		"run_id", e.RunID,
		"pop_size", e.Config.PopSize,
		"generations", e.Config.Generations,
		"pcross", e.Config.PCross,
		"pmutation", e.Config.PMutation,
		"elitism", e.Config.Elitism)
	for _, r := range e.Reporters {
		r.StartRun(e.RunID, e.Config)
	}

	start := time.Now()
	e.record(0)
	for gen := 1; gen <= e.Config.Generations; gen++ {
		if err := e.RunGeneration(gen); err != nil {
			return err
		}
	}

	for _, r := range e.Reporters {
		r.EndRun(e.RunID, e.History)
	}
	e.Logger.Info("Evolution finished",
		"run_id", e.RunID,
		"generations", e.Config.Generations,
		"best_fitness", e.History.BestFitness(),
		"lowest_cost", e.History.LowestCost(),
		"elapsed", time.Since(start))
	return nil
}

// RunGeneration reproduces the population once, evaluates the new generation and
// records it as generation gen.
func (e *Evolution[C]) RunGeneration(gen int) error {
	e.Population.Reproduce(e.Config.PMutation, e.Config.PCross)
	if err := e.Population.checkSize(); err != nil {
		return fmt.Errorf("reproduction failed in generation %d: %w", gen, err)
	}
	e.record(gen)
	return nil
}

func (e *Evolution[C]) record(gen int) {
	summary := e.Population.Evaluate()
	stats := GenerationStats{
		Generation: gen,
		Fitness:    summary.Fitness,
		Cost:       summary.Cost,
	}
	e.History.Append(stats)

	e.Logger.Debug("Generation evaluated",
		"run_id", e.RunID,
		"generation", gen,
		"max_fitness", stats.Fitness.Max,
		"avg_fitness", stats.Fitness.Avg,
		"min_cost", stats.Cost.Min)
	for _, r := range e.Reporters {
		r.EndGeneration(e.RunID, stats)
	}
}
