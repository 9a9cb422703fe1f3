// Package report provides genetic.Reporter implementations.
package report

import (
	"log/slog"

	"github.com/baldhumanity/evolve-go/genetic"
)

// LogReporter writes run progress to a structured logger.
type LogReporter struct {
	Logger *slog.Logger
	Every  int // Log every Nth generation; values below 1 log every generation.
}

// NewLogReporter creates a LogReporter that logs every generation.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{Logger: logger, Every: 1}
}

func (r *LogReporter) StartRun(runID string, config *genetic.RunConfig) {
	r.Logger.Info("Run started",
		"run_id", runID,
		"pop_size", config.PopSize,
		"generations", config.Generations,
		"seed", config.Seed)
}

func (r *LogReporter) EndGeneration(runID string, stats genetic.GenerationStats) {
	every := max(r.Every, 1)
	if stats.Generation%every != 0 {
		return
	}
	r.Logger.Info("Generation",
		"run_id", runID,
		"generation", stats.Generation,
		"fitness_max", stats.Fitness.Max,
		"fitness_min", stats.Fitness.Min,
		"fitness_avg", stats.Fitness.Avg,
		"cost_max", stats.Cost.Max,
		"cost_min", stats.Cost.Min,
		"cost_avg", stats.Cost.Avg)
}

func (r *LogReporter) EndRun(runID string, history *genetic.History) {
	r.Logger.Info("Run complete",
		"run_id", runID,
		"generations_recorded", history.Len(),
		"best_fitness", history.BestFitness(),
		"lowest_cost", history.LowestCost())
}
