// Command evolve runs the genetic algorithm on the function-maximisation
// (genmax) or travelling-salesman (tsp) problem described by an INI config.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/baldhumanity/evolve-go/genetic"
	"github.com/baldhumanity/evolve-go/genetic/report"
)

var (
	configPath string
	seed       int64
	historyOut string
	metricsOut string
	logEvery   int
	verbose    bool

	rootCmd = &cobra.Command{
		Use:           "evolve",
		Short:         "Run a generational genetic algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	genmaxCmd = &cobra.Command{
		Use:   "genmax",
		Short: "Maximise a polynomial over a binary-encoded integer domain",
		RunE:  runGenMax, // Defined in genmax.go
	}

	tspCmd = &cobra.Command{
		Use:   "tsp",
		Short: "Search for a short closed tour over a city catalog",
		RunE:  runTSP, // Defined in tsp.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the INI run configuration (required)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed; overrides [Run] seed when non-zero")
	rootCmd.PersistentFlags().StringVar(&historyOut, "history-out", "", "write the per-generation history (gzip+gob) to this file")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file")
	rootCmd.PersistentFlags().IntVar(&logEvery, "log-every", 10, "log statistics every N generations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(genmaxCmd, tspCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "evolve: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on a terminal and a JSON logger otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// loadRunConfig loads the config file and applies command-line overrides.
func loadRunConfig() (*genetic.Config, error) {
	config, err := genetic.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		config.Run.Seed = seed
	}
	return config, nil
}

// runEvolution wires logging and reporters into an evolution, runs it and writes
// the requested outputs.
func runEvolution[C genetic.Chromosome](evo *genetic.Evolution[C], logger *slog.Logger) error {
	registry := prometheus.NewRegistry()
	evo.Logger = logger
	evo.Reporters = append(evo.Reporters,
		&report.LogReporter{Logger: logger, Every: logEvery},
		report.NewMetricsReporter(registry),
	)

	if err := evo.Run(); err != nil {
		return fmt.Errorf("evolution run %s failed: %w", evo.RunID, err)
	}

	if historyOut != "" {
		if err := evo.History.SaveHistory(historyOut); err != nil {
			return err
		}
		logger.Info("History saved", "path", historyOut, "generations", evo.History.Len())
	}
	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, registry); err != nil {
			return fmt.Errorf("failed to write metrics to '%s': %w", metricsOut, err)
		}
		logger.Info("Metrics written", "path", metricsOut)
	}
	return nil
}
