package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baldhumanity/evolve-go/genetic"
)

// MetricsReporter exports run progress as Prometheus metrics labelled by run id.
type MetricsReporter struct {
	generation  *prometheus.GaugeVec
	fitness     *prometheus.GaugeVec
	cost        *prometheus.GaugeVec
	generations *prometheus.CounterVec
	runs        *prometheus.CounterVec
}

// NewMetricsReporter registers the reporter's metrics with reg.
func NewMetricsReporter(reg prometheus.Registerer) *MetricsReporter {
	factory := promauto.With(reg)
	return &MetricsReporter{
		generation: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "evolve",
			Name:      "generation",
			Help:      "Index of the most recently recorded generation.",
		}, []string{"run_id"}),
		fitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "evolve",
			Name:      "fitness",
			Help:      "Fitness statistics of the most recent generation.",
		}, []string{"run_id", "stat"}),
		cost: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "evolve",
			Name:      "cost",
			Help:      "Cost statistics of the most recent generation.",
		}, []string{"run_id", "stat"}),
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evolve",
			Name:      "generations_total",
			Help:      "Generations recorded, including the initial population.",
		}, []string{"run_id"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evolve",
			Name:      "runs_total",
			Help:      "Runs by lifecycle state.",
		}, []string{"state"}),
	}
}

func (m *MetricsReporter) StartRun(runID string, config *genetic.RunConfig) {
	m.runs.WithLabelValues("started").Inc()
}

func (m *MetricsReporter) EndGeneration(runID string, stats genetic.GenerationStats) {
	m.generation.WithLabelValues(runID).Set(float64(stats.Generation))
	setStats(m.fitness, runID, stats.Fitness)
	setStats(m.cost, runID, stats.Cost)
	m.generations.WithLabelValues(runID).Inc()
}

func (m *MetricsReporter) EndRun(runID string, history *genetic.History) {
	m.runs.WithLabelValues("completed").Inc()
}

func setStats(vec *prometheus.GaugeVec, runID string, s genetic.Stats) {
	vec.WithLabelValues(runID, "max").Set(s.Max)
	vec.WithLabelValues(runID, "min").Set(s.Min)
	vec.WithLabelValues(runID, "avg").Set(s.Avg)
}
