// SPDX-License-Identifier: MIT
// Package metrics records per-run Prometheus metrics on a private registry
// and exports them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geosocial"

// Trial outcomes for PathTrials.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "unreachable"
)

// Recorder owns the collectors of one run. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry *prometheus.Registry

	StageDuration     *prometheus.HistogramVec
	GraphNodes        prometheus.Gauge
	GraphEdges        prometheus.Gauge
	Communities       prometheus.Gauge
	PropagationRounds prometheus.Gauge
	ForestEdges       prometheus.Gauge
	ForestWeight      prometheus.Gauge
	PathAverage       prometheus.Gauge
	PathTrials        *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		StageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Wall time of each pipeline stage",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"stage"},
		),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the working subgraph",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Undirected edges in the working subgraph",
		}),
		Communities: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "communities",
			Help:      "Communities found by label propagation",
		}),
		PropagationRounds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "propagation_iterations",
			Help:      "Label propagation passes executed",
		}),
		ForestEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forest_edges",
			Help:      "Edges in the minimum spanning forest",
		}),
		ForestWeight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forest_weight_km",
			Help:      "Total great-circle length of the spanning forest",
		}),
		PathAverage: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_length_average",
			Help:      "Mean BFS distance over successful pair trials",
		}),
		PathTrials: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_trials_total",
				Help:      "Random pair trials by outcome",
			},
			[]string{"outcome"}, // found, unreachable
		),
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObserveStage records the duration of a named stage.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// SetGraph records the size of the working graph.
func (r *Recorder) SetGraph(nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// SetCommunities records the label-propagation outcome.
func (r *Recorder) SetCommunities(count, iterations int) {
	if r == nil {
		return
	}
	r.Communities.Set(float64(count))
	r.PropagationRounds.Set(float64(iterations))
}

// SetForest records the spanning-forest outcome.
func (r *Recorder) SetForest(edges int, weightKm float64) {
	if r == nil {
		return
	}
	r.ForestEdges.Set(float64(edges))
	r.ForestWeight.Set(weightKm)
}

// SetPathAverage records the estimated mean path length.
func (r *Recorder) SetPathAverage(avg float64) {
	if r == nil {
		return
	}
	r.PathAverage.Set(avg)
}

// CountTrial increments the trial counter for one outcome. Safe for
// concurrent use.
func (r *Recorder) CountTrial(found bool) {
	if r == nil {
		return
	}
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	r.PathTrials.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes the registry to path atomically. A nil recorder or
// empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.registry)
}
