// Package telemetry exposes Prometheus counters for the validation
// pipeline. Counters register on the default registerer; embedding hosts
// scrape them through their own /metrics endpoint.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ValidationsTotal counts SHACL validation runs by profile and outcome.
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "validations_total",
		Help:      "SHACL validation runs by profile and outcome.",
	}, []string{"profile", "outcome"})

	// ViolationsTotal counts reported results by profile and severity.
	ViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "violations_total",
		Help:      "SHACL results reported, by profile and severity.",
	}, []string{"profile", "severity"})

	// QualityRunsTotal counts metric-scoring runs by profile.
	QualityRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "quality_runs_total",
		Help:      "Quality metric evaluations by profile.",
	}, []string{"profile"})

	// ShapeLoadFailures counts shape documents that failed to load.
	ShapeLoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "shape_load_failures_total",
		Help:      "Shape documents skipped because fetch or parse failed.",
	}, []string{"profile"})

	// ShapeCacheHits counts shape-dataset cache hits and misses.
	ShapeCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "shape_cache_lookups_total",
		Help:      "Shape-dataset cache lookups by result.",
	}, []string{"result"})

	// VocabularyLoadFailures counts vocabularies that degraded to empty.
	VocabularyLoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcatqa",
		Name:      "vocabulary_load_failures_total",
		Help:      "Controlled vocabularies that failed to load.",
	}, []string{"vocabulary"})
)
