package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// metricsFile is the YAML document shape accepted by LoadMetricsFile.
type metricsFile struct {
	Metrics []MetricDefinition `yaml:"metrics"`
}

// LoadMetricsFile reads custom metric definitions from a YAML file. It is
// the override hook for deployments that tune weights or add metrics
// without rebuilding; the built-in definitions stay the default.
func LoadMetricsFile(path string) ([]MetricDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metrics file: %w", err)
	}
	var doc metricsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse metrics file: %w", err)
	}
	for i, def := range doc.Metrics {
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("metric %d (%s): %w", i, def.ID, err)
		}
	}
	return doc.Metrics, nil
}

func validateDefinition(def MetricDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("id is required")
	}
	if def.Property == "" {
		return fmt.Errorf("property is required")
	}
	if def.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %d", def.Weight)
	}
	switch def.Category {
	case Findability, Accessibility, Interoperability, Reusability, Contextuality:
		return nil
	default:
		return fmt.Errorf("unknown category %q", def.Category)
	}
}

// Override replaces the registered metric set of a profile. Intended for
// test isolation and deployments loading definitions via LoadMetricsFile.
func Override(p ID, defs []MetricDefinition) error {
	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return err
		}
	}
	metricsByProfile[p] = defs
	return nil
}
