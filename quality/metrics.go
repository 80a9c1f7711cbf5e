package quality

import (
	"net/url"
	"strings"

	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

// Metric is the evaluated outcome of one metric definition. Score is in
// points: the definition's full weight when the metric is satisfied, a
// fraction of it for graduated metrics, zero otherwise. Value carries the
// longest matched property value, the one length metrics are scored on.
type Metric struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Property string           `json:"property"`
	Category profile.Category `json:"category"`
	Weight   int              `json:"weight"`
	Found    bool             `json:"found"`
	Score    float64          `json:"score"`
	Value    string           `json:"value,omitempty"`
}

// vocabularyGated maps metric identifiers to the controlled vocabulary their
// values must appear in.
var vocabularyGated = map[string]string{
	"dct_format_vocabulary":          VocabFileTypes,
	"dct_format_vocabulary_nti_risp": VocabFileTypes,
	"dct_mediaType_vocabulary":       VocabMediaTypes,
	"dct_format_nonproprietary":      VocabNonProprietary,
	"dct_format_machinereadable":     VocabMachineReadable,
	"dct_license_vocabulary":         VocabLicenses,
	"dct_accessRights_vocabulary":    VocabAccessRights,
}

// urlStatusMetrics are scored on the syntactic validity of their URL values.
// Live dereferencing is out of scope for this engine.
var urlStatusMetrics = map[string]bool{
	"dcat_accessURL_status":   true,
	"dcat_downloadURL_status": true,
}

// lengthPolicy is the graduated-length scoring configuration of a metric.
type lengthPolicy struct {
	minLen, idealLen int
}

var lengthMetrics = map[string]lengthPolicy{
	"dct_title_length":       {minLen: 10, idealLen: 100},
	"dct_description_length": {minLen: 25, idealLen: 250},
}

// EvaluateMetric scores one metric definition against a data graph. Any
// panic inside a policy is isolated to that metric, which scores zero.
func EvaluateMetric(g *rdf.Graph, def profile.MetricDefinition, p profile.ID) (m Metric) {
	m = Metric{
		ID:       def.ID,
		Name:     profile.Label(def.ID, "en"),
		Property: def.Property,
		Category: def.Category,
		Weight:   def.Weight,
	}
	defer func() {
		if recover() != nil {
			m.Found = false
			m.Score = 0
			m.Value = ""
		}
	}()

	values := propertyValues(g, def.Property)
	m.Found = len(values) > 0
	if !m.Found {
		return m
	}
	m.Value = longest(values)

	switch {
	case vocabularyGated[def.ID] != "":
		if MatchesVocabulary(values, vocabularyGated[def.ID]) {
			m.Score = float64(def.Weight)
		}
	case urlStatusMetrics[def.ID]:
		if allValidURLs(values) {
			m.Score = float64(def.Weight)
		}
	default:
		if policy, ok := lengthMetrics[def.ID]; ok {
			m.Score = float64(def.Weight) * LengthScore(longest(values), policy.minLen, policy.idealLen)
		} else {
			m.Score = float64(def.Weight)
		}
	}
	return m
}

// propertyValues collects the normalized object values of every triple whose
// predicate is the definition's property, across all subjects.
func propertyValues(g *rdf.Graph, property string) []string {
	pred := rdf.NewIRI(vocabulary.Expand(property))
	var out []string
	for _, q := range g.Match(nil, &pred, nil) {
		if v := rdf.TermValue(q.Object); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// allValidURLs reports whether every value parses as an absolute http(s)
// URL.
func allValidURLs(values []string) bool {
	for _, v := range values {
		u, err := url.Parse(strings.TrimSpace(v))
		if err != nil || !u.IsAbs() || u.Host == "" {
			return false
		}
	}
	return len(values) > 0
}

// longest returns the longest candidate, the value a length metric is
// scored on when a property repeats per language.
func longest(values []string) string {
	best := ""
	for _, v := range values {
		if len(v) > len(best) {
			best = v
		}
	}
	return best
}

// LengthScore grades a text length: 0 for empty text, 0.5 below minLen, 1.0
// at or past idealLen, linear between.
func LengthScore(text string, minLen, idealLen int) float64 {
	n := len(strings.TrimSpace(text))
	switch {
	case n == 0:
		return 0
	case n < minLen:
		return 0.5
	case n >= idealLen:
		return 1.0
	default:
		return 0.5 + 0.5*float64(n-minLen)/float64(idealLen-minLen)
	}
}
