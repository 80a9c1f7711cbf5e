package quality

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/dcatqa/profile"
)

// dqvContext is the JSON-LD context of the DQV export.
var dqvContext = map[string]any{
	"dqv":  "http://www.w3.org/ns/dqv#",
	"dcat": "http://www.w3.org/ns/dcat#",
	"dct":  "http://purl.org/dc/terms/",
	"skos": "http://www.w3.org/2004/02/skos/core#",
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
	"mqa":  "https://data.europa.eu/mqa/metrics#",
}

// ExportDQV renders a quality result as a W3C Data Quality Vocabulary
// measurement set in JSON-LD. Metric labels are localized to lang, falling
// back to English.
func ExportDQV(r *Result, lang string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("nil result")
	}
	assessmentID := "urn:uuid:" + r.ID

	measurements := make([]any, 0, 32)
	refs := make([]any, 0, 32)
	n := 0
	for _, cat := range profile.Categories {
		cs, ok := r.ByCategory[cat]
		if !ok {
			continue
		}
		for _, m := range cs.Metrics {
			n++
			id := fmt.Sprintf("_:measurement%d", n)
			refs = append(refs, map[string]any{"@id": id})
			measurements = append(measurements, map[string]any{
				"@id":                 id,
				"@type":               "dqv:QualityMeasurement",
				"dqv:isMeasurementOf": map[string]any{"@id": "mqa:" + m.ID},
				"dqv:computedOn":      map[string]any{"@id": assessmentID},
				"dqv:value": map[string]any{
					"@value": m.Score,
					"@type":  "xsd:double",
				},
				"skos:prefLabel": map[string]any{
					"@value":    profile.Label(m.ID, lang),
					"@language": lang,
				},
				"dcat:inCategory": string(m.Category),
			})
		}
	}

	doc := map[string]any{
		"@context": dqvContext,
		"@graph": append([]any{
			map[string]any{
				"@id":                       assessmentID,
				"@type":                     "dcat:Dataset",
				"dct:conformsTo":            map[string]any{"@id": "https://data.europa.eu/mqa/profiles/" + string(r.Profile)},
				"dct:created":               r.Created.Format("2006-01-02T15:04:05Z"),
				"dqv:hasQualityMeasurement": refs,
			},
		}, measurements...),
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dqv document: %w", err)
	}
	return string(out), nil
}
