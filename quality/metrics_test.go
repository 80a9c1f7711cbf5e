package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

func graphWith(t *testing.T, turtle string) *rdf.Graph {
	t.Helper()
	g, err := rdf.Decode(turtle, rdf.FormatTurtle)
	require.NoError(t, err)
	return g
}

func TestLengthScore(t *testing.T) {
	assert.Equal(t, 0.0, LengthScore("", 10, 100))
	assert.Equal(t, 0.0, LengthScore("   ", 10, 100), "whitespace-only counts as empty")
	assert.Equal(t, 0.5, LengthScore("abc", 10, 100))
	assert.Equal(t, 1.0, LengthScore(strings.Repeat("x", 150), 10, 100))
	assert.Equal(t, 1.0, LengthScore(strings.Repeat("x", 100), 10, 100))

	mid := LengthScore(strings.Repeat("x", 55), 10, 100)
	assert.Greater(t, mid, 0.5)
	assert.Less(t, mid, 1.0)
	assert.InDelta(t, 0.75, mid, 0.001)
}

func TestEvaluateMetricPresence(t *testing.T) {
	g := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/ds> dct:title "Air quality measurements"@en .
`)
	def := profile.MetricDefinition{ID: "dct_title", Property: "dct:title", Weight: 40, Category: profile.Findability}
	m := EvaluateMetric(g, def, profile.DCATAPES)
	assert.True(t, m.Found)
	assert.Equal(t, 40.0, m.Score)
	assert.Equal(t, "Title", m.Name)
	assert.Equal(t, "Air quality measurements", m.Value)
}

func TestEvaluateMetricAbsent(t *testing.T) {
	g := rdf.NewGraph()
	def := profile.MetricDefinition{ID: "dct_title", Property: "dct:title", Weight: 40, Category: profile.Findability}
	m := EvaluateMetric(g, def, profile.DCATAPES)
	assert.False(t, m.Found)
	assert.Equal(t, 0.0, m.Score)
	assert.Equal(t, "Title", m.Name, "name resolves even when the property is absent")
	assert.Empty(t, m.Value)
}

func TestEvaluateMetricVocabularyGated(t *testing.T) {
	setupVocabDir(t, map[string]string{
		VocabFileTypes: `{"value":"http://publications.europa.eu/resource/authority/file-type/CSV","label":"CSV"}`,
	})
	def := profile.MetricDefinition{ID: "dct_format_vocabulary", Property: "dct:format", Weight: 5, Category: profile.Interoperability}

	inVocab := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/dist> dct:format <http://publications.europa.eu/resource/authority/file-type/CSV> .
`)
	m := EvaluateMetric(inVocab, def, profile.DCATAP)
	assert.True(t, m.Found)
	assert.Equal(t, 5.0, m.Score)

	outOfVocab := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/dist> dct:format "proprietary-thing" .
`)
	m = EvaluateMetric(outOfVocab, def, profile.DCATAP)
	assert.True(t, m.Found, "property present even when value is out of vocabulary")
	assert.Equal(t, 0.0, m.Score)
}

func TestEvaluateMetricURLStatus(t *testing.T) {
	def := profile.MetricDefinition{ID: "dcat_accessURL_status", Property: "dcat:accessURL", Weight: 50, Category: profile.Accessibility}

	valid := graphWith(t, `@prefix dcat: <http://www.w3.org/ns/dcat#> .
<http://example.org/dist> dcat:accessURL <https://datos.gob.es/catalogo.csv> .
`)
	m := EvaluateMetric(valid, def, profile.DCATAPES)
	assert.Equal(t, 50.0, m.Score)

	invalid := graphWith(t, `@prefix dcat: <http://www.w3.org/ns/dcat#> .
<http://example.org/dist> dcat:accessURL "not a url" .
`)
	m = EvaluateMetric(invalid, def, profile.DCATAPES)
	assert.True(t, m.Found)
	assert.Equal(t, 0.0, m.Score)
}

func TestEvaluateMetricGraduatedLength(t *testing.T) {
	def := profile.MetricDefinition{ID: "dct_title_length", Property: "dct:title", Weight: 20, Category: profile.Contextuality}

	long := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/ds> dct:title "`+strings.Repeat("a", 120)+`" .
`)
	m := EvaluateMetric(long, def, profile.DCATAPES)
	assert.Equal(t, 20.0, m.Score)

	short := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/ds> dct:title "short" .
`)
	m = EvaluateMetric(short, def, profile.DCATAPES)
	assert.Equal(t, 10.0, m.Score, "below minLen scores half weight")
	assert.Equal(t, "short", m.Value)
}

func TestEvaluateMetricValueKeepsLongest(t *testing.T) {
	g := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/ds> dct:title "Aire"@es ;
    dct:title "Air quality measurements for Madrid"@en .
`)
	def := profile.MetricDefinition{ID: "dct_title_length", Property: "dct:title", Weight: 20, Category: profile.Contextuality}
	m := EvaluateMetric(g, def, profile.DCATAPES)
	assert.Equal(t, "Air quality measurements for Madrid", m.Value, "longest repeated value is the one scored and surfaced")
}

func TestEvaluateMetricPrefixedAndFullIRI(t *testing.T) {
	g := graphWith(t, `@prefix dct: <http://purl.org/dc/terms/> .
<http://example.org/ds> dct:publisher <http://example.org/org> .
`)
	prefixed := profile.MetricDefinition{ID: "dct_publisher", Property: "dct:publisher", Weight: 10, Category: profile.Reusability}
	full := profile.MetricDefinition{ID: "dct_publisher", Property: vocabulary.DCTerms + "publisher", Weight: 10, Category: profile.Reusability}

	assert.True(t, EvaluateMetric(g, prefixed, profile.DCATAP).Found)
	assert.True(t, EvaluateMetric(g, full, profile.DCATAP).Found)
}
