package shacl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(nil, nil)
}

func TestNormalizeSeverity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Severity
	}{
		{"full iri", vocabulary.ShViolation, SeverityViolation},
		{"warning iri", vocabulary.ShWarning, SeverityWarning},
		{"info iri", vocabulary.ShInfo, SeverityInfo},
		{"case insensitive", "WARNING", SeverityWarning},
		{"substring", "sh:Info", SeverityInfo},
		{"term input", rdf.NewIRI(vocabulary.ShWarning), SeverityWarning},
		{"empty defaults to violation", "", SeverityViolation},
		{"garbage defaults to violation", "whatever", SeverityViolation},
		{"nil defaults to violation", nil, SeverityViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSeverity(tt.in))
		})
	}
}

func TestNormalizeComponent(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		path   string
		value  string
		want   string
	}{
		{
			name:   "explicit iri compacted",
			result: Result{ConstraintComponent: vocabulary.ShMinCountComponent},
			want:   "sh:MinCountConstraintComponent",
		},
		{
			name:   "already short kept",
			result: Result{ConstraintComponent: "custom:Thing"},
			want:   "custom:Thing",
		},
		{
			name:   "date-or-datetime shape convention",
			result: Result{SourceShapeName: "IssuedDateOrDateTimeShape"},
			want:   "sh:OrConstraintComponent",
		},
		{
			name:   "property constraint placeholder",
			result: Result{},
			path:   "dct:title",
			value:  "x",
			want:   componentGenericProperty,
		},
		{
			name:   "node constraint placeholder",
			result: Result{},
			want:   componentGenericNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeComponent(tt.result, tt.path, tt.value))
		})
	}
}

func TestRenderMessage(t *testing.T) {
	assert.Equal(t, `"must have a title"@en`, renderMessage(rdf.NewLangLiteral("must have a title", "en")))
	assert.Equal(t, "plain", renderMessage(rdf.NewLiteral("plain")))
	assert.Equal(t, "raw string", renderMessage("raw string"))
	assert.Equal(t, "", renderMessage(nil))
}

func TestEnrichMessages(t *testing.T) {
	raw := []string{"raw engine message"}

	enriched := enrichMessages("sh:OrConstraintComponent", "IssuedDateOrDateTimeShape", raw)
	require.Len(t, enriched, 3)
	assert.Contains(t, enriched[0], "@en")
	assert.Contains(t, enriched[1], "@es")
	assert.Contains(t, enriched[0], "xsd:date")
	assert.Equal(t, "raw engine message", enriched[2])

	// Non-enrichable component passes through.
	assert.Equal(t, raw, enrichMessages("sh:MinCountConstraintComponent", "IssuedDateOrDateTimeShape", raw))

	// Unrecognized shape name passes through.
	assert.Equal(t, raw, enrichMessages("sh:OrConstraintComponent", "SomethingElseShape", raw))

	multilingual := enrichMessages("sh:DatatypeConstraintComponent", "TitleMultilingualShape", raw)
	require.Len(t, multilingual, 3)
	assert.Contains(t, multilingual[0], "language tag")
}

func TestBuildReport(t *testing.T) {
	svc := testService(t)
	sel := profile.Selection{Profile: profile.DCATAPES}

	results := []Result{
		{
			FocusNode:           rdf.NewIRI("http://example.org/dataset/1"),
			Path:                Path{Steps: []PathStep{{Predicates: []string{vocabulary.DCTerms + "title"}}}},
			Value:               rdf.NewLiteral(""),
			Severity:            vocabulary.ShViolation,
			Messages:            []any{rdf.NewLangLiteral("must not be empty", "en")},
			ConstraintComponent: vocabulary.ShMinLengthComponent,
			SourceShapeName:     "DatasetTitleShape",
		},
		{
			FocusNode:       rdf.NewIRI("http://example.org/dataset/1"),
			Severity:        vocabulary.ShWarning,
			SourceShapeName: "DatasetShape",
		},
		{
			FocusNode:       rdf.NewIRI("http://example.org/catalog"),
			Severity:        "info",
			SourceShapeName: "CatalogShape",
		},
	}

	report := svc.buildReport(sel, ShapeSummary{NodeShapes: 3}, results)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, profile.DCATAPES, report.Profile)
	assert.False(t, report.Conforms)
	require.Len(t, report.Violations, 1)
	require.Len(t, report.Warnings, 1)
	require.Len(t, report.Infos, 1)
	assert.Equal(t, 3, report.TotalResults())

	v := report.Violations[0]
	assert.Equal(t, "http://example.org/dataset/1", v.FocusNode)
	assert.Equal(t, vocabulary.DCTerms+"title", v.Path)
	assert.Equal(t, "sh:MinLengthConstraintComponent", v.SourceConstraintComponent)
	assert.Equal(t, EntityDataset, v.EntityContext)
	require.NotEmpty(t, v.Messages)
	assert.Equal(t, `"must not be empty"@en`, v.Messages[0])
	assert.Equal(t, "https://datosgobes.github.io/DCAT-AP-ES/#dataset_dcterms_title", v.FoafPage)

	// Results with no path never get a documentation link.
	assert.Empty(t, report.Warnings[0].FoafPage)
	assert.NotEmpty(t, report.Warnings[0].Messages, "default message synthesized")
}

func TestBuildReportConformsWhenNoViolations(t *testing.T) {
	svc := testService(t)
	sel := profile.Selection{Profile: profile.DCATAP}

	report := svc.buildReport(sel, ShapeSummary{}, nil)
	assert.True(t, report.Conforms)
	assert.Zero(t, report.TotalResults())

	warningsOnly := svc.buildReport(sel, ShapeSummary{}, []Result{
		{Severity: vocabulary.ShWarning, SourceShapeName: "DatasetShape"},
	})
	assert.True(t, warningsOnly.Conforms, "warnings do not break conformance")
}

func TestSyntheticReport(t *testing.T) {
	svc := testService(t)
	sel := profile.Selection{Profile: profile.NTIRISP}

	report := svc.syntheticReport(sel, ShapeSummary{FilesFailed: 6}, ComponentShapeLoading,
		"Validation could not run: all shape files failed")

	assert.False(t, report.Conforms)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, ComponentShapeLoading, report.Violations[0].SourceConstraintComponent)
	assert.Equal(t, SeverityViolation, report.Violations[0].Severity)
	assert.Equal(t, 6, report.Shapes.FilesFailed)
	assert.Contains(t, report.Violations[0].Messages[0], "could not run")
}

func TestValidateGraphShapeSetUnavailable(t *testing.T) {
	// Empty shapes dir and a nanosecond HTTP timeout: every pinned shape
	// file fails to load, so the service reports the failure itself instead
	// of vouching for the data.
	cfg := localShapesConfig(t, nil, nil)
	cfg.HTTP.Timeout = time.Nanosecond
	svc := NewService(cfg, nil)

	data := dataGraph(t, `<http://example.org/ds> a dcat:Dataset .`)
	report, err := svc.ValidateGraph(context.Background(), data, profile.Selection{Profile: profile.NTIRISP})
	require.NoError(t, err)

	assert.False(t, report.Conforms)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, 1, report.TotalResults())

	v := report.Violations[0]
	assert.Equal(t, ComponentShapeLoading, v.SourceConstraintComponent)
	assert.Equal(t, SeverityViolation, v.Severity)
	assert.Contains(t, v.Messages[0], "could not run")
	assert.Equal(t, profile.NTIRISP, report.Profile)
}

func TestValidateEndToEnd(t *testing.T) {
	// Full adapter path over the built-in engine, bypassing the loader.
	shapes := dataGraph(t, `
ex:DatasetShape a sh:NodeShape ;
    sh:targetClass dcat:Dataset ;
    sh:name "DatasetShape" ;
    sh:property [
        sh:path dct:title ;
        sh:minCount 1 ;
        sh:message "Dataset must have a dct:title"@en ;
    ] .
`)
	engine := CompileShapes(&ShapeDataset{Graph: shapes})
	data := dataGraph(t, `<http://example.org/ds> a dcat:Dataset .`)
	results, err := engine.Validate(data)
	require.NoError(t, err)

	svc := testService(t)
	report := svc.buildReport(profile.Selection{Profile: profile.DCATAP}, ShapeSummary{}, results)

	require.Len(t, report.Violations, 1)
	v := report.Violations[0]
	assert.Equal(t, "http://example.org/ds", v.FocusNode)
	assert.Equal(t, "sh:MinCountConstraintComponent", v.SourceConstraintComponent)
	assert.Equal(t, EntityDataset, v.EntityContext)
	assert.Equal(t, `"Dataset must have a dct:title"@en`, v.Messages[0])
	assert.False(t, report.Conforms)
}

func TestDocProperty(t *testing.T) {
	r := Result{Path: Path{Steps: []PathStep{{Predicates: []string{vocabulary.DCAT + "accessURL"}}}}}
	assert.Equal(t, "dcat_accessURL", docProperty(r, "ignored"))

	assert.Equal(t, "dcterms_title", docProperty(Result{}, vocabulary.DCTerms+"title"))
}
