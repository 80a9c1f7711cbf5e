package shacl

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/dcatqa/profile"
)

func sampleReport() *Report {
	return &Report{
		ID:       "0f8fad5b-d9cb-469f-a165-70867728950e",
		Profile:  profile.DCATAPES,
		Conforms: false,
		Violations: []Violation{{
			FocusNode:                 "http://example.org/dataset/1",
			Path:                      "http://purl.org/dc/terms/title",
			Value:                     "",
			Messages:                  []string{`"Dataset must have a title"@en`, `"El dataset debe tener un título"@es`},
			Severity:                  SeverityViolation,
			SourceConstraintComponent: "sh:MinCountConstraintComponent",
			SourceShape:               "DatasetTitleShape",
			EntityContext:             EntityDataset,
			FoafPage:                  "https://datosgobes.github.io/DCAT-AP-ES/#dataset_dcterms_title",
		}},
		Warnings: []Violation{{
			FocusNode:                 "http://example.org/dataset/1",
			Messages:                  []string{"recommended property missing"},
			Severity:                  SeverityWarning,
			SourceConstraintComponent: "sh:MinCountConstraintComponent",
			SourceShape:               "DatasetShape",
			EntityContext:             EntityDataset,
		}},
	}
}

func TestExportCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ExportCSV(&sb, sampleReport()))

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per result")

	assert.Equal(t, []string{
		"Severity", "Focus Node", "Path", "Value", "Message",
		"Source Shape", "Constraint Component", "Additional Info URL",
	}, records[0])

	row := records[1]
	assert.Equal(t, "Violation", row[0])
	assert.Equal(t, "http://example.org/dataset/1", row[1])
	assert.Equal(t, "http://purl.org/dc/terms/title", row[2])
	assert.Contains(t, row[4], "must have a title")
	assert.Contains(t, row[4], "\n", "messages joined with newline")
	assert.Equal(t, "DatasetTitleShape", row[5])
	assert.Equal(t, "sh:MinCountConstraintComponent", row[6])
	assert.Contains(t, row[7], "#dataset_dcterms_title")

	assert.Equal(t, "Warning", records[2][0], "violations precede warnings")
}

func TestExportCSVEmptyReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ExportCSV(&sb, &Report{Conforms: true}))

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestExportTurtle(t *testing.T) {
	out := ExportTurtle(sampleReport())

	assert.Contains(t, out, "@prefix sh: <http://www.w3.org/ns/shacl#> .")
	assert.Contains(t, out, "a sh:ValidationReport")
	assert.Contains(t, out, "sh:conforms false")
	assert.Contains(t, out, "sh:focusNode <http://example.org/dataset/1>")
	assert.Contains(t, out, "sh:resultSeverity sh:Violation")
	assert.Contains(t, out, `"Dataset must have a title"@en`)
	assert.Contains(t, out, "sh:sourceConstraintComponent sh:MinCountConstraintComponent")
	assert.Contains(t, out, "foaf:page <https://datosgobes.github.io/DCAT-AP-ES/#dataset_dcterms_title>")
}

func TestExportTurtleConforming(t *testing.T) {
	out := ExportTurtle(&Report{ID: "abc", Conforms: true})
	assert.Contains(t, out, "sh:conforms true .")
	assert.NotContains(t, out, "sh:result ")
}

func TestTurtleLiteralEscaping(t *testing.T) {
	assert.Equal(t, `"say \"hi\"\nnow"`, turtleLiteral("say \"hi\"\nnow"))
}
