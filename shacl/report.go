package shacl

import (
	"time"

	"github.com/c360studio/dcatqa/profile"
)

// Severity is the normalized severity of a validation result.
type Severity string

const (
	SeverityViolation Severity = "Violation"
	SeverityWarning   Severity = "Warning"
	SeverityInfo      Severity = "Info"
)

// System-level constraint components used on synthetic violations, so
// callers can distinguish "no violations found" from "validation could not
// run".
const (
	// ComponentShapeLoading marks a synthetic violation produced when a
	// profile's entire shape set failed to load.
	ComponentShapeLoading = "dcatqa:ShapeLoadingErrorConstraintComponent"
	// ComponentRegexCompatibility marks a synthetic violation produced
	// when the shape set contains a pattern the regex engine rejected.
	ComponentRegexCompatibility = "dcatqa:RegexCompatibilityConstraintComponent"
)

// Violation is the stable record every engine-native result is normalized
// into. Messages keep their language tags in the `"text"@lang` form.
type Violation struct {
	FocusNode                 string   `json:"focusNode"`
	Path                      string   `json:"path,omitempty"`
	Value                     string   `json:"value,omitempty"`
	Messages                  []string `json:"messages"`
	Severity                  Severity `json:"severity"`
	SourceConstraintComponent string   `json:"sourceConstraintComponent"`
	SourceShape               string   `json:"sourceShape"`
	EntityContext             string   `json:"entityContext,omitempty"`
	FoafPage                  string   `json:"foafPage,omitempty"`
}

// Report is the outcome of one validation run, with results partitioned by
// severity. Conforms is true exactly when no violations were recorded.
type Report struct {
	ID         string       `json:"id"`
	Profile    profile.ID   `json:"profile"`
	Conforms   bool         `json:"conforms"`
	Violations []Violation  `json:"violations"`
	Warnings   []Violation  `json:"warnings"`
	Infos      []Violation  `json:"infos"`
	Timestamp  time.Time    `json:"timestamp"`
	Shapes     ShapeSummary `json:"shapes"`
}

// ShapeSummary carries the loader diagnostics of the shape set a report was
// produced with.
type ShapeSummary struct {
	NodeShapes     int `json:"nodeShapes"`
	PropertyShapes int `json:"propertyShapes"`
	FilesLoaded    int `json:"filesLoaded"`
	FilesFailed    int `json:"filesFailed"`
}

// TotalResults returns the number of results across all severities.
func (r *Report) TotalResults() int {
	return len(r.Violations) + len(r.Warnings) + len(r.Infos)
}
