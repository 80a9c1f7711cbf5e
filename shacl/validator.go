package shacl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/dcatqa/config"
	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/telemetry"
	"github.com/c360studio/dcatqa/vocabulary"
)

// Generic constraint components assigned when the engine result carries no
// explicit component. A result with both a path and a value is a property
// constraint; one with only a focus node is a node constraint.
const (
	componentGenericProperty = "dcatqa:PropertyConstraintComponent"
	componentGenericNode     = "dcatqa:NodeConstraintComponent"
)

// Service validates RDF content against a profile's shape set and produces
// normalized reports. It owns a shape loader and its cache.
type Service struct {
	loader  *Loader
	logger  *slog.Logger
	watcher *Watcher
}

// NewService creates a validation service. When the configuration enables
// shape watching, local shape-file edits clear the cache until Close.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		loader: NewLoader(cfg, logger),
		logger: logger,
	}
	if cfg != nil && cfg.Shapes.Watch {
		w, err := NewWatcher(cfg.Shapes.Dir, s.loader.Cache(), logger)
		if err != nil {
			logger.Warn("shape watcher disabled",
				slog.String("dir", cfg.Shapes.Dir),
				slog.String("error", err.Error()))
		} else {
			s.watcher = w
		}
	}
	return s
}

// Loader returns the service's shape loader.
func (s *Service) Loader() *Loader { return s.loader }

// ClearCache drops all cached shape datasets.
func (s *Service) ClearCache() { s.loader.Cache().Clear() }

// Close stops the shape watcher when one is running.
func (s *Service) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

// ValidateRDF parses content in the given format and validates it. A parse
// failure is a hard error; shape-side failures instead surface as synthetic
// non-conforming reports so the caller always learns why validation could
// not vouch for the data.
func (s *Service) ValidateRDF(ctx context.Context, content string, sel profile.Selection, format rdf.Format) (*Report, error) {
	data, err := rdf.Decode(content, format)
	if err != nil {
		telemetry.ValidationsTotal.WithLabelValues(string(sel.Profile), "error").Inc()
		return nil, fmt.Errorf("parse data graph: %w", err)
	}
	return s.ValidateGraph(ctx, data, sel)
}

// ValidateGraph validates a parsed data graph against the selection's shape
// set.
func (s *Service) ValidateGraph(ctx context.Context, data *rdf.Graph, sel profile.Selection) (*Report, error) {
	ds, err := s.loader.Load(ctx, sel)
	if err != nil {
		if errors.Is(err, ErrNoShapes) {
			s.logger.Error("shape set unavailable",
				slog.String("profile", string(sel.Profile)),
				slog.String("error", err.Error()))
			return s.syntheticReport(sel, ShapeSummary{}, ComponentShapeLoading,
				fmt.Sprintf("Validation could not run: %v", err)), nil
		}
		telemetry.ValidationsTotal.WithLabelValues(string(sel.Profile), "error").Inc()
		return nil, err
	}

	summary := ShapeSummary{
		NodeShapes:     ds.NodeShapes,
		PropertyShapes: ds.PropertyShapes,
		FilesLoaded:    ds.FilesLoaded,
		FilesFailed:    ds.FilesFailed,
	}
	if ds.NodeShapes == 0 {
		return s.syntheticReport(sel, summary, ComponentShapeLoading,
			fmt.Sprintf("Validation could not run: shape set for profile %s loaded %d files but contains no node shapes",
				sel.Profile, ds.FilesLoaded)), nil
	}

	engine := CompileShapes(ds)
	results, err := engine.Validate(data)
	if err != nil {
		var pe *PatternError
		if errors.As(err, &pe) {
			s.logger.Error("shape set contains an incompatible regex",
				slog.String("profile", string(sel.Profile)),
				slog.String("shape", pe.Shape),
				slog.String("pattern", pe.Pattern))
			return s.syntheticReport(sel, summary, ComponentRegexCompatibility,
				fmt.Sprintf("Validation could not run: shape %s carries pattern %q: %v", pe.Shape, pe.Pattern, pe.Err)), nil
		}
		telemetry.ValidationsTotal.WithLabelValues(string(sel.Profile), "error").Inc()
		return nil, err
	}

	report := s.buildReport(sel, summary, results)
	outcome := "nonconforming"
	if report.Conforms {
		outcome = "conforms"
	}
	telemetry.ValidationsTotal.WithLabelValues(string(sel.Profile), outcome).Inc()
	return report, nil
}

// buildReport normalizes engine results into violations and partitions them
// by severity. Conforms is true exactly when no Violation-severity results
// remain.
func (s *Service) buildReport(sel profile.Selection, summary ShapeSummary, results []Result) *Report {
	report := &Report{
		ID:        uuid.NewString(),
		Profile:   sel.Profile,
		Timestamp: time.Now().UTC(),
		Shapes:    summary,
	}
	for _, r := range results {
		v := s.normalize(sel, r)
		telemetry.ViolationsTotal.WithLabelValues(string(sel.Profile), string(v.Severity)).Inc()
		switch v.Severity {
		case SeverityWarning:
			report.Warnings = append(report.Warnings, v)
		case SeverityInfo:
			report.Infos = append(report.Infos, v)
		default:
			report.Violations = append(report.Violations, v)
		}
	}
	report.Conforms = len(report.Violations) == 0
	return report
}

// normalize converts one engine-native result into a stable Violation. All
// extractions are total: a malformed engine value degrades to an empty field,
// never a panic.
func (s *Service) normalize(sel profile.Selection, r Result) Violation {
	focus := rdf.TermValue(r.FocusNode)
	path := PathString(r.Path)
	value := rdf.TermValue(r.Value)
	component := normalizeComponent(r, path, value)
	shape := r.SourceShapeName
	if shape == "" {
		shape = rdf.TermValue(r.SourceShape)
	}

	messages := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		if rendered := renderMessage(m); rendered != "" {
			messages = append(messages, rendered)
		}
	}
	if len(messages) == 0 {
		messages = append(messages, defaultMessage(component, focus, path))
	}
	messages = enrichMessages(component, r.SourceShapeName, messages)

	entity := inferEntityContext(r.SourceShapeName, focus, path, component)

	v := Violation{
		FocusNode:                 focus,
		Path:                      path,
		Value:                     value,
		Messages:                  messages,
		Severity:                  normalizeSeverity(r.Severity),
		SourceConstraintComponent: component,
		SourceShape:               shape,
		EntityContext:             entity,
	}
	if entity != EntityUnknown && path != "" {
		v.FoafPage = profile.DocURL(sel.Profile, entity, docProperty(r, path))
	}
	return v
}

// normalizeSeverity maps an engine severity of any shape onto the three
// normalized levels, defaulting to Violation so unexpected severities are
// never silently downgraded.
func normalizeSeverity(raw any) Severity {
	lower := strings.ToLower(rdf.TermValue(raw))
	switch {
	case strings.Contains(lower, "warning"):
		return SeverityWarning
	case strings.Contains(lower, "info"):
		return SeverityInfo
	default:
		return SeverityViolation
	}
}

// normalizeComponent compacts an explicit constraint-component IRI, or
// assigns a generic component from the result's shape. Shapes following the
// date-or-datetime naming convention report as sh:OrConstraintComponent even
// when the engine omitted the component.
func normalizeComponent(r Result, path, value string) string {
	raw := rdf.TermValue(r.ConstraintComponent)
	if raw != "" && (strings.Contains(raw, "://") || strings.Contains(raw, "#")) {
		return "sh:" + vocabulary.LocalName(raw)
	}
	if raw != "" {
		return raw
	}
	name := strings.ToLower(strings.ReplaceAll(r.SourceShapeName, "-", ""))
	if strings.Contains(name, "dateordatetime") {
		return "sh:" + vocabulary.LocalName(vocabulary.ShOrComponent)
	}
	if path != "" && value != "" {
		return componentGenericProperty
	}
	return componentGenericNode
}

// renderMessage renders one engine message, preserving the language tag of a
// tagged literal in the "text"@lang form.
func renderMessage(m any) string {
	if t, ok := m.(rdf.Term); ok && t.IsLiteral() && t.Language != "" {
		return `"` + t.Value + `"@` + t.Language
	}
	if t, ok := m.(*rdf.Term); ok && t != nil && t.IsLiteral() && t.Language != "" {
		return `"` + t.Value + `"@` + t.Language
	}
	return rdf.TermValue(m)
}

func defaultMessage(component, focus, path string) string {
	switch {
	case path != "":
		return fmt.Sprintf("Node %s does not satisfy %s for path %s", focus, component, path)
	case focus != "":
		return fmt.Sprintf("Node %s does not satisfy %s", focus, component)
	default:
		return fmt.Sprintf("Data does not satisfy %s", component)
	}
}

// docProperty derives the documentation anchor fragment for a violated
// property from the structured path when available, compacted against the
// well-known prefixes.
func docProperty(r Result, rendered string) string {
	pred := ""
	switch p := r.Path.(type) {
	case Path:
		pred = p.LastPredicate()
	case *Path:
		if p != nil {
			pred = p.LastPredicate()
		}
	}
	if pred == "" {
		pred = rendered
	}
	return strings.ReplaceAll(vocabulary.Compact(pred), ":", "_")
}

// syntheticReport builds a non-conforming report carrying a single
// system-level violation, used when validation itself could not run.
func (s *Service) syntheticReport(sel profile.Selection, summary ShapeSummary, component, message string) *Report {
	telemetry.ValidationsTotal.WithLabelValues(string(sel.Profile), "nonconforming").Inc()
	telemetry.ViolationsTotal.WithLabelValues(string(sel.Profile), string(SeverityViolation)).Inc()
	return &Report{
		ID:        uuid.NewString(),
		Profile:   sel.Profile,
		Conforms:  false,
		Timestamp: time.Now().UTC(),
		Shapes:    summary,
		Violations: []Violation{{
			Messages:                  []string{message},
			Severity:                  SeverityViolation,
			SourceConstraintComponent: component,
			SourceShape:               "ValidationRunner",
			EntityContext:             EntityUnknown,
		}},
	}
}
