package quality

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/dcatqa/config"
	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/shacl"
	"github.com/c360studio/dcatqa/telemetry"
)

// CategoryScore is the rollup of one FAIR+C dimension.
type CategoryScore struct {
	Score    float64  `json:"score"`
	MaxScore int      `json:"maxScore"`
	Metrics  []Metric `json:"metrics"`
}

// Result is one quality assessment. TotalScore is the sum of all metric
// scores, MaxScore the sum of all weights, Percentage their ratio and Rating
// the MQA bucket the total falls into.
type Result struct {
	ID         string                             `json:"id"`
	Profile    profile.ID                         `json:"profile"`
	TotalScore float64                            `json:"totalScore"`
	MaxScore   int                                `json:"maxScore"`
	Percentage float64                            `json:"percentage"`
	Rating     profile.Rating                     `json:"rating"`
	ByCategory map[profile.Category]CategoryScore `json:"byCategory"`
	Created    time.Time                          `json:"created"`
}

// ResultWithReport pairs a quality result with the SHACL report whose
// compliance outcome it incorporates.
type ResultWithReport struct {
	Result *Result       `json:"result"`
	Report *shacl.Report `json:"report"`
}

// Calculator runs quality assessments. It owns the SHACL validation service
// used for the compliance metric.
type Calculator struct {
	validator *shacl.Service
	logger    *slog.Logger
}

// NewCalculator creates a quality calculator.
func NewCalculator(cfg *config.Config, logger *slog.Logger) *Calculator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	SetVocabularyDir(cfg.Vocabularies.Dir)
	return &Calculator{
		validator: shacl.NewService(cfg, logger),
		logger:    logger,
	}
}

// Validator returns the calculator's SHACL validation service.
func (c *Calculator) Validator() *shacl.Service { return c.validator }

// Close releases the validation service's background resources.
func (c *Calculator) Close() error { return c.validator.Close() }

// Calculate parses content and scores every metric of the profile. The
// compliance metric is evaluated on property presence only; use
// CalculateWithSHACL to substitute the validated compliance outcome.
func (c *Calculator) Calculate(content string, p profile.ID) (*Result, error) {
	g, err := rdf.Decode(content, rdf.DetectFormat(content))
	if err != nil {
		return nil, fmt.Errorf("parse data graph: %w", err)
	}
	return CalculateGraph(g, p)
}

// CalculateGraph scores every metric of the profile against a parsed graph.
// An unknown profile is a configuration error.
func CalculateGraph(g *rdf.Graph, p profile.ID) (*Result, error) {
	byCat, err := profile.Metrics(p)
	if err != nil {
		return nil, err
	}

	r := &Result{
		ID:         uuid.NewString(),
		Profile:    p,
		ByCategory: make(map[profile.Category]CategoryScore, len(profile.Categories)),
		Created:    time.Now().UTC(),
	}
	for _, cat := range profile.Categories {
		defs := byCat[cat]
		cs := CategoryScore{Metrics: make([]Metric, 0, len(defs))}
		for _, def := range defs {
			m := EvaluateMetric(g, def, p)
			cs.Metrics = append(cs.Metrics, m)
			cs.Score += m.Score
			cs.MaxScore += m.Weight
		}
		r.ByCategory[cat] = cs
	}
	r.recompute()
	telemetry.QualityRunsTotal.WithLabelValues(string(p)).Inc()
	return r, nil
}

// CalculateWithSHACL runs metric evaluation and SHACL validation
// concurrently, then substitutes the binary compliance outcome into the
// profile's compliance metric and recomputes the totals.
func (c *Calculator) CalculateWithSHACL(ctx context.Context, content string, sel profile.Selection) (*ResultWithReport, error) {
	g, err := rdf.Decode(content, rdf.DetectFormat(content))
	if err != nil {
		return nil, fmt.Errorf("parse data graph: %w", err)
	}

	var (
		wg      sync.WaitGroup
		result  *Result
		report  *shacl.Report
		calcErr error
		valErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		result, calcErr = CalculateGraph(g, sel.Profile)
	}()
	go func() {
		defer wg.Done()
		report, valErr = c.validator.ValidateGraph(ctx, g, sel)
	}()
	wg.Wait()

	if calcErr != nil {
		return nil, calcErr
	}
	if valErr != nil {
		return nil, valErr
	}

	result.applyCompliance(sel.Profile, ComplianceScore(report))
	return &ResultWithReport{Result: result, Report: report}, nil
}

// applyCompliance overwrites the designated compliance metric's score with
// the validated outcome and recomputes the totals.
func (r *Result) applyCompliance(p profile.ID, compliance int) {
	id := profile.ComplianceMetricID(p)
	if id == "" {
		return
	}
	for cat, cs := range r.ByCategory {
		for i, m := range cs.Metrics {
			if m.ID != id {
				continue
			}
			cs.Metrics[i].Found = true
			cs.Metrics[i].Score = float64(m.Weight) * float64(compliance) / 100
			cs.Score = 0
			for _, rm := range cs.Metrics {
				cs.Score += rm.Score
			}
			r.ByCategory[cat] = cs
			r.recompute()
			return
		}
	}
}

// recompute rebuilds the totals, percentage and rating from the category
// rollups.
func (r *Result) recompute() {
	r.TotalScore = 0
	r.MaxScore = 0
	for _, cs := range r.ByCategory {
		r.TotalScore += cs.Score
		r.MaxScore += cs.MaxScore
	}
	if r.MaxScore == 0 {
		r.Percentage = 0
	} else {
		r.Percentage = 100 * r.TotalScore / float64(r.MaxScore)
	}
	r.Rating = profile.Rate(r.Profile, r.TotalScore)
}
