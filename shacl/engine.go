package shacl

import (
	"regexp"
	"strings"

	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

// Result is an engine-native validation result. Its fields are
// deliberately loosely typed: only the adapter interprets them, through
// total and defaulting extractors, so engine-internal representation
// changes never leak past the report boundary.
type Result struct {
	FocusNode           any
	Path                any
	Value               any
	Severity            any
	Messages            []any
	ConstraintComponent any
	SourceShape         any
	SourceShapeName     string
}

// Engine is a compiled shape set ready to validate data graphs.
type Engine struct {
	shapes     []*nodeShape
	patternErr *PatternError
}

type nodeShape struct {
	id            rdf.Term
	name          string
	targetClasses []string
	targetNodes   []rdf.Term
	properties    []*propertyShape
	severity      string
	messages      []rdf.Term
	deactivated   bool
}

type propertyShape struct {
	id       rdf.Term
	name     string
	path     Path
	severity string
	messages []rdf.Term

	minCount, maxCount   *int
	minLength, maxLength *int
	datatype             string
	nodeKind             string
	class                string
	pattern              *regexp.Regexp
	patternSrc           string
	in                   []rdf.Term
	hasValue             *rdf.Term
	languageIn           []string
	uniqueLang           bool

	or  []constraintSet
	and []constraintSet
	not *constraintSet
}

// constraintSet is the reduced constraint form allowed inside sh:or,
// sh:and and sh:not alternatives, which is all the DCAT-AP shape sets use
// there.
type constraintSet struct {
	datatype             string
	nodeKind             string
	class                string
	pattern              *regexp.Regexp
	minLength, maxLength *int
	in                   []rdf.Term
	hasValue             *rdf.Term
}

// CompileShapes builds an engine from a loaded shape dataset. Every
// sh:pattern literal is compile-tested here; the first failure is retained
// and surfaced when validation is attempted, so unverifiable data is never
// reported as conforming.
func CompileShapes(ds *ShapeDataset) *Engine {
	e := &Engine{}
	g := ds.Graph

	seen := make(map[string]bool)
	for _, subj := range g.SubjectsOfType(vocabulary.ShNodeShape) {
		e.compileNodeShape(g, subj, seen)
	}
	// Shapes targeted by class without an explicit rdf:type declaration.
	p := rdf.NewIRI(vocabulary.ShTargetClass)
	for _, q := range g.Match(nil, &p, nil) {
		e.compileNodeShape(g, q.Subject, seen)
	}
	return e
}

func (e *Engine) compileNodeShape(g *rdf.Graph, subj rdf.Term, seen map[string]bool) {
	if seen[subj.ID()] {
		return
	}
	seen[subj.ID()] = true

	ns := &nodeShape{
		id:       subj,
		name:     shapeName(g, subj),
		severity: iriValue(g.Objects(subj, vocabulary.ShSeverity)),
		messages: g.Objects(subj, vocabulary.ShMessage),
	}
	for _, t := range g.Objects(subj, vocabulary.ShTargetClass) {
		if t.IsIRI() {
			ns.targetClasses = append(ns.targetClasses, t.Value)
		}
	}
	ns.targetNodes = g.Objects(subj, vocabulary.ShTargetNode)
	for _, d := range g.Objects(subj, vocabulary.ShDeactivated) {
		if d.Value == "true" {
			ns.deactivated = true
		}
	}
	for _, ref := range g.Objects(subj, vocabulary.ShProperty) {
		if ps := e.compilePropertyShape(g, ref); ps != nil {
			ns.properties = append(ns.properties, ps)
		}
	}
	e.shapes = append(e.shapes, ns)
}

func (e *Engine) compilePropertyShape(g *rdf.Graph, subj rdf.Term) *propertyShape {
	paths := g.Objects(subj, vocabulary.ShPath)
	if len(paths) == 0 {
		return nil
	}
	ps := &propertyShape{
		id:       subj,
		name:     shapeName(g, subj),
		path:     parsePath(g, paths[0]),
		severity: iriValue(g.Objects(subj, vocabulary.ShSeverity)),
		messages: g.Objects(subj, vocabulary.ShMessage),
	}
	ps.minCount = intConstraint(g, subj, vocabulary.ShMinCount)
	ps.maxCount = intConstraint(g, subj, vocabulary.ShMaxCount)
	ps.minLength = intConstraint(g, subj, vocabulary.ShMinLength)
	ps.maxLength = intConstraint(g, subj, vocabulary.ShMaxLength)
	ps.datatype = iriValue(g.Objects(subj, vocabulary.ShDatatype))
	ps.nodeKind = iriValue(g.Objects(subj, vocabulary.ShNodeKind))
	ps.class = iriValue(g.Objects(subj, vocabulary.ShClass))
	ps.uniqueLang = literalBool(g.Objects(subj, vocabulary.ShUniqueLang))

	if src := literalValue(g.Objects(subj, vocabulary.ShPattern)); src != "" {
		flags := literalValue(g.Objects(subj, vocabulary.ShFlags))
		re, err := compilePattern(src, flags)
		if err != nil && e.patternErr == nil {
			e.patternErr = &PatternError{Shape: ps.name, Pattern: src, Err: err}
		}
		ps.pattern = re
		ps.patternSrc = src
	}
	for _, head := range g.Objects(subj, vocabulary.ShIn) {
		ps.in = append(ps.in, listItems(g, head)...)
	}
	if hv := g.Objects(subj, vocabulary.ShHasValue); len(hv) > 0 {
		ps.hasValue = &hv[0]
	}
	for _, head := range g.Objects(subj, vocabulary.ShLanguageIn) {
		for _, item := range listItems(g, head) {
			ps.languageIn = append(ps.languageIn, item.Value)
		}
	}
	for _, head := range g.Objects(subj, vocabulary.ShOr) {
		for _, item := range listItems(g, head) {
			ps.or = append(ps.or, e.compileConstraintSet(g, item))
		}
	}
	for _, head := range g.Objects(subj, vocabulary.ShAnd) {
		for _, item := range listItems(g, head) {
			ps.and = append(ps.and, e.compileConstraintSet(g, item))
		}
	}
	if nots := g.Objects(subj, vocabulary.ShNot); len(nots) > 0 {
		set := e.compileConstraintSet(g, nots[0])
		ps.not = &set
	}
	return ps
}

func (e *Engine) compileConstraintSet(g *rdf.Graph, subj rdf.Term) constraintSet {
	set := constraintSet{
		datatype: iriValue(g.Objects(subj, vocabulary.ShDatatype)),
		nodeKind: iriValue(g.Objects(subj, vocabulary.ShNodeKind)),
		class:    iriValue(g.Objects(subj, vocabulary.ShClass)),
	}
	set.minLength = intConstraint(g, subj, vocabulary.ShMinLength)
	set.maxLength = intConstraint(g, subj, vocabulary.ShMaxLength)
	if src := literalValue(g.Objects(subj, vocabulary.ShPattern)); src != "" {
		flags := literalValue(g.Objects(subj, vocabulary.ShFlags))
		re, err := compilePattern(src, flags)
		if err != nil && e.patternErr == nil {
			e.patternErr = &PatternError{Shape: shapeName(g, subj), Pattern: src, Err: err}
		}
		set.pattern = re
	}
	for _, head := range g.Objects(subj, vocabulary.ShIn) {
		set.in = append(set.in, listItems(g, head)...)
	}
	if hv := g.Objects(subj, vocabulary.ShHasValue); len(hv) > 0 {
		set.hasValue = &hv[0]
	}
	return set
}

// Validate runs the compiled shapes against a data graph. It returns the
// retained PatternError when the shape set contained a pattern the regex
// engine rejected, so the caller can report the run as unverifiable.
func (e *Engine) Validate(data *rdf.Graph) ([]Result, error) {
	if e.patternErr != nil {
		return nil, e.patternErr
	}
	var results []Result
	for _, ns := range e.shapes {
		if ns.deactivated {
			continue
		}
		for _, focus := range e.focusNodes(data, ns) {
			for _, ps := range ns.properties {
				results = append(results, e.checkProperty(data, ns, ps, focus)...)
			}
		}
	}
	return results, nil
}

func (e *Engine) focusNodes(data *rdf.Graph, ns *nodeShape) []rdf.Term {
	var out []rdf.Term
	seen := make(map[string]bool)
	for _, class := range ns.targetClasses {
		for _, subj := range data.SubjectsOfType(class) {
			if !seen[subj.ID()] {
				seen[subj.ID()] = true
				out = append(out, subj)
			}
		}
	}
	for _, node := range ns.targetNodes {
		if !seen[node.ID()] {
			seen[node.ID()] = true
			out = append(out, node)
		}
	}
	return out
}

func (e *Engine) checkProperty(data *rdf.Graph, ns *nodeShape, ps *propertyShape, focus rdf.Term) []Result {
	values := resolvePath(data, focus, ps.path)
	var results []Result

	emit := func(component string, value any) {
		results = append(results, e.result(ns, ps, focus, component, value))
	}

	if ps.minCount != nil && len(values) < *ps.minCount {
		emit(vocabulary.ShMinCountComponent, nil)
	}
	if ps.maxCount != nil && len(values) > *ps.maxCount {
		emit(vocabulary.ShMaxCountComponent, nil)
	}
	if ps.hasValue != nil {
		found := false
		for _, v := range values {
			if termMatches(v, *ps.hasValue) {
				found = true
				break
			}
		}
		if !found {
			emit(vocabulary.ShHasValueComponent, nil)
		}
	}
	if ps.uniqueLang {
		langs := make(map[string]bool)
		for _, v := range values {
			if v.Language == "" {
				continue
			}
			if langs[v.Language] {
				emit(vocabulary.ShUniqueLangComponent, v)
				break
			}
			langs[v.Language] = true
		}
	}

	for _, v := range values {
		if ps.datatype != "" && !datatypeMatches(v, ps.datatype) {
			emit(vocabulary.ShDatatypeComponent, v)
		}
		if ps.nodeKind != "" && !nodeKindMatches(v, ps.nodeKind) {
			emit(vocabulary.ShNodeKindComponent, v)
		}
		if ps.class != "" && !classMatches(data, v, ps.class) {
			emit(vocabulary.ShClassComponent, v)
		}
		if ps.pattern != nil && v.Kind != rdf.KindBlank && !ps.pattern.MatchString(v.Value) {
			emit(vocabulary.ShPatternComponent, v)
		}
		if ps.minLength != nil && len(v.Value) < *ps.minLength {
			emit(vocabulary.ShMinLengthComponent, v)
		}
		if ps.maxLength != nil && len(v.Value) > *ps.maxLength {
			emit(vocabulary.ShMaxLengthComponent, v)
		}
		if len(ps.in) > 0 && !termInList(v, ps.in) {
			emit(vocabulary.ShInComponent, v)
		}
		if len(ps.languageIn) > 0 && !languageIn(v, ps.languageIn) {
			emit(vocabulary.ShLanguageInComponent, v)
		}
		if len(ps.or) > 0 && !anyConforms(data, v, ps.or) {
			emit(vocabulary.ShOrComponent, v)
		}
		if len(ps.and) > 0 && !allConform(data, v, ps.and) {
			emit(vocabulary.ShAndComponent, v)
		}
		if ps.not != nil && conformsToSet(data, v, *ps.not) {
			emit(vocabulary.ShNotComponent, v)
		}
	}
	return results
}

func (e *Engine) result(ns *nodeShape, ps *propertyShape, focus rdf.Term, component string, value any) Result {
	severity := ps.severity
	if severity == "" {
		severity = ns.severity
	}
	messages := ps.messages
	if len(messages) == 0 {
		messages = ns.messages
	}
	anyMessages := make([]any, 0, len(messages))
	for _, m := range messages {
		anyMessages = append(anyMessages, m)
	}
	source := any(ps.id)
	name := ps.name
	if ps.id.IsBlank() {
		// Blank property shapes are anonymous; attribute to the node shape.
		source = ns.id
		if name == "" {
			name = ns.name
		}
	}
	return Result{
		FocusNode:           focus,
		Path:                ps.path,
		Value:               value,
		Severity:            severity,
		Messages:            anyMessages,
		ConstraintComponent: component,
		SourceShape:         source,
		SourceShapeName:     name,
	}
}

// resolvePath walks a property path from a focus node, unioning alternative
// predicates inside each step.
func resolvePath(data *rdf.Graph, focus rdf.Term, path Path) []rdf.Term {
	nodes := []rdf.Term{focus}
	for _, step := range path.Steps {
		var next []rdf.Term
		seen := make(map[string]bool)
		for _, node := range nodes {
			for _, pred := range step.Predicates {
				var terms []rdf.Term
				if step.Inverse {
					p := rdf.NewIRI(pred)
					for _, q := range data.Match(nil, &p, &node) {
						terms = append(terms, q.Subject)
					}
				} else {
					terms = data.Objects(node, pred)
				}
				for _, t := range terms {
					key := t.NTriples()
					if !seen[key] {
						seen[key] = true
						next = append(next, t)
					}
				}
			}
		}
		nodes = next
	}
	if len(path.Steps) == 0 {
		return nil
	}
	return nodes
}

func anyConforms(data *rdf.Graph, v rdf.Term, sets []constraintSet) bool {
	for _, set := range sets {
		if conformsToSet(data, v, set) {
			return true
		}
	}
	return false
}

func allConform(data *rdf.Graph, v rdf.Term, sets []constraintSet) bool {
	for _, set := range sets {
		if !conformsToSet(data, v, set) {
			return false
		}
	}
	return true
}

func conformsToSet(data *rdf.Graph, v rdf.Term, set constraintSet) bool {
	if set.datatype != "" && !datatypeMatches(v, set.datatype) {
		return false
	}
	if set.nodeKind != "" && !nodeKindMatches(v, set.nodeKind) {
		return false
	}
	if set.class != "" && !classMatches(data, v, set.class) {
		return false
	}
	if set.pattern != nil && !set.pattern.MatchString(v.Value) {
		return false
	}
	if set.minLength != nil && len(v.Value) < *set.minLength {
		return false
	}
	if set.maxLength != nil && len(v.Value) > *set.maxLength {
		return false
	}
	if len(set.in) > 0 && !termInList(v, set.in) {
		return false
	}
	if set.hasValue != nil && !termMatches(v, *set.hasValue) {
		return false
	}
	return true
}

func datatypeMatches(v rdf.Term, datatype string) bool {
	if !v.IsLiteral() {
		return false
	}
	effective := v.Datatype
	if effective == "" {
		if v.Language != "" {
			effective = vocabulary.RDFLangString
		} else {
			effective = rdf.XSDString
		}
	}
	return effective == datatype
}

func nodeKindMatches(v rdf.Term, kind string) bool {
	switch kind {
	case vocabulary.ShIRI:
		return v.IsIRI()
	case vocabulary.ShLiteral:
		return v.IsLiteral()
	case vocabulary.ShBlankNode:
		return v.IsBlank()
	case vocabulary.ShBlankNodeOrIRI:
		return v.IsBlank() || v.IsIRI()
	case vocabulary.ShIRIOrLiteral:
		return v.IsIRI() || v.IsLiteral()
	case vocabulary.ShBlankOrLiteral:
		return v.IsBlank() || v.IsLiteral()
	default:
		return true
	}
}

func classMatches(data *rdf.Graph, v rdf.Term, class string) bool {
	if v.IsLiteral() {
		return false
	}
	p := rdf.NewIRI(rdf.RDFTypeIRI)
	o := rdf.NewIRI(class)
	return data.Has(&v, &p, &o)
}

func termInList(v rdf.Term, list []rdf.Term) bool {
	for _, item := range list {
		if termMatches(v, item) {
			return true
		}
	}
	return false
}

// termMatches compares a value against a constraint term. IRIs compare by
// identity; literals compare by value, ignoring an unstated datatype on
// either side.
func termMatches(v, want rdf.Term) bool {
	if v.Kind != want.Kind {
		return false
	}
	if v.IsLiteral() {
		if v.Value != want.Value {
			return false
		}
		if want.Language != "" && v.Language != want.Language {
			return false
		}
		if want.Datatype != "" && v.Datatype != "" && v.Datatype != want.Datatype {
			return false
		}
		return true
	}
	return v.ID() == want.ID()
}

func languageIn(v rdf.Term, langs []string) bool {
	if !v.IsLiteral() {
		return false
	}
	for _, lang := range langs {
		if strings.EqualFold(v.Language, lang) {
			return true
		}
	}
	return false
}

func compilePattern(src, flags string) (*regexp.Regexp, error) {
	expr := src
	if strings.Contains(flags, "i") {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// shapeName prefers an explicit sh:name, then the IRI's local name.
func shapeName(g *rdf.Graph, subj rdf.Term) string {
	if n := literalValue(g.Objects(subj, vocabulary.ShName)); n != "" {
		return n
	}
	if subj.IsIRI() {
		return vocabulary.LocalName(subj.Value)
	}
	return ""
}

func iriValue(terms []rdf.Term) string {
	for _, t := range terms {
		if t.IsIRI() {
			return t.Value
		}
	}
	return ""
}

func literalValue(terms []rdf.Term) string {
	for _, t := range terms {
		if t.IsLiteral() {
			return t.Value
		}
	}
	return ""
}

func literalBool(terms []rdf.Term) bool {
	return literalValue(terms) == "true"
}

func intConstraint(g *rdf.Graph, subj rdf.Term, pred string) *int {
	for _, t := range g.Objects(subj, pred) {
		if !t.IsLiteral() {
			continue
		}
		n := 0
		ok := true
		for _, c := range t.Value {
			if c < '0' || c > '9' {
				ok = false
				break
			}
			n = n*10 + int(c-'0')
		}
		if ok && t.Value != "" {
			return &n
		}
	}
	return nil
}
