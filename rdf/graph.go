package rdf

// Quad is a single subject-predicate-object statement with an optional
// named graph. Quads are immutable once added to a Graph.
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// Graph is an unordered collection of quads with pattern-match lookup by
// any combination of subject, predicate and object. It is built once per
// validation request and read-only afterward; the methods are safe for
// concurrent readers as long as no Add races with them.
type Graph struct {
	quads  []Quad
	byPred map[string][]int
	bySubj map[string][]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byPred: make(map[string][]int),
		bySubj: make(map[string][]int),
	}
}

// Add appends a quad to the graph.
func (g *Graph) Add(q Quad) {
	i := len(g.quads)
	g.quads = append(g.quads, q)
	g.byPred[q.Predicate.Value] = append(g.byPred[q.Predicate.Value], i)
	g.bySubj[q.Subject.ID()] = append(g.bySubj[q.Subject.ID()], i)
}

// Len returns the number of quads in the graph.
func (g *Graph) Len() int { return len(g.quads) }

// Quads returns all quads. The returned slice must not be modified.
func (g *Graph) Quads() []Quad { return g.quads }

// Match returns all quads matching the given pattern. A nil component
// matches anything. Subjects and predicates match on identity; a non-nil
// object matches on full term equality.
func (g *Graph) Match(subject, predicate, object *Term) []Quad {
	candidates := g.candidateIndexes(subject, predicate)
	var out []Quad
	for _, i := range candidates {
		q := g.quads[i]
		if subject != nil && q.Subject.ID() != subject.ID() {
			continue
		}
		if predicate != nil && q.Predicate.Value != predicate.Value {
			continue
		}
		if object != nil && !q.Object.Equal(*object) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (g *Graph) candidateIndexes(subject, predicate *Term) []int {
	if subject != nil {
		return g.bySubj[subject.ID()]
	}
	if predicate != nil {
		return g.byPred[predicate.Value]
	}
	idx := make([]int, len(g.quads))
	for i := range g.quads {
		idx[i] = i
	}
	return idx
}

// Objects returns the object terms of all quads with the given subject and
// predicate IRI.
func (g *Graph) Objects(subject Term, predicate string) []Term {
	p := NewIRI(predicate)
	quads := g.Match(&subject, &p, nil)
	out := make([]Term, 0, len(quads))
	for _, q := range quads {
		out = append(out, q.Object)
	}
	return out
}

// SubjectsOfType returns the distinct subjects carrying rdf:type class.
func (g *Graph) SubjectsOfType(class string) []Term {
	p := NewIRI(RDFTypeIRI)
	o := NewIRI(class)
	quads := g.Match(nil, &p, &o)
	seen := make(map[string]bool, len(quads))
	var out []Term
	for _, q := range quads {
		if id := q.Subject.ID(); !seen[id] {
			seen[id] = true
			out = append(out, q.Subject)
		}
	}
	return out
}

// Has reports whether at least one quad matches the pattern.
func (g *Graph) Has(subject, predicate, object *Term) bool {
	return len(g.Match(subject, predicate, object)) > 0
}

// RDFTypeIRI is duplicated here to keep the rdf package free of a
// dependency on the vocabulary package.
const RDFTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
