package shacl

import (
	"strings"

	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

// PathStep is one step of a SHACL property path. A step with several
// predicates is an alternative (sh:alternativePath); Inverse marks an
// sh:inversePath step.
type PathStep struct {
	Predicates []string
	Inverse    bool
}

// Path is a resolved SHACL property path: a sequence of steps.
type Path struct {
	Steps []PathStep
}

// IsZero reports whether the path has no steps.
func (p Path) IsZero() bool { return len(p.Steps) == 0 }

// LastPredicate returns the final step's first predicate, the property a
// violation is most usefully attributed to.
func (p Path) LastPredicate() string {
	if len(p.Steps) == 0 {
		return ""
	}
	last := p.Steps[len(p.Steps)-1]
	if len(last.Predicates) == 0 {
		return ""
	}
	return last.Predicates[0]
}

// String renders the path in the canonical slash/pipe form: sequence steps
// joined by "/", alternatives as "(a | b)".
func (p Path) String() string {
	parts := make([]string, 0, len(p.Steps))
	for _, step := range p.Steps {
		var s string
		switch len(step.Predicates) {
		case 0:
			continue
		case 1:
			s = step.Predicates[0]
		default:
			s = "(" + strings.Join(step.Predicates, " | ") + ")"
		}
		if step.Inverse {
			s = "^" + s
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "/")
}

// PathString renders any path representation. Structured paths use the
// canonical form; anything else falls back to term-value normalization, so
// the function is total.
func PathString(p any) string {
	switch v := p.(type) {
	case Path:
		return v.String()
	case *Path:
		if v == nil {
			return ""
		}
		return v.String()
	case []PathStep:
		return Path{Steps: v}.String()
	default:
		return rdf.TermValue(p)
	}
}

// parsePath resolves a path term from the shapes graph into a Path. A plain
// IRI is a single-step path; a blank node may be an alternative, an
// inverse, or an RDF list forming a sequence. Malformed structures fall
// back to a single step carrying the term's normalized value.
func parsePath(g *rdf.Graph, term rdf.Term) Path {
	return parsePathDepth(g, term, 0)
}

func parsePathDepth(g *rdf.Graph, term rdf.Term, depth int) Path {
	if depth > 8 {
		return Path{}
	}
	if term.IsIRI() {
		return Path{Steps: []PathStep{{Predicates: []string{term.Value}}}}
	}
	if !term.IsBlank() {
		if v := rdf.TermValue(term); v != "" {
			return Path{Steps: []PathStep{{Predicates: []string{v}}}}
		}
		return Path{}
	}

	if alts := g.Objects(term, vocabulary.ShAlternative); len(alts) == 1 {
		preds := listPredicates(g, alts[0])
		if len(preds) > 0 {
			return Path{Steps: []PathStep{{Predicates: preds}}}
		}
	}
	if inv := g.Objects(term, vocabulary.ShInversePath); len(inv) == 1 {
		inner := parsePathDepth(g, inv[0], depth+1)
		for i := range inner.Steps {
			inner.Steps[i].Inverse = !inner.Steps[i].Inverse
		}
		return inner
	}
	if items := listItems(g, term); len(items) > 0 {
		var steps []PathStep
		for _, item := range items {
			sub := parsePathDepth(g, item, depth+1)
			steps = append(steps, sub.Steps...)
		}
		return Path{Steps: steps}
	}
	if v := rdf.TermValue(term); v != "" {
		return Path{Steps: []PathStep{{Predicates: []string{v}}}}
	}
	return Path{}
}

// listPredicates flattens an RDF list (or single term) of predicates,
// tolerating a missing list structure by normalizing the node itself.
func listPredicates(g *rdf.Graph, head rdf.Term) []string {
	items := listItems(g, head)
	if len(items) == 0 {
		if v := rdf.TermValue(head); v != "" {
			return []string{v}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := rdf.TermValue(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// listItems walks an rdf:first/rdf:rest list. Returns nil when head is not
// a list node.
func listItems(g *rdf.Graph, head rdf.Term) []rdf.Term {
	const (
		first = vocabulary.RDF + "first"
		rest  = vocabulary.RDF + "rest"
		nilT  = vocabulary.RDF + "nil"
	)
	var out []rdf.Term
	node := head
	for i := 0; i < 1000; i++ {
		if node.IsIRI() && node.Value == nilT {
			return out
		}
		firsts := g.Objects(node, first)
		if len(firsts) == 0 {
			if len(out) == 0 {
				return nil
			}
			return out
		}
		out = append(out, firsts[0])
		rests := g.Objects(node, rest)
		if len(rests) == 0 {
			return out
		}
		node = rests[0]
	}
	return out
}
