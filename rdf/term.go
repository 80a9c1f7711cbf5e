// Package rdf provides the internal RDF term model, an in-memory quad graph
// with pattern-match lookup, and the value normalization applied to the
// heterogeneous term representations that reach the engine boundary.
package rdf

import "strings"

// Kind classifies a term. The engine performs the messy duck-typing
// classification of foreign term shapes exactly once, at the boundary, and
// works with this tagged model everywhere else.
type Kind int

const (
	// KindUnknown marks a term that could not be classified.
	KindUnknown Kind = iota
	// KindIRI is a named node.
	KindIRI
	// KindLiteral is a literal with optional language tag or datatype.
	KindLiteral
	// KindBlank is a blank node identifier.
	KindBlank
	// KindVariable is a query variable.
	KindVariable
	// KindDefaultGraph is the default graph marker.
	KindDefaultGraph
)

// Term is a single RDF term. The zero value is an unknown, empty term.
type Term struct {
	Kind     Kind
	Value    string
	Language string
	Datatype string
}

// NewIRI returns a named-node term.
func NewIRI(iri string) Term { return Term{Kind: KindIRI, Value: iri} }

// NewLiteral returns a plain literal term.
func NewLiteral(value string) Term { return Term{Kind: KindLiteral, Value: value} }

// NewLangLiteral returns a language-tagged literal term.
func NewLangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Language: lang}
}

// NewTypedLiteral returns a literal term with an explicit datatype IRI.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// NewBlank returns a blank-node term. Any leading "_:" is stripped so the
// stored value is the bare identifier.
func NewBlank(id string) Term {
	return Term{Kind: KindBlank, Value: strings.TrimPrefix(id, "_:")}
}

// IsZero reports whether the term is the empty zero value.
func (t Term) IsZero() bool { return t.Kind == KindUnknown && t.Value == "" }

// IsIRI reports whether the term is a named node.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// Equal reports full term equality, including language tag and datatype.
func (t Term) Equal(o Term) bool {
	return t.Kind == o.Kind && t.Value == o.Value &&
		t.Language == o.Language && t.Datatype == o.Datatype
}

// ID returns the canonical string identity of the term: the IRI, the
// "_:"-prefixed blank identifier, or the literal value.
func (t Term) ID() string {
	switch t.Kind {
	case KindBlank:
		return "_:" + t.Value
	case KindVariable:
		return "?" + t.Value
	case KindDefaultGraph:
		return "default-graph"
	default:
		return t.Value
	}
}

// NTriples renders the term in N-Triples syntax. Used by the report
// exporter and by tests.
func (t Term) NTriples() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(t.Value)
		switch {
		case t.Language != "":
			return `"` + escaped + `"@` + t.Language
		case t.Datatype != "" && t.Datatype != XSDString:
			return `"` + escaped + `"^^<` + t.Datatype + `>`
		default:
			return `"` + escaped + `"`
		}
	default:
		return t.Value
	}
}

// XSDString is the implicit datatype of plain literals.
const XSDString = "http://www.w3.org/2001/XMLSchema#string"
