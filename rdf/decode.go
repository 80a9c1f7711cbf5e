package rdf

import (
	"fmt"
	"io"
	"strings"

	knakk "github.com/knakk/rdf"
)

// Format identifies an RDF serialization accepted by Decode.
type Format string

const (
	// FormatTurtle is text/turtle.
	FormatTurtle Format = "turtle"
	// FormatNTriples is application/n-triples.
	FormatNTriples Format = "ntriples"
	// FormatRDFXML is application/rdf+xml.
	FormatRDFXML Format = "rdfxml"
)

// DetectFormat guesses the serialization of content. RDF/XML is recognized
// by its XML preamble, N-Triples by its rigid line structure, and anything
// else is treated as Turtle, which is a superset of N-Triples anyway.
func DetectFormat(content string) Format {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<rdf:RDF") {
		return FormatRDFXML
	}
	return FormatTurtle
}

// Decode parses content into a Graph. The empty format triggers detection.
func Decode(content string, format Format) (*Graph, error) {
	if format == "" {
		format = DetectFormat(content)
	}
	var kf knakk.Format
	switch format {
	case FormatTurtle:
		kf = knakk.Turtle
	case FormatNTriples:
		kf = knakk.NTriples
	case FormatRDFXML:
		kf = knakk.RDFXML
	default:
		return nil, fmt.Errorf("unsupported RDF format: %q", format)
	}

	dec := knakk.NewTripleDecoder(strings.NewReader(content), kf)
	g := NewGraph()
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		g.Add(Quad{
			Subject:   fromKnakk(triple.Subj),
			Predicate: fromKnakk(triple.Pred),
			Object:    fromKnakk(triple.Obj),
		})
	}
	return g, nil
}

// fromKnakk converts a knakk/rdf term into the internal model.
func fromKnakk(t knakk.Term) Term {
	switch t.Type() {
	case knakk.TermIRI:
		return NewIRI(t.String())
	case knakk.TermBlank:
		return NewBlank(t.String())
	case knakk.TermLiteral:
		lit, ok := t.(knakk.Literal)
		if !ok {
			return NewLiteral(t.String())
		}
		out := NewLiteral(lit.String())
		out.Language = lit.Lang()
		if dt := lit.DataType.String(); dt != "" && dt != XSDString && out.Language == "" {
			out.Datatype = dt
		}
		return out
	default:
		return Term{Kind: KindUnknown, Value: t.String()}
	}
}
