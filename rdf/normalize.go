package rdf

import (
	"fmt"
	"reflect"
	"strings"
)

// TermLister is implemented by engine result pointers that wrap one or more
// terms. TermValue unwraps the first non-empty one.
type TermLister interface {
	Terms() []Term
}

// maxNormalizeDepth bounds recursion through nested wrappers so TermValue
// stays total even on cyclic inputs.
const maxNormalizeDepth = 8

// TermValue extracts a canonical string value from any of the term
// representations that reach the engine boundary: plain strings, slices,
// internal Terms, quads, RDF/JS-style maps carrying termType and value,
// legacy objects exposing value/uri/id/iri, pointer wrappers, Stringers and
// zero-argument functions. It never panics and returns "" when no value can
// be extracted.
func TermValue(v any) string {
	return termValue(v, 0)
}

func termValue(v any, depth int) (out string) {
	if depth > maxNormalizeDepth {
		return ""
	}
	// A malformed wrapper must degrade to "", not abort the caller.
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Term:
		return normalizedTermID(t)
	case *Term:
		if t == nil {
			return ""
		}
		return normalizedTermID(*t)
	case Quad:
		return termValue(t.Object, depth+1)
	case *Quad:
		if t == nil {
			return ""
		}
		return termValue(t.Object, depth+1)
	case TermLister:
		for _, term := range t.Terms() {
			if s := termValue(term, depth+1); s != "" {
				return s
			}
		}
		return ""
	case func() any:
		if t == nil {
			return ""
		}
		return termValue(t(), depth+1)
	case map[string]any:
		return mapValue(t, depth)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(t)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		// Any zero-argument thunk, not just func() any.
		ft := rv.Type()
		if rv.IsNil() || ft.NumIn() != 0 || ft.NumOut() == 0 {
			return ""
		}
		return termValue(rv.Call(nil)[0].Interface(), depth+1)
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if s := termValue(rv.Index(i).Interface(), depth+1); s != "" {
				return s
			}
		}
		return ""
	}

	if s, ok := v.(fmt.Stringer); ok {
		str := s.String()
		if isPlaceholderString(str) {
			return ""
		}
		return str
	}
	return ""
}

// normalizedTermID renders an internal term the way downstream extractors
// expect: blank nodes keep their "_:" prefix, variables their "?" marker,
// the default graph its constant name.
func normalizedTermID(t Term) string {
	switch t.Kind {
	case KindBlank:
		if strings.HasPrefix(t.Value, "_:") {
			return t.Value
		}
		return "_:" + t.Value
	case KindVariable:
		if strings.HasPrefix(t.Value, "?") {
			return t.Value
		}
		return "?" + t.Value
	case KindDefaultGraph:
		return "default-graph"
	default:
		return t.Value
	}
}

// mapValue handles RDF/JS-style term maps and legacy shapes keyed by
// value/uri/id/iri, in that order of precedence.
func mapValue(m map[string]any, depth int) string {
	if tt, ok := m["termType"].(string); ok {
		val, _ := m["value"].(string)
		switch tt {
		case "BlankNode":
			if strings.HasPrefix(val, "_:") {
				return val
			}
			return "_:" + val
		case "Variable":
			return "?" + val
		case "DefaultGraph":
			return "default-graph"
		default:
			return val
		}
	}
	for _, key := range []string{"value", "uri", "id", "iri"} {
		if raw, ok := m[key]; ok {
			if s := termValue(raw, depth+1); s != "" {
				return s
			}
		}
	}
	if obj, ok := m["object"]; ok {
		return termValue(obj, depth+1)
	}
	return ""
}

// isPlaceholderString filters out Stringer results that carry no term
// value, like the generic object placeholders some wrappers produce.
func isPlaceholderString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return strings.HasPrefix(s, "[object ") && strings.HasSuffix(s, "]")
}
