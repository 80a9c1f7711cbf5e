package vocabulary

import "strings"

// Prefixes is the fixed prefix table used to expand the short-prefixed
// property names that appear in metric definitions. Both dcterms: and the
// dct: shorthand map to Dublin Core.
var Prefixes = map[string]string{
	"dcat":    DCAT,
	"dcterms": DCTerms,
	"dct":     DCTerms,
	"foaf":    FOAF,
	"vcard":   VCard,
	"adms":    ADMS,
	"rdf":     RDF,
	"rdfs":    RDFS,
	"sh":      SHACL,
	"xsd":     XSD,
	"skos":    SKOS,
}

// Expand converts a prefixed name such as "dct:title" to its full IRI.
// Full IRIs and names with unknown prefixes are returned unchanged, so the
// caller can pass either form.
func Expand(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return name
	}
	base, ok := Prefixes[prefix]
	if !ok {
		return name
	}
	return base + local
}

// Compact converts a full IRI to its prefixed form when the namespace is
// known, e.g. "http://purl.org/dc/terms/title" becomes "dcterms:title".
func Compact(iri string) string {
	for prefix, base := range Prefixes {
		if prefix == "dct" {
			continue // prefer the canonical dcterms form
		}
		if strings.HasPrefix(iri, base) {
			return prefix + ":" + strings.TrimPrefix(iri, base)
		}
	}
	return iri
}

// LocalName returns the fragment or last path segment of an IRI.
func LocalName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}
