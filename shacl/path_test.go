package shacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/vocabulary"
)

func TestPathString(t *testing.T) {
	single := Path{Steps: []PathStep{{Predicates: []string{"dct:title"}}}}
	assert.Equal(t, "dct:title", single.String())

	sequence := Path{Steps: []PathStep{
		{Predicates: []string{"dcat:distribution"}},
		{Predicates: []string{"dct:license"}},
	}}
	assert.Equal(t, "dcat:distribution/dct:license", sequence.String())

	alternatives := Path{Steps: []PathStep{
		{Predicates: []string{"dct:title", "dct:description"}},
	}}
	assert.Equal(t, "(dct:title | dct:description)", alternatives.String())

	inverse := Path{Steps: []PathStep{{Predicates: []string{"dcat:dataset"}, Inverse: true}}}
	assert.Equal(t, "^dcat:dataset", inverse.String())
}

func TestPathStringTotality(t *testing.T) {
	assert.Equal(t, "dct:title", PathString(Path{Steps: []PathStep{{Predicates: []string{"dct:title"}}}}))
	assert.Equal(t, "", PathString((*Path)(nil)))
	assert.Equal(t, "fallback", PathString("fallback"))
	assert.Equal(t, "http://example.org/p", PathString(rdf.NewIRI("http://example.org/p")))
	assert.Equal(t, "", PathString(nil))
}

func TestPathLastPredicate(t *testing.T) {
	p := Path{Steps: []PathStep{
		{Predicates: []string{"dcat:distribution"}},
		{Predicates: []string{"dct:license", "dct:rights"}},
	}}
	assert.Equal(t, "dct:license", p.LastPredicate())
	assert.Equal(t, "", Path{}.LastPredicate())
	assert.True(t, Path{}.IsZero())
}

func TestParsePathFromGraph(t *testing.T) {
	g, err := rdf.Decode(shapePrefixes+`
ex:a sh:path dct:title .
ex:b sh:path [ sh:alternativePath ( dct:title dct:description ) ] .
ex:c sh:path ( dcat:distribution dct:license ) .
ex:d sh:path [ sh:inversePath dcat:dataset ] .
`, rdf.FormatTurtle)
	require.NoError(t, err)

	pathOf := func(subj string) Path {
		terms := g.Objects(rdf.NewIRI("http://example.org/shapes#"+subj), vocabulary.ShPath)
		require.Len(t, terms, 1)
		return parsePath(g, terms[0])
	}

	direct := pathOf("a")
	require.Len(t, direct.Steps, 1)
	assert.Equal(t, []string{vocabulary.DCTerms + "title"}, direct.Steps[0].Predicates)

	alt := pathOf("b")
	require.Len(t, alt.Steps, 1)
	assert.Len(t, alt.Steps[0].Predicates, 2)

	seq := pathOf("c")
	require.Len(t, seq.Steps, 2)
	assert.Equal(t, vocabulary.DCTerms+"license", seq.LastPredicate())

	inv := pathOf("d")
	require.Len(t, inv.Steps, 1)
	assert.True(t, inv.Steps[0].Inverse)
}
