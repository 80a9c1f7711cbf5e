package shacl

import (
	"strings"

	"github.com/c360studio/dcatqa/vocabulary"
)

// enrichable lists the constraint components whose raw engine messages are
// routinely opaque to data publishers and get explanatory text prepended.
var enrichable = map[string]bool{
	"sh:" + vocabulary.LocalName(vocabulary.ShOrComponent):       true,
	"sh:" + vocabulary.LocalName(vocabulary.ShAndComponent):      true,
	"sh:" + vocabulary.LocalName(vocabulary.ShNotComponent):      true,
	"sh:" + vocabulary.LocalName(vocabulary.ShDatatypeComponent): true,
	"sh:" + vocabulary.LocalName(vocabulary.ShPatternComponent):  true,
}

// shapeConvention is one recognized shape-naming convention and the
// bilingual explanation attached to its violations.
type shapeConvention struct {
	hints []string
	en    string
	es    string
}

var conventions = []shapeConvention{
	{
		hints: []string{"dateordatetime", "date_or_datetime", "dateor"},
		en:    "The value must be a date (xsd:date) or a date with time (xsd:dateTime).",
		es:    "El valor debe ser una fecha (xsd:date) o una fecha con hora (xsd:dateTime).",
	},
	{
		hints: []string{"multilingual", "langstring", "languagetag"},
		en:    "The literal must carry a language tag for each supported language.",
		es:    "El literal debe incluir una etiqueta de idioma para cada idioma soportado.",
	},
	{
		hints: []string{"nonempty", "non_empty", "notempty"},
		en:    "The literal must not be empty or contain only whitespace.",
		es:    "El literal no debe estar vacío ni contener solo espacios en blanco.",
	},
	{
		hints: []string{"location", "spatial"},
		en:    "The spatial value must be a dct:Location resource or an identifier from a supported geographic vocabulary.",
		es:    "El valor espacial debe ser un recurso dct:Location o un identificador de un vocabulario geográfico soportado.",
	},
	{
		hints: []string{"license"},
		en:    "The license must be a dct:LicenseDocument resource or a URI from the supported license vocabulary.",
		es:    "La licencia debe ser un recurso dct:LicenseDocument o una URI del vocabulario de licencias soportado.",
	},
}

// enrichMessages prepends bilingual explanatory messages for complex
// constraints whose shape names follow a recognized convention. The raw
// engine messages are kept, after the explanations.
func enrichMessages(component, shapeName string, raw []string) []string {
	if !enrichable[component] {
		return raw
	}
	normalized := strings.ToLower(strings.ReplaceAll(shapeName, "-", ""))
	for _, conv := range conventions {
		for _, hint := range conv.hints {
			if strings.Contains(normalized, strings.ReplaceAll(hint, "_", "")) ||
				strings.Contains(strings.ToLower(shapeName), hint) {
				enriched := []string{
					`"` + conv.en + `"@en`,
					`"` + conv.es + `"@es`,
				}
				return append(enriched, raw...)
			}
		}
	}
	return raw
}
