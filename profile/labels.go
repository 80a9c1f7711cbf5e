package profile

import "strings"

// metricLabels carries the human-readable metric names in the two locales
// the reports support.
var metricLabels = map[string]map[string]string{
	"dcat_keyword":                {"en": "Keywords", "es": "Palabras clave"},
	"dcat_theme":                  {"en": "Themes/Categories", "es": "Temas/Categorías"},
	"dct_spatial":                 {"en": "Spatial Coverage", "es": "Cobertura espacial"},
	"dct_temporal":                {"en": "Temporal Coverage", "es": "Cobertura temporal"},
	"dcat_accessURL_status":       {"en": "Access URL Availability", "es": "Disponibilidad de URL de acceso"},
	"dcat_downloadURL":            {"en": "Download URL", "es": "URL de descarga"},
	"dcat_downloadURL_status":     {"en": "Download URL Availability", "es": "Disponibilidad de URL de descarga"},
	"dct_format":                  {"en": "Format", "es": "Formato"},
	"dcat_mediaType":              {"en": "Media Type", "es": "Tipo de medio"},
	"dct_format_vocabulary":       {"en": "Format Vocabulary", "es": "Vocabulario de formato"},
	"dct_mediaType_vocabulary":    {"en": "Media Type Vocabulary", "es": "Vocabulario de tipo de medio"},
	"dct_format_nonproprietary":   {"en": "Non-proprietary Format", "es": "Formato no propietario"},
	"dct_format_machinereadable":  {"en": "Machine-readable Format", "es": "Formato legible por máquina"},
	"dcat_ap_compliance":          {"en": "DCAT-AP Compliance", "es": "Conformidad con DCAT-AP"},
	"dcat_ap_es_compliance":       {"en": "DCAT-AP-ES Compliance", "es": "Conformidad con DCAT-AP-ES"},
	"nti_risp_compliance":         {"en": "NTI-RISP Compliance", "es": "Conformidad con NTI-RISP (2013)"},
	"dct_license":                 {"en": "License", "es": "Licencia"},
	"dct_license_vocabulary":      {"en": "License Vocabulary", "es": "Vocabulario de licencia"},
	"dct_accessRights":            {"en": "Access Rights", "es": "Derechos de acceso"},
	"dct_accessRights_vocabulary": {"en": "Access Rights Vocabulary", "es": "Vocabulario de derechos de acceso"},
	"dcat_contactPoint":           {"en": "Contact Point", "es": "Punto de contacto"},
	"dct_publisher":               {"en": "Publisher", "es": "Editor"},
	"dct_rights":                  {"en": "Rights", "es": "Derechos"},
	"dcat_byteSize":               {"en": "Byte Size", "es": "Tamaño en bytes"},
	"dct_issued":                  {"en": "Issued Date", "es": "Fecha de emisión"},
	"dct_modified":                {"en": "Modified Date", "es": "Fecha de modificación"},
	"dct_title":                   {"en": "Title", "es": "Título"},
	"dct_description":             {"en": "Description", "es": "Descripción"},
	"dct_title_length":            {"en": "Title Length", "es": "Longitud del título"},
	"dct_description_length":      {"en": "Description Length", "es": "Longitud de la descripción"},
	"dct_language":                {"en": "Language", "es": "Idioma"},
	"dct_conformsTo":              {"en": "Conforms To", "es": "Conforme a"},
	"dct_creator":                 {"en": "Creator", "es": "Creador"},
	"dcat_distribution":           {"en": "Distributions", "es": "Distribuciones"},
	"dct_format_vocabulary_nti_risp": {"en": "Format Vocabulary (NTI-RISP)", "es": "Vocabulario de formato (NTI-RISP)"},
}

// Label returns the localized name of a metric, falling back to English and
// then to a humanized form of the identifier.
func Label(metricID, lang string) string {
	if langs, ok := metricLabels[metricID]; ok {
		if l, ok := langs[lang]; ok {
			return l
		}
		if l, ok := langs["en"]; ok {
			return l
		}
	}
	humanized := strings.ReplaceAll(metricID, "_", " ")
	if humanized == "" {
		return metricID
	}
	return strings.ToUpper(humanized[:1]) + humanized[1:]
}
