package profile

import "fmt"

// Category is a FAIR+C quality dimension.
type Category string

const (
	Findability      Category = "findability"
	Accessibility    Category = "accessibility"
	Interoperability Category = "interoperability"
	Reusability      Category = "reusability"
	Contextuality    Category = "contextuality"
)

// Categories lists the dimensions in report order.
var Categories = []Category{
	Findability, Accessibility, Interoperability, Reusability, Contextuality,
}

// MetricDefinition is one weighted metric of a profile's quality model.
// Property is a prefixed name (dct:title) or a full IRI. Definitions are
// static configuration and never mutated at runtime.
type MetricDefinition struct {
	ID       string   `yaml:"id"`
	Property string   `yaml:"property"`
	Weight   int      `yaml:"weight"`
	Category Category `yaml:"category"`
}

// commonMetrics apply to every profile.
var commonMetrics = []MetricDefinition{
	{ID: "dct_title", Property: "dct:title", Weight: 10, Category: Findability},
	{ID: "dct_description", Property: "dct:description", Weight: 10, Category: Findability},
	{ID: "dcat_keyword", Property: "dcat:keyword", Weight: 30, Category: Findability},
	{ID: "dcat_theme", Property: "dcat:theme", Weight: 30, Category: Findability},
	{ID: "dct_spatial", Property: "dct:spatial", Weight: 20, Category: Findability},
	{ID: "dct_temporal", Property: "dct:temporal", Weight: 20, Category: Findability},

	{ID: "dcat_accessURL_status", Property: "dcat:accessURL", Weight: 50, Category: Accessibility},
	{ID: "dcat_distribution", Property: "dcat:distribution", Weight: 20, Category: Accessibility},

	{ID: "dct_format", Property: "dct:format", Weight: 20, Category: Interoperability},
	{ID: "dcat_mediaType", Property: "dcat:mediaType", Weight: 10, Category: Interoperability},
	{ID: "dct_conformsTo", Property: "dct:conformsTo", Weight: 10, Category: Interoperability},

	{ID: "dct_language", Property: "dct:language", Weight: 10, Category: Reusability},

	{ID: "dcat_byteSize", Property: "dcat:byteSize", Weight: 5, Category: Contextuality},
	{ID: "dct_issued", Property: "dct:issued", Weight: 5, Category: Contextuality},
	{ID: "dct_modified", Property: "dct:modified", Weight: 5, Category: Contextuality},
	{ID: "dct_creator", Property: "dct:creator", Weight: 5, Category: Contextuality},
	{ID: "dct_title_length", Property: "dct:title", Weight: 5, Category: Contextuality},
	{ID: "dct_description_length", Property: "dct:description", Weight: 10, Category: Contextuality},
}

// dcatCommonMetrics apply to DCAT-AP and DCAT-AP-ES.
var dcatCommonMetrics = []MetricDefinition{
	{ID: "dcat_downloadURL", Property: "dcat:downloadURL", Weight: 20, Category: Accessibility},
	{ID: "dcat_downloadURL_status", Property: "dcat:downloadURL", Weight: 30, Category: Accessibility},

	{ID: "dct_format_vocabulary", Property: "dct:format", Weight: 5, Category: Interoperability},
	{ID: "dct_mediaType_vocabulary", Property: "dcat:mediaType", Weight: 5, Category: Interoperability},
	{ID: "dct_format_nonproprietary", Property: "dct:format", Weight: 20, Category: Interoperability},
	{ID: "dct_format_machinereadable", Property: "dct:format", Weight: 20, Category: Interoperability},

	{ID: "dct_license", Property: "dct:license", Weight: 20, Category: Reusability},
	{ID: "dct_license_vocabulary", Property: "dct:license", Weight: 10, Category: Reusability},
	{ID: "dct_accessRights", Property: "dct:accessRights", Weight: 10, Category: Reusability},
	{ID: "dct_accessRights_vocabulary", Property: "dct:accessRights", Weight: 5, Category: Reusability},
	{ID: "dcat_contactPoint", Property: "dcat:contactPoint", Weight: 20, Category: Reusability},
	{ID: "dct_publisher", Property: "dct:publisher", Weight: 10, Category: Reusability},

	{ID: "dct_rights", Property: "dct:rights", Weight: 5, Category: Contextuality},
}

var metricsByProfile = map[ID][]MetricDefinition{
	DCATAP: concat(commonMetrics, dcatCommonMetrics, []MetricDefinition{
		{ID: "dcat_ap_compliance", Property: "dct:conformsTo", Weight: 30, Category: Interoperability},
	}),
	DCATAPES: concat(commonMetrics, dcatCommonMetrics, []MetricDefinition{
		{ID: "dcat_ap_es_compliance", Property: "dct:conformsTo", Weight: 30, Category: Interoperability},
	}),
	NTIRISP: concat(commonMetrics, []MetricDefinition{
		{ID: "dct_format_vocabulary_nti_risp", Property: "dct:format", Weight: 5, Category: Interoperability},
		{ID: "dct_format_nonproprietary", Property: "dct:format", Weight: 20, Category: Interoperability},
		{ID: "dct_format_machinereadable", Property: "dct:format", Weight: 20, Category: Interoperability},
		{ID: "nti_risp_compliance", Property: "dct:conformsTo", Weight: 30, Category: Interoperability},

		{ID: "dct_license", Property: "dct:license", Weight: 20, Category: Reusability},
		{ID: "dct_license_vocabulary", Property: "dct:license", Weight: 10, Category: Reusability},
		{ID: "dct_publisher", Property: "dct:publisher", Weight: 10, Category: Reusability},
	}),
}

// complianceMetric names each profile's SHACL compliance metric. The
// compliance scorer's binary result replaces this metric's score after
// validation and the totals are recomputed.
var complianceMetric = map[ID]string{
	DCATAP:   "dcat_ap_compliance",
	DCATAPES: "dcat_ap_es_compliance",
	NTIRISP:  "nti_risp_compliance",
}

func concat(lists ...[]MetricDefinition) []MetricDefinition {
	var out []MetricDefinition
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Metrics returns the metric definitions of a profile grouped by category,
// preserving definition order inside each category. An unknown profile is a
// configuration error.
func Metrics(p ID) (map[Category][]MetricDefinition, error) {
	defs, ok := metricsByProfile[p]
	if !ok {
		return nil, fmt.Errorf("no metric configuration registered for profile %q", p)
	}
	byCat := make(map[Category][]MetricDefinition, len(Categories))
	for _, def := range defs {
		byCat[def.Category] = append(byCat[def.Category], def)
	}
	return byCat, nil
}

// ComplianceMetricID returns the identifier of the profile's designated
// compliance metric, or "" when the profile has none.
func ComplianceMetricID(p ID) string { return complianceMetric[p] }
