package shacl

import "strings"

// Entity contexts a violation can be classified under. These are the
// conceptual DCAT entity types the documentation links anchor to.
const (
	EntityCatalog         = "Catalog"
	EntityDataset         = "Dataset"
	EntityDistribution    = "Distribution"
	EntityDataService     = "DataService"
	EntityOrganization    = "Organization"
	EntityAgent           = "Agent"
	EntityContactPoint    = "ContactPoint"
	EntityLicenseDocument = "LicenseDocument"
	EntityPeriodOfTime    = "PeriodOfTime"
	EntityLocation        = "Location"
	EntityUnknown         = "Unknown Entity"
)

// entityHints maps lowercase substrings to entity contexts, most specific
// first so "dataservice" wins over "dataset"-adjacent hits.
var entityHints = []struct {
	hint   string
	entity string
}{
	{"dataservice", EntityDataService},
	{"data_service", EntityDataService},
	{"distribution", EntityDistribution},
	{"catalog", EntityCatalog},
	{"dataset", EntityDataset},
	{"organization", EntityOrganization},
	{"contactpoint", EntityContactPoint},
	{"contact_point", EntityContactPoint},
	{"vcard", EntityContactPoint},
	{"licensedocument", EntityLicenseDocument},
	{"license", EntityLicenseDocument},
	{"periodoftime", EntityPeriodOfTime},
	{"temporal", EntityPeriodOfTime},
	{"location", EntityLocation},
	{"spatial", EntityLocation},
	{"agent", EntityAgent},
	{"publisher", EntityOrganization},
}

// inferEntityContext classifies which conceptual entity a violation
// concerns. Inputs are tried in priority order: shape name, focus-node URI,
// property path, constraint component; then the shape name stripped of its
// conventional suffix words; "Unknown Entity" when everything fails.
func inferEntityContext(shapeName, focusNode, path, component string) string {
	for _, input := range []string{shapeName, focusNode, path, component} {
		if e := matchEntityHint(input); e != "" {
			return e
		}
	}
	if stripped := stripShapeSuffix(shapeName); stripped != "" {
		return stripped
	}
	return EntityUnknown
}

func matchEntityHint(input string) string {
	if input == "" {
		return ""
	}
	lower := strings.ToLower(input)
	for _, h := range entityHints {
		if strings.Contains(lower, h.hint) {
			return h.entity
		}
	}
	return ""
}

// stripShapeSuffix removes the conventional trailing words of a shape local
// name (FooPropertyShape, FooNodeShape, FooConstraint) and returns what
// remains as a best-effort entity name.
func stripShapeSuffix(name string) string {
	for _, suffix := range []string{"PropertyShape", "NodeShape", "Shape", "Constraint", "Property", "Node"} {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.TrimSpace(name)
}
