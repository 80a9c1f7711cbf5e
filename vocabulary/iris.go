package vocabulary

// Namespace base IRIs for the vocabularies referenced by DCAT-AP profiles.
const (
	// DCAT is the Data Catalog vocabulary namespace.
	DCAT = "http://www.w3.org/ns/dcat#"

	// DCTerms is the Dublin Core terms namespace.
	DCTerms = "http://purl.org/dc/terms/"

	// FOAF is the Friend-of-a-Friend namespace.
	FOAF = "http://xmlns.com/foaf/0.1/"

	// VCard is the vCard ontology namespace.
	VCard = "http://www.w3.org/2006/vcard/ns#"

	// ADMS is the Asset Description Metadata Schema namespace.
	ADMS = "http://www.w3.org/ns/adms#"

	// RDF is the RDF syntax namespace.
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFS is the RDF Schema namespace.
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// SHACL is the Shapes Constraint Language namespace.
	SHACL = "http://www.w3.org/ns/shacl#"

	// XSD is the XML Schema datatypes namespace.
	XSD = "http://www.w3.org/2001/XMLSchema#"

	// SKOS is the Simple Knowledge Organization System namespace.
	SKOS = "http://www.w3.org/2004/02/skos/core#"

	// DQV is the Data Quality Vocabulary namespace.
	DQV = "http://www.w3.org/ns/dqv#"
)

// Class IRIs for the DCAT entity types the engine classifies violations by.
const (
	// ClassCatalog is the dcat:Catalog class.
	ClassCatalog = DCAT + "Catalog"

	// ClassDataset is the dcat:Dataset class.
	ClassDataset = DCAT + "Dataset"

	// ClassDistribution is the dcat:Distribution class.
	ClassDistribution = DCAT + "Distribution"

	// ClassDataService is the dcat:DataService class.
	ClassDataService = DCAT + "DataService"
)

// RDF core terms.
const (
	// RDFType is the rdf:type predicate.
	RDFType = RDF + "type"

	// RDFLangString is the rdf:langString datatype.
	RDFLangString = RDF + "langString"

	// RDFSLabel is the rdfs:label predicate.
	RDFSLabel = RDFS + "label"
)

// DCAT predicates examined by the metric evaluator.
const (
	DcatKeyword      = DCAT + "keyword"
	DcatTheme        = DCAT + "theme"
	DcatAccessURL    = DCAT + "accessURL"
	DcatDownloadURL  = DCAT + "downloadURL"
	DcatMediaType    = DCAT + "mediaType"
	DcatByteSize     = DCAT + "byteSize"
	DcatContactPoint = DCAT + "contactPoint"
	DcatDistribution = DCAT + "distribution"
)

// Dublin Core predicates examined by the metric evaluator.
const (
	DctTitle        = DCTerms + "title"
	DctDescription  = DCTerms + "description"
	DctFormat       = DCTerms + "format"
	DctLicense      = DCTerms + "license"
	DctAccessRights = DCTerms + "accessRights"
	DctRights       = DCTerms + "rights"
	DctSpatial      = DCTerms + "spatial"
	DctTemporal     = DCTerms + "temporal"
	DctIssued       = DCTerms + "issued"
	DctModified     = DCTerms + "modified"
	DctPublisher    = DCTerms + "publisher"
	DctCreator      = DCTerms + "creator"
	DctLanguage     = DCTerms + "language"
	DctConformsTo   = DCTerms + "conformsTo"
	DctIdentifier   = DCTerms + "identifier"
)
