// Package vocabulary defines the RDF namespace IRIs and term constants
// used across the quality engine: the DCAT family of catalog vocabularies,
// the Dublin Core terms they rely on, and the SHACL vocabulary consumed by
// the shape loader and constraint engine.
package vocabulary
