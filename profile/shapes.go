package profile

import (
	"fmt"
	"strings"
)

// Pinned shape-set versions. DCAT-AP-ES builds on DCAT-AP 2.1.1, so the
// versions move together.
const (
	DCATAPVersion   = "2.1.1"
	DCATAPESVersion = "1.0.0"
	NTIRISPVersion  = "1.0.0"
)

// ShapeFile is one SHACL document of a profile's shape set. Name is the
// path relative to the configured shapes directory; URL is the pinned
// upstream location used when the local copy is missing or being refreshed.
type ShapeFile struct {
	Name string
	URL  string
}

func dcatAPFile(stem string) ShapeFile {
	name := fmt.Sprintf("dcat-ap_%s_shacl_%s.ttl", DCATAPVersion, stem)
	return ShapeFile{
		Name: fmt.Sprintf("dcat-ap/%s/%s", DCATAPVersion, name),
		URL:  fmt.Sprintf("https://raw.githubusercontent.com/SEMICeu/DCAT-AP/master/releases/%s/%s", DCATAPVersion, name),
	}
}

func dcatAPESFile(name string) ShapeFile {
	return ShapeFile{
		Name: fmt.Sprintf("dcat-ap-es/%s/%s", DCATAPESVersion, name),
		URL:  fmt.Sprintf("https://raw.githubusercontent.com/datosgobes/DCAT-AP-ES/main/shacl/%s/%s", DCATAPESVersion, name),
	}
}

func ntiRISPFile(name string) ShapeFile {
	return ShapeFile{
		Name: fmt.Sprintf("nti-risp/%s/%s", NTIRISPVersion, name),
		URL:  fmt.Sprintf("https://raw.githubusercontent.com/datosgobes/NTI-RISP/main/shacl/%s/%s", NTIRISPVersion, name),
	}
}

// ShapeFiles resolves the version-pinned shape documents for a selection.
func ShapeFiles(sel Selection) []ShapeFile {
	switch sel.Profile {
	case DCATAP:
		files := []ShapeFile{
			dcatAPFile("shapes"),
			dcatAPFile("imports"),
			dcatAPFile("range"),
			dcatAPFile("deprecateduris"),
		}
		if sel.level() >= LevelVocabularies {
			files = append(files,
				dcatAPFile("mdr-vocabularies.shape"),
				dcatAPFile("mdr_imports"),
			)
		}
		if sel.level() >= LevelRecommended {
			files = append(files, dcatAPFile("shapes_recommended"))
		}
		return files
	case DCATAPES:
		files := []ShapeFile{
			dcatAPESFile("shacl_catalog_shape.ttl"),
			dcatAPESFile("shacl_common_shapes.ttl"),
			dcatAPESFile("shacl_dataservice_shape.ttl"),
			dcatAPESFile("shacl_dataset_shape.ttl"),
			dcatAPESFile("shacl_distribution_shape.ttl"),
			dcatAPESFile("shacl_mdr-vocabularies.shape.ttl"),
		}
		if sel.HVD {
			files = append(files,
				dcatAPESFile("hvd/shacl_common_hvd_shapes.ttl"),
				dcatAPESFile("hvd/shacl_dataservice_hvd_shape.ttl"),
				dcatAPESFile("hvd/shacl_dataset_hvd_shape.ttl"),
				dcatAPESFile("hvd/shacl_distribution_hvd_shape.ttl"),
			)
		}
		return files
	case NTIRISP:
		return []ShapeFile{
			ntiRISPFile("shacl_catalog_shape.ttl"),
			ntiRISPFile("shacl_common_shapes.ttl"),
			ntiRISPFile("shacl_dataservice_shape.ttl"),
			ntiRISPFile("shacl_dataset_shape.ttl"),
			ntiRISPFile("shacl_distribution_shape.ttl"),
			ntiRISPFile("shacl_mdr-vocabularies.shape.ttl"),
		}
	default:
		return nil
	}
}

// AllShapeFiles enumerates every pinned shape document across profiles,
// including optional level and HVD documents. Used by the shape updater.
func AllShapeFiles() []ShapeFile {
	seen := make(map[string]bool)
	var out []ShapeFile
	add := func(files []ShapeFile) {
		for _, f := range files {
			if !seen[f.Name] {
				seen[f.Name] = true
				out = append(out, f)
			}
		}
	}
	add(ShapeFiles(Selection{Profile: DCATAP, Level: LevelRecommended}))
	add(ShapeFiles(Selection{Profile: DCATAPES, HVD: true}))
	add(ShapeFiles(Selection{Profile: NTIRISP}))
	return out
}

// docBases are the per-profile documentation sites violations link into.
var docBases = map[ID]string{
	DCATAP:   "https://semiceu.github.io/DCAT-AP/releases/" + DCATAPVersion + "/",
	DCATAPES: "https://datosgobes.github.io/DCAT-AP-ES/",
	NTIRISP:  "https://datosgobes.github.io/NTI-RISP/",
}

// DocURL synthesizes the documentation anchor for a violation. Both the
// entity context and the violated property are required; each profile's
// site uses its own anchor convention.
func DocURL(p ID, entity, property string) string {
	if entity == "" || property == "" {
		return ""
	}
	base, ok := docBases[p]
	if !ok {
		return ""
	}
	entity = strings.ToLower(entity)
	property = strings.ToLower(property)
	switch p {
	case DCATAPES, NTIRISP:
		// datos.gob.es sites anchor sections as #<entity>_<property>.
		return base + "#" + entity + "_" + property
	default:
		// SEMIC anchors properties as #<entity>.<property>.
		return base + "#" + entity + "." + property
	}
}
