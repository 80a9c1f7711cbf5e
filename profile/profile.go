// Package profile carries the static configuration of the supported
// metadata application profiles: metric definitions per FAIR+C category,
// version-pinned SHACL shape-file lists, rating thresholds, bilingual
// metric labels and documentation-link rules.
package profile

import "fmt"

// ID identifies a metadata application profile.
type ID string

const (
	// DCATAP is the European DCAT-AP profile.
	DCATAP ID = "dcat_ap"
	// DCATAPES is the Spanish DCAT-AP-ES profile.
	DCATAPES ID = "dcat_ap_es"
	// NTIRISP is the Spanish NTI-RISP (2013) profile.
	NTIRISP ID = "nti_risp"
)

// All lists the supported profiles.
var All = []ID{DCATAP, DCATAPES, NTIRISP}

// Parse validates a profile identifier.
func Parse(s string) (ID, error) {
	for _, p := range All {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown profile %q (supported: dcat_ap, dcat_ap_es, nti_risp)", s)
}

// Level selects how strict DCAT-AP shape validation is. Higher levels add
// vocabulary and recommended-property shapes on top of the base set.
type Level int

const (
	// LevelBase validates structural shapes only.
	LevelBase Level = 1
	// LevelVocabularies adds controlled-vocabulary shapes.
	LevelVocabularies Level = 2
	// LevelRecommended adds recommended-property shapes.
	LevelRecommended Level = 3
)

// Selection is a profile choice plus its profile-specific options.
type Selection struct {
	Profile ID
	// Level applies to DCAT-AP only; zero means LevelVocabularies.
	Level Level
	// HVD appends the High Value Dataset shapes (DCAT-AP-ES only).
	HVD bool
}

func (s Selection) level() Level {
	if s.Level == 0 {
		return LevelVocabularies
	}
	return s.Level
}

// Rating buckets a total quality score per the MQA methodology.
type Rating string

const (
	RatingExcellent  Rating = "Excellent"
	RatingGood       Rating = "Good"
	RatingSufficient Rating = "Sufficient"
	RatingBad        Rating = "Bad"
)

// ratingThresholds holds the minimum total score per rating.
type ratingThresholds struct {
	excellent  float64
	good       float64
	sufficient float64
}

var thresholds = map[ID]ratingThresholds{
	DCATAP:   {excellent: 351, good: 221, sufficient: 121},
	DCATAPES: {excellent: 351, good: 221, sufficient: 121},
	NTIRISP:  {excellent: 264, good: 166, sufficient: 91},
}

// Rate maps a total score to its rating for the given profile.
func Rate(p ID, totalScore float64) Rating {
	t, ok := thresholds[p]
	if !ok {
		return RatingBad
	}
	switch {
	case totalScore >= t.excellent:
		return RatingExcellent
	case totalScore >= t.good:
		return RatingGood
	case totalScore >= t.sufficient:
		return RatingSufficient
	default:
		return RatingBad
	}
}
