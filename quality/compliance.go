package quality

import "github.com/c360studio/dcatqa/shacl"

// ComplianceScore grades a SHACL report as a binary compliance value: 100
// when the data conforms with no recorded violations, 0 otherwise. Warnings
// and infos do not affect compliance.
func ComplianceScore(r *shacl.Report) int {
	if r == nil {
		return 0
	}
	if r.Conforms && len(r.Violations) == 0 {
		return 100
	}
	return 0
}
