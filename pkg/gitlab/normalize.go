package gitlab

import (
	"fmt"

	"github.com/containersec/convertctl/pkg/formats"
)

const (
	unknownField  = "unknown"
	cveLookupBase = "https://cve.mitre.org/cgi-bin/cvename.cgi?name="
)

// Normalize maps one extracted record onto the canonical vulnerability. It is
// total: every field the source format left out has a defined default, so the
// result is always a complete, schema-valid record.
func Normalize(r formats.Record) Vulnerability {
	id := firstNonEmpty(r.CVE, r.ID, unknownField)
	pkg := firstNonEmpty(r.PackageName, unknownField)

	description := r.Description
	if description == "" {
		description = fmt.Sprintf("Vulnerability %s found in package %s", id, pkg)
	}

	solution := fmt.Sprintf("Upgrade %s to a version that fixes %s",
		firstNonEmpty(r.PackageName, "package"), id)

	imageRef := fmt.Sprintf("%s:%s",
		firstNonEmpty(r.ImageName, unknownField),
		firstNonEmpty(r.ImageTag, unknownField))

	return Vulnerability{
		ID:          id,
		Name:        id,
		Description: description,
		Severity:    ParseSeverity(r.Severity),
		Solution:    solution,
		Identifiers: []Identifier{
			{
				Type:  "cve",
				Name:  id,
				Value: id,
				URL:   cveLookupBase + id,
			},
		},
		Location: Location{
			Dependency: Dependency{
				Package: Package{Name: pkg},
				Version: firstNonEmpty(r.PackageVersion, unknownField),
			},
			OperatingSystem: imageRef,
			Image:           imageRef,
		},
	}
}

// NormalizeAll normalizes records independently and in order, so the output
// sequence mirrors the extraction sequence.
func NormalizeAll(records []formats.Record) []Vulnerability {
	vulns := make([]Vulnerability, 0, len(records))
	for _, r := range records {
		vulns = append(vulns, Normalize(r))
	}

	return vulns
}

// firstNonEmpty resolves a field-presence fallback chain: the first non-empty
// candidate wins.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return ""
}
