package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containersec/convertctl/pkg/formats"
)

func fullRecord() formats.Record {
	return formats.Record{
		CVE:            "CVE-2019-12900",
		ID:             "scanner-4711",
		Description:    "BZ2 decompress bug",
		Severity:       "CRITICAL",
		CWE:            "CWE-787",
		PackageName:    "libbz2",
		PackageVersion: "1.0.6-r6",
		ImageName:      "python",
		ImageTag:       "alpine3.8",
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(fullRecord())

	assert.Equal(t, "CVE-2019-12900", v.ID)
	assert.Equal(t, "CVE-2019-12900", v.Name)
	assert.Equal(t, "BZ2 decompress bug", v.Description)
	assert.Equal(t, SeverityCritical, v.Severity)
	assert.Equal(t, "Upgrade libbz2 to a version that fixes CVE-2019-12900", v.Solution)

	require.Len(t, v.Identifiers, 1)
	assert.Equal(t, Identifier{
		Type:  "cve",
		Name:  "CVE-2019-12900",
		Value: "CVE-2019-12900",
		URL:   "https://cve.mitre.org/cgi-bin/cvename.cgi?name=CVE-2019-12900",
	}, v.Identifiers[0])

	assert.Equal(t, "libbz2", v.Location.Dependency.Package.Name)
	assert.Equal(t, "1.0.6-r6", v.Location.Dependency.Version)
	assert.Equal(t, "python:alpine3.8", v.Location.Image)
	assert.Equal(t, "python:alpine3.8", v.Location.OperatingSystem)
}

func TestNormalizeIdentifierFallback(t *testing.T) {
	r := fullRecord()
	r.CVE = ""

	v := Normalize(r)

	assert.Equal(t, "scanner-4711", v.ID)
	assert.Equal(t, "scanner-4711", v.Name)
	assert.Equal(t, "scanner-4711", v.Identifiers[0].Value)
	assert.Equal(t, "https://cve.mitre.org/cgi-bin/cvename.cgi?name=scanner-4711", v.Identifiers[0].URL)
}

func TestNormalizeSynthesizedDescription(t *testing.T) {
	r := fullRecord()
	r.Description = ""

	v := Normalize(r)
	assert.Equal(t, "Vulnerability CVE-2019-12900 found in package libbz2", v.Description)

	r.PackageName = ""
	v = Normalize(r)
	assert.Equal(t, "Vulnerability CVE-2019-12900 found in package unknown", v.Description)
	assert.Equal(t, "Upgrade package to a version that fixes CVE-2019-12900", v.Solution)
}

func TestNormalizeMissingIdentifier(t *testing.T) {
	v := Normalize(formats.Record{
		Severity:    "High",
		PackageName: "libbz2",
	})

	assert.Equal(t, "unknown", v.ID)
	assert.Equal(t, "unknown", v.Name)
	assert.Equal(t, "unknown", v.Identifiers[0].Value)
	assert.Equal(t, "Vulnerability unknown found in package libbz2", v.Description)
	assert.Equal(t, "Upgrade libbz2 to a version that fixes unknown", v.Solution)
}

func TestNormalizeMissingFieldDefaults(t *testing.T) {
	v := Normalize(formats.Record{CVE: "CVE-2019-12900", Severity: "High"})

	assert.Equal(t, "unknown", v.Location.Dependency.Package.Name)
	assert.Equal(t, "unknown", v.Location.Dependency.Version)
	assert.Equal(t, "unknown:unknown", v.Location.Image)
	assert.Equal(t, "unknown:unknown", v.Location.OperatingSystem)
}

func TestNormalizeSeverityClosedSet(t *testing.T) {
	closed := map[Severity]bool{
		SeverityCritical: true,
		SeverityHigh:     true,
		SeverityMedium:   true,
		SeverityLow:      true,
		SeverityUnknown:  true,
	}

	labels := []string{"CRITICAL", "Critical", "critical", "HiGh", "medium", "LOW", "", "bogus", "important"}
	for _, label := range labels {
		r := fullRecord()
		r.Severity = label

		v := Normalize(r)
		assert.True(t, closed[v.Severity], "severity %q escaped the closed set as %q", label, v.Severity)
	}

	upper := fullRecord()
	upper.Severity = "CRITICAL"
	title := fullRecord()
	title.Severity = "Critical"
	assert.Equal(t, Normalize(upper).Severity, Normalize(title).Severity)
}

// Feeding a normalized record's fields back through the normalizer must leave
// every mapped field unchanged; the synthesized fields are regenerated from
// the same inputs and so come out identical too.
func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(fullRecord())

	second := Normalize(formats.Record{
		CVE:            first.ID,
		Description:    first.Description,
		Severity:       string(first.Severity),
		PackageName:    first.Location.Dependency.Package.Name,
		PackageVersion: first.Location.Dependency.Version,
		ImageName:      "python",
		ImageTag:       "alpine3.8",
	})

	assert.Equal(t, first, second)
}

func TestNormalizeAll(t *testing.T) {
	records := []formats.Record{
		{CVE: "CVE-2019-12900", Severity: "Critical"},
		{CVE: "CVE-2016-3189", Severity: "Low"},
		{ID: "scanner-4711"},
	}

	vulns := NormalizeAll(records)
	require.Len(t, vulns, 3)

	// output order equals input order
	assert.Equal(t, "CVE-2019-12900", vulns[0].ID)
	assert.Equal(t, "CVE-2016-3189", vulns[1].ID)
	assert.Equal(t, "scanner-4711", vulns[2].ID)
}

func TestNormalizeAllEmpty(t *testing.T) {
	vulns := NormalizeAll(nil)
	assert.NotNil(t, vulns)
	assert.Empty(t, vulns)
}
