package gitlab

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	start := time.Date(2023, 4, 1, 10, 30, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)

	report := NewReport([]Vulnerability{Normalize(fullRecord())}, start, end)

	assert.Equal(t, ReportVersion, report.Version)
	assert.Equal(t, "container_scanning", report.Scan.Type)
	assert.Equal(t, "success", report.Scan.Status)
	assert.Equal(t, "2023-04-01T10:30:00", report.Scan.StartTime)
	assert.Equal(t, "2023-04-01T10:30:02", report.Scan.EndTime)
	assert.NotEmpty(t, report.Scan.Scanner.ID)
	assert.NotEmpty(t, report.Scan.Scanner.Vendor.Name)
	assert.Len(t, report.Vulnerabilities, 1)
}

func TestNewReportEmptyVulnerabilities(t *testing.T) {
	report := NewReport(nil, time.Now(), time.Now())

	out, err := json.Marshal(report)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"vulnerabilities":[]`)
	assert.NotContains(t, string(out), "null")
}

func TestReportRequiredFieldsAlwaysPresent(t *testing.T) {
	report := NewReport([]Vulnerability{Normalize(fullRecord())}, time.Now(), time.Now())

	out, err := json.Marshal(report)
	require.NoError(t, err)

	for _, field := range []string{
		`"id"`, `"name"`, `"description"`, `"severity"`, `"solution"`,
		`"identifiers"`, `"location"`, `"dependency"`, `"operating_system"`, `"image"`,
		`"start_time"`, `"end_time"`, `"analyzer"`, `"scanner"`,
	} {
		assert.True(t, strings.Contains(string(out), field), "missing %s", field)
	}
}
