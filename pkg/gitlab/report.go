package gitlab

import "time"

// ReportVersion is the security report schema version this tool emits.
const ReportVersion = "14.0.2"

// TimeFormat is the timestamp layout the report schema requires.
const TimeFormat = "2006-01-02T15:04:05"

const (
	scanType   = "container_scanning"
	scanStatus = "success"

	scannerID      = "container_scan"
	scannerName    = "Container Scan"
	scannerVersion = "1.0.0"
	vendorName     = "ContainerSec"
)

// Report is the container-scanning report consumed by the security dashboard,
// following the GitLab security report schema.
type Report struct {
	Version         string          `json:"version"`
	Scan            Scan            `json:"scan"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

type Scan struct {
	Analyzer  ScannerInfo `json:"analyzer"`
	Scanner   ScannerInfo `json:"scanner"`
	Type      string      `json:"type"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Status    string      `json:"status"`
}

type ScannerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Vendor  Vendor `json:"vendor"`
}

type Vendor struct {
	Name string `json:"name"`
}

type Vulnerability struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
	Solution    string       `json:"solution"`
	Identifiers []Identifier `json:"identifiers"`
	Location    Location     `json:"location"`
}

type Identifier struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	URL   string `json:"url"`
}

type Location struct {
	Dependency      Dependency `json:"dependency"`
	OperatingSystem string     `json:"operating_system"`
	Image           string     `json:"image"`
}

type Dependency struct {
	Package Package `json:"package"`
	Version string  `json:"version"`
}

type Package struct {
	Name string `json:"name"`
}

// NewReport wraps normalized vulnerabilities in the fixed report envelope.
// The vulnerabilities field always marshals as an array, never null.
func NewReport(vulns []Vulnerability, start, end time.Time) Report {
	if vulns == nil {
		vulns = []Vulnerability{}
	}

	info := ScannerInfo{
		ID:      scannerID,
		Name:    scannerName,
		Version: scannerVersion,
		Vendor:  Vendor{Name: vendorName},
	}

	return Report{
		Version: ReportVersion,
		Scan: Scan{
			Analyzer:  info,
			Scanner:   info,
			Type:      scanType,
			StartTime: start.Format(TimeFormat),
			EndTime:   end.Format(TimeFormat),
			Status:    scanStatus,
		},
		Vulnerabilities: vulns,
	}
}
