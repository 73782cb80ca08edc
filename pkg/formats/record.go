package formats

// Record is the format-independent view of one container vulnerability as
// extracted from a scan report. Fields a source format does not provide stay
// empty and are resolved during normalization.
type Record struct {
	CVE         string
	ID          string
	Description string
	Severity    string
	CWE         string

	PackageName    string
	PackageVersion string

	ImageName string
	ImageTag  string
}

type Format interface {
	Records() []Record
}
