package resultsjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/containersec/convertctl/pkg/formats"
)

// typeContainers marks the results elements this tool cares about; every
// other scan category is passed over.
const typeContainers = "containers"

type Format struct {
	wrapped document
}

type document struct {
	Results []result `json:"results"`
}

type result struct {
	Type                 string  `json:"type"`
	ID                   string  `json:"id"`
	Severity             string  `json:"severity"`
	Description          string  `json:"description"`
	Data                 data    `json:"data"`
	VulnerabilityDetails details `json:"vulnerabilityDetails"`
}

type data struct {
	PackageName    string `json:"packageName"`
	PackageVersion string `json:"packageVersion"`
	ImageName      string `json:"imageName"`
	ImageTag       string `json:"imageTag"`
}

type details struct {
	CVEName string `json:"cveName"`
	CWEName string `json:"cweName"`
}

func Parse(input io.Reader) (Format, error) {
	dec := json.NewDecoder(input)
	d := new(document)
	if err := dec.Decode(d); err != nil {
		return Format{}, fmt.Errorf("unable to parse results JSON data: %w", err)
	}

	return Format{
		wrapped: *d,
	}, nil
}

// Records returns one record per containers-typed result, in input order. A
// document holding only other scan categories yields an empty set, which is a
// valid outcome rather than an error.
func (f Format) Records() []formats.Record {
	records := make([]formats.Record, 0, len(f.wrapped.Results))

	for _, r := range f.wrapped.Results {
		if r.Type != typeContainers {
			continue
		}

		records = append(records, formats.Record{
			CVE:            r.VulnerabilityDetails.CVEName,
			ID:             r.ID,
			Description:    r.Description,
			Severity:       r.Severity,
			CWE:            r.VulnerabilityDetails.CWEName,
			PackageName:    r.Data.PackageName,
			PackageVersion: r.Data.PackageVersion,
			ImageName:      r.Data.ImageName,
			ImageTag:       r.Data.ImageTag,
		})
	}

	return records
}
