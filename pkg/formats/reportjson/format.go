package reportjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/containersec/convertctl/pkg/formats"
)

// defaultTag is applied when an image reference carries no explicit tag.
const defaultTag = "latest"

type Format struct {
	wrapped document
}

type document struct {
	ReportType string  `json:"reportType"`
	Images     []image `json:"images"`
}

type image struct {
	Image  string  `json:"image"`
	Layers []layer `json:"layers"`
}

type layer struct {
	Digest   string        `json:"digest"`
	Packages []packageInfo `json:"packages"`
}

type packageInfo struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Vulnerabilities []vulnerability `json:"vulnerabilities"`
}

type vulnerability struct {
	CVE      string `json:"cve"`
	Severity string `json:"severity"`
	CWE      string `json:"cwe"`
}

func Parse(input io.Reader) (Format, error) {
	dec := json.NewDecoder(input)
	d := new(document)
	if err := dec.Decode(d); err != nil {
		return Format{}, fmt.Errorf("unable to parse report jsonv2 data: %w", err)
	}

	return Format{
		wrapped: *d,
	}, nil
}

// Records walks image → layer → package → vulnerability and emits one record
// per vulnerability entry, carrying the owning image and package along. A
// branch missing any intermediate array contributes zero records; the rest of
// the document is still extracted. The jsonv2 shape carries no description,
// so that field is left for normalization to synthesize.
func (f Format) Records() []formats.Record {
	var records []formats.Record

	for _, img := range f.wrapped.Images {
		name, tag := splitImageRef(img.Image)

		for _, l := range img.Layers {
			for _, p := range l.Packages {
				for _, v := range p.Vulnerabilities {
					records = append(records, formats.Record{
						CVE:            v.CVE,
						Severity:       v.Severity,
						CWE:            v.CWE,
						PackageName:    p.Name,
						PackageVersion: p.Version,
						ImageName:      name,
						ImageTag:       tag,
					})
				}
			}
		}
	}

	return records
}

// splitImageRef splits "name:tag" into its parts. A non-empty reference
// without a tag gets the tag "latest", matching what a runtime would pull.
// Only a colon after the last path separator is a tag separator; a colon
// before it belongs to a registry port.
func splitImageRef(ref string) (name, tag string) {
	if ref == "" {
		return "", ""
	}

	if i := strings.LastIndex(ref, ":"); i > strings.LastIndex(ref, "/") {
		return ref[:i], ref[i+1:]
	}

	return ref, defaultTag
}
