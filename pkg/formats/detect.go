package formats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Tag int

const (
	TagUnknown Tag = iota

	// TagResultsJSON is the flat "results" array shape shared by the API
	// export and the CLI json export.
	TagResultsJSON

	// TagReportJSON is the nested image → layer → package shape produced by
	// the CLI jsonv2 export.
	TagReportJSON
)

func (t Tag) String() string {
	switch t {
	case TagResultsJSON:
		return "results json"
	case TagReportJSON:
		return "report jsonv2"
	}

	return "unknown"
}

var ErrUnrecognizedFormat = errors.New("unrecognized scan report format")

// shape holds just enough of the top level to tell the known formats apart.
type shape struct {
	ReportType   string          `json:"reportType"`
	Images       json.RawMessage `json:"images"`
	Results      json.RawMessage `json:"results"`
	ScanMetadata json.RawMessage `json:"scanMetadata"`
}

// Detect classifies the top-level shape of a scan report. The nested jsonv2
// shape is checked before the flat results shape: malformed jsonv2 documents
// have been seen carrying a results-like key space, and classifying those as
// flat silently extracts nothing. There is no try-all-formats fallback for
// the same reason.
func Detect(data []byte) (Tag, error) {
	var s shape
	if err := json.Unmarshal(data, &s); err != nil {
		return TagUnknown, fmt.Errorf("unable to parse scan report: %w", err)
	}

	if s.ReportType != "" && isArray(s.Images) {
		return TagReportJSON, nil
	}

	if isArray(s.Results) {
		// The sub-variant changes nothing downstream; it is only worth a
		// debug line.
		if s.ScanMetadata != nil {
			log.Debug("flat results shape with scan metadata (API export)")
		} else {
			log.Debug("flat results shape without scan metadata (CLI json export)")
		}

		return TagResultsJSON, nil
	}

	return TagUnknown, ErrUnrecognizedFormat
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
