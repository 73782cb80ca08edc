/*
Copyright 2023 The convertctl Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/containersec/convertctl/pkg/formats"
	"github.com/containersec/convertctl/pkg/formats/reportjson"
	"github.com/containersec/convertctl/pkg/formats/resultsjson"
	"github.com/containersec/convertctl/pkg/gitlab"
)

// loadVulnerabilities runs the whole pipeline for one scan report file:
// classify the shape, extract the container records, normalize them.
func loadVulnerabilities(path string) ([]gitlab.Vulnerability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tag, err := formats.Detect(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"file":   path,
		"format": tag.String(),
	}).Debug("classified scan report")

	var parsed formats.Format
	switch tag {
	case formats.TagReportJSON:
		parsed, err = reportjson.Parse(bytes.NewReader(data))
	case formats.TagResultsJSON:
		parsed, err = resultsjson.Parse(bytes.NewReader(data))
	default:
		return nil, formats.ErrUnrecognizedFormat
	}
	if err != nil {
		return nil, err
	}

	return gitlab.NormalizeAll(parsed.Records()), nil
}
