/*
Copyright 2023 The convertctl Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/containersec/convertctl/pkg/gitlab"
)

func addConvert(parentCmd *cobra.Command) {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "convert <scan-report.json>",
		Short: "Convert a scanner export into a container-scanning report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC()

			// A classification failure aborts here, before any output file
			// is touched.
			vulns, err := loadVulnerabilities(args[0])
			if err != nil {
				return err
			}

			report := gitlab.NewReport(vulns, start, time.Now().UTC())

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("unable to encode report: %w", err)
			}
			out = append(out, '\n')

			if outputFile == "" {
				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return err
				}
			} else if err := os.WriteFile(outputFile, out, 0o644); err != nil {
				return fmt.Errorf("unable to write report: %w", err)
			}

			logSummary(vulns)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")

	parentCmd.AddCommand(cmd)
}

func logSummary(vulns []gitlab.Vulnerability) {
	counts := map[gitlab.Severity]int{}
	for _, v := range vulns {
		counts[v.Severity]++
	}

	log.WithFields(log.Fields{
		"critical": counts[gitlab.SeverityCritical],
		"high":     counts[gitlab.SeverityHigh],
		"medium":   counts[gitlab.SeverityMedium],
		"low":      counts[gitlab.SeverityLow],
		"unknown":  counts[gitlab.SeverityUnknown],
	}).Infof("converted %d container vulnerabilities", len(vulns))
}
