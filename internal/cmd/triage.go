/*
Copyright 2023 The convertctl Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/containersec/convertctl/internal/triage"
)

func addTriage(parentCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "triage <scan-report.json>",
		Short: "Browse the converted report interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vulns, err := loadVulnerabilities(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(triage.New(vulns), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}

			return nil
		},
	}

	parentCmd.AddCommand(cmd)
}
