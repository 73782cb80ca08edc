/*
Copyright 2023 The convertctl Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"
)

func New() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "convertctl",
		Short:         "Convert container scanner exports into a container-scanning report",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	addConvert(cmd)
	addTriage(cmd)
	cmd.AddCommand(version.WithFont("doom"))

	return cmd
}

func Execute() error {
	return New().Execute()
}
