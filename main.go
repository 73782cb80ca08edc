/*
Copyright 2023 The convertctl Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/containersec/convertctl/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
