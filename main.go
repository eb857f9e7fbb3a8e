// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/tfve/internal/command"
	"github.com/hashicorp/tfve/internal/logging"
	"github.com/hashicorp/tfve/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.SetOutput(logging.LogOutput())
	log.Printf("[INFO] tfve version: %s", version.String())
	log.Printf("[INFO] Go runtime version: %s", runtime.Version())
	log.Printf("[INFO] CLI args: %#v", os.Args)

	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	initCommands(command.Meta{Ui: ui})

	// In case we're aliased to the version flag forms, rewrite to the
	// version subcommand.
	args := os.Args[1:]
	for _, arg := range args {
		if arg == "-v" || arg == "-version" || arg == "--version" {
			args = []string{"version"}
			break
		}
	}

	cliRunner := &cli.CLI{
		Name:     "tfve",
		Version:  version.String(),
		Args:     args,
		Commands: Commands,

		Autocomplete:          true,
		AutocompleteInstall:   "install-autocomplete",
		AutocompleteUninstall: "uninstall-autocomplete",

		HelpFunc:   helpFunc,
		HelpWriter: os.Stdout,
	}

	exitCode, err := cliRunner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}

	return exitCode
}
