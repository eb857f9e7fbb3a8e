// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/go-wordwrap"
)

// helpFunc is a cli.HelpFunc that the tfve command uses.
func helpFunc(commands map[string]cli.CommandFactory) string {
	// Determine the maximum key length, and classify based on type
	maxKeyLen := 0
	for key := range commands {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}

	helpText := fmt.Sprintf(`
Usage: tfve [global options] <subcommand> [args]

  Exports Terraform output values to HCP Terraform or Terraform
  Enterprise workspace variables. The available commands are listed
  below; "tfve <subcommand> -h" shows more information about each of
  them.

Main commands:
%s
Global options (use these before the subcommand, if any):
  -version       An alias for the "version" subcommand.
  -help          Show this help output, or the help for a specified
                 subcommand.
`, listCommands(commands, maxKeyLen))

	return strings.TrimSpace(helpText)
}

// listCommands just lists the commands in the map with the given
// maximum key length.
func listCommands(commands map[string]cli.CommandFactory, maxKeyLen int) string {
	var buf bytes.Buffer

	keys := make([]string, 0, len(commands))
	for key := range commands {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		commandFunc, ok := commands[key]
		if !ok {
			// never should happen since we built the list from the map
			panic("command not found: " + key)
		}

		command, err := commandFunc()
		if err != nil {
			log.Printf("[ERR] cli: Command %q failed to load: %s", key, err)
			continue
		}

		key = fmt.Sprintf("%s%s", key, strings.Repeat(" ", maxKeyLen-len(key)))
		synopsis := wordwrap.WrapString(command.Synopsis(), 60)
		buf.WriteString(fmt.Sprintf("  %s  %s\n", key, synopsis))
	}

	return buf.String()
}
