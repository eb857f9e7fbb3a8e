// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/hashicorp/cli"

	"github.com/hashicorp/tfve/internal/command"
	"github.com/hashicorp/tfve/version"
)

// Commands is the mapping of all the available commands.
var Commands map[string]cli.CommandFactory

func initCommands(meta command.Meta) {
	Commands = map[string]cli.CommandFactory{
		"export": func() (cli.Command, error) {
			return &command.ExportCommand{
				Meta: meta,
			}, nil
		},

		"outputs": func() (cli.Command, error) {
			return &command.OutputsCommand{
				Meta: meta,
			}, nil
		},

		"workspaces": func() (cli.Command, error) {
			return &command.WorkspacesCommand{
				Meta: meta,
			}, nil
		},

		"version": func() (cli.Command, error) {
			return &command.VersionCommand{
				Meta:    meta,
				Version: version.String(),
			}, nil
		},
	}
}
