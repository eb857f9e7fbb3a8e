// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/tfve/internal/command"
)

func TestHelpFunc_listsAllCommands(t *testing.T) {
	initCommands(command.Meta{Ui: cli.NewMockUi()})

	help := helpFunc(Commands)
	for name := range Commands {
		if !strings.Contains(help, name) {
			t.Errorf("help output does not mention %q:\n%s", name, help)
		}
	}
}

func TestCommands_implementInterface(t *testing.T) {
	initCommands(command.Meta{Ui: cli.NewMockUi()})

	for name, factory := range Commands {
		cmd, err := factory()
		if err != nil {
			t.Fatalf("command %q failed to load: %s", name, err)
		}
		if cmd.Synopsis() == "" {
			t.Errorf("command %q has no synopsis", name)
		}
		if cmd.Help() == "" {
			t.Errorf("command %q has no help", name)
		}
	}
}
