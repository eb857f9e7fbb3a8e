// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/posener/complete"
)

// VersionCommand is a Command implementation that prints the version.
type VersionCommand struct {
	Meta

	Version string
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("tfve v%s", c.Version))
	return 0
}

func (c *VersionCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *VersionCommand) AutocompleteFlags() complete.Flags {
	return nil
}

func (c *VersionCommand) Help() string {
	helpText := `
Usage: tfve [global options] version

  Displays the version of tfve.
`
	return strings.TrimSpace(helpText)
}

func (c *VersionCommand) Synopsis() string {
	return "Show the current tfve version"
}
