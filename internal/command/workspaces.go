// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/posener/complete"

	"github.com/hashicorp/tfve/internal/cloud"
)

// WorkspacesCommand is a Command implementation that lists the
// workspaces of the configured organization with their parent project.
// It is read-only and shares nothing with the export machinery.
type WorkspacesCommand struct {
	Meta
}

func (c *WorkspacesCommand) Run(args []string) int {
	args = c.Meta.process(args)

	var baseURL string
	var jsonOutput bool
	cmdFlags := c.Meta.defaultFlagSet("workspaces")
	cmdFlags.StringVar(&baseURL, "base-url", cloud.DefaultBaseURL, "base URL of the API")
	cmdFlags.BoolVar(&jsonOutput, "json", false, "machine-readable output")
	if err := cmdFlags.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s\n", err.Error()))
		return cli.RunResultHelp
	}
	if len(cmdFlags.Args()) > 0 {
		c.Ui.Error("The workspaces command expects no arguments.")
		return cli.RunResultHelp
	}

	client, err := c.cloudClient(baseURL)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to set up API client: %s", err))
		return 1
	}

	workspaces, err := client.ListWorkspaces(context.Background())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to list workspaces: %s", err))
		return 1
	}

	if jsonOutput {
		out, err := json.MarshalIndent(workspaces, "", "  ")
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to marshal workspaces: %s", err))
			return 1
		}
		c.Ui.Output(string(out))
		return 0
	}

	if len(workspaces) == 0 {
		c.Ui.Output(fmt.Sprintf("No workspaces found in organization %q.", client.Organization()))
		return 0
	}

	for _, ws := range workspaces {
		c.Ui.Output(c.Colorize().Color(fmt.Sprintf(
			"[bold]%s[reset] (%s)  project: %s (%s)",
			ws.Name, ws.ID, ws.Project.Name, ws.Project.ID,
		)))
	}
	return 0
}

func (c *WorkspacesCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *WorkspacesCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-base-url": complete.PredictAnything,
		"-json":     complete.PredictNothing,
		"-no-color": complete.PredictNothing,
	}
}

func (c *WorkspacesCommand) Help() string {
	helpText := `
Usage: tfve [global options] workspaces [options]

  Lists every workspace visible in the configured organization,
  together with its parent project. Read-only; needs only the
  TFVE_ORGANIZATION_NAME and TFVE_TOKEN environment variables.

Options:

  -base-url=url   Base URL of the API. Defaults to
                  https://app.terraform.io.

  -json           Print the workspace list as JSON.

  -no-color       Disable color codes in the command output.
`
	return strings.TrimSpace(helpText)
}

func (c *WorkspacesCommand) Synopsis() string {
	return "List the organization's workspaces and projects"
}
