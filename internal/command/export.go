// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/posener/complete"

	"github.com/hashicorp/tfve/internal/cloud"
	"github.com/hashicorp/tfve/internal/exporter"
	"github.com/hashicorp/tfve/internal/exportlist"
	"github.com/hashicorp/tfve/internal/outputs"
)

// ExportCommand is a Command implementation that exports output values
// to workspace variables according to an export list.
type ExportCommand struct {
	Meta
}

func (c *ExportCommand) Run(args []string) int {
	args = c.Meta.process(args)

	var baseURL, workspacesArg string
	var allowUpdate bool
	cmdFlags := c.Meta.defaultFlagSet("export")
	cmdFlags.StringVar(&baseURL, "base-url", cloud.DefaultBaseURL, "base URL of the API")
	cmdFlags.StringVar(&workspacesArg, "workspaces", "", "comma-separated target workspace names")
	cmdFlags.BoolVar(&allowUpdate, "allow-update", false, "allow updating existing variables")
	if err := cmdFlags.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s\n", err.Error()))
		return cli.RunResultHelp
	}

	args = cmdFlags.Args()
	if len(args) != 2 {
		c.Ui.Error("Expected exactly two arguments: OUTPUTS_FILE and EXPORT_LIST.")
		return cli.RunResultHelp
	}
	outputsPath, exportListPath := args[0], args[1]

	names := splitWorkspaceNames(workspacesArg)
	if len(names) == 0 {
		c.Ui.Error("No target workspaces. Set -workspaces with one or more workspace names.")
		return 1
	}

	// A broken export list aborts the run before any remote call, so
	// nothing is ever partially applied from a file that didn't parse.
	directives, err := exportlist.ParseFile(exportListPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to parse export list: %s", err))
		return 1
	}
	if len(directives) == 0 {
		c.Ui.Error(fmt.Sprintf("No entries found in export list %s.", exportListPath))
		return 1
	}

	outs, err := outputs.ParseFile(outputsPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to parse output values: %s", err))
		return 1
	}

	client, err := c.cloudClient(baseURL)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to set up API client: %s", err))
		return 1
	}

	ctx := context.Background()

	// Workspaces are independent: a name that doesn't resolve is
	// reported and skipped, the rest still run.
	var resolveFailures []string
	var targets []exporter.Workspace
	for _, name := range names {
		id, err := client.ResolveWorkspace(ctx, name)
		if err != nil {
			resolveFailures = append(resolveFailures, fmt.Sprintf("- %s", err))
			continue
		}
		targets = append(targets, exporter.Workspace{ID: id, Name: name})
	}

	exp := &exporter.Exporter{
		Store:       client,
		Outputs:     outs,
		Directives:  directives,
		AllowUpdate: allowUpdate,
	}
	summary := exp.Run(ctx, targets)

	c.showSummary(summary)
	for _, f := range resolveFailures {
		c.Ui.Error(f)
	}

	if len(resolveFailures) > 0 || !summary.OK() {
		return 1
	}
	return 0
}

func (c *ExportCommand) showSummary(summary *exporter.Summary) {
	for _, res := range summary.Results {
		c.Ui.Output(c.Colorize().Color(fmt.Sprintf(
			"[bold]%s[reset]: %d created, %d updated, %d conflict(s), %d error(s)",
			res.Workspace.Name,
			res.Created,
			res.Updated,
			res.Conflicts,
			len(res.Problems)-res.Conflicts,
		)))
		for _, p := range res.Problems {
			c.Ui.Error(fmt.Sprintf("- %s", p))
		}
	}
}

// splitWorkspaceNames splits the -workspaces flag value on commas,
// dropping empty entries.
func splitWorkspaceNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (c *ExportCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*")
}

func (c *ExportCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-base-url":     complete.PredictAnything,
		"-workspaces":   complete.PredictAnything,
		"-allow-update": complete.PredictNothing,
		"-no-color":     complete.PredictNothing,
	}
}

func (c *ExportCommand) Help() string {
	helpText := `
Usage: tfve [global options] export [options] OUTPUTS_FILE EXPORT_LIST

  Creates or updates variables on one or more workspaces from the
  output values in OUTPUTS_FILE, as generated by "terraform output
  -json", following the mappings in EXPORT_LIST.

  Each non-comment line of the export list maps one output to one
  variable:

      <output name>,<variable name>[,<description>]

  Strings, numbers and bools are stored as plain values; everything
  else is stored as an HCL expression. Variables are created in the
  "terraform" category and are never marked sensitive; sensitive
  outputs are not exported at all.

  A variable that already exists on a workspace is a conflict and is
  left untouched unless -allow-update is given.

  The organization and API token are read from the environment
  variables TFVE_ORGANIZATION_NAME and TFVE_TOKEN.

Options:

  -workspaces=name1,...  Comma-separated names of the target workspaces.
                         Required. Every mapping is applied to every
                         workspace; failures in one workspace do not
                         block the others.

  -allow-update          Permit overwriting variables that already
                         exist. Off by default.

  -base-url=url          Base URL of the API. Defaults to
                         https://app.terraform.io.

  -no-color              Disable color codes in the command output.
`
	return strings.TrimSpace(helpText)
}

func (c *ExportCommand) Synopsis() string {
	return "Export output values to workspace variables"
}
