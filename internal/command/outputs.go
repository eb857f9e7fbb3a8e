// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/posener/complete"

	"github.com/hashicorp/tfve/internal/exporter"
	"github.com/hashicorp/tfve/internal/outputs"
)

// OutputsCommand is a Command implementation that shows the output
// values of an output values file the way the exporter would send them:
// the rendered value string and whether it would be stored as an HCL
// expression. It makes no API calls.
type OutputsCommand struct {
	Meta
}

func (c *OutputsCommand) Run(args []string) int {
	args = c.Meta.process(args)

	var jsonOutput bool
	cmdFlags := c.Meta.defaultFlagSet("outputs")
	cmdFlags.BoolVar(&jsonOutput, "json", false, "machine-readable output")
	if err := cmdFlags.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s\n", err.Error()))
		return cli.RunResultHelp
	}

	args = cmdFlags.Args()
	if len(args) != 1 {
		c.Ui.Error("Expected exactly one argument: OUTPUTS_FILE.")
		return cli.RunResultHelp
	}

	outs, err := outputs.ParseFile(args[0])
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to parse output values: %s", err))
		return 1
	}

	if jsonOutput {
		type entry struct {
			Value string `json:"value"`
			HCL   bool   `json:"hcl"`
		}
		rendered := make(map[string]entry, len(outs))
		for name, out := range outs {
			value, hcl := exporter.RenderValue(out.Value)
			rendered[name] = entry{Value: value, HCL: hcl}
		}
		out, err := json.MarshalIndent(rendered, "", "  ")
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to marshal outputs: %s", err))
			return 1
		}
		c.Ui.Output(string(out))
		return 0
	}

	if len(outs) == 0 {
		c.Ui.Output("No non-sensitive outputs found.")
		return 0
	}

	for _, name := range outs.Names() {
		value, hcl := exporter.RenderValue(outs[name].Value)
		kind := "literal"
		if hcl {
			kind = "hcl"
		}
		c.Ui.Output(c.Colorize().Color(fmt.Sprintf(
			"[bold]%s[reset] (%s) = %s", name, kind, value,
		)))
	}
	return 0
}

func (c *OutputsCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*.json")
}

func (c *OutputsCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-json":     complete.PredictNothing,
		"-no-color": complete.PredictNothing,
	}
}

func (c *OutputsCommand) Help() string {
	helpText := `
Usage: tfve [global options] outputs [options] OUTPUTS_FILE

  Shows the non-sensitive output values found in OUTPUTS_FILE, as
  generated by "terraform output -json", rendered exactly as the export
  command would store them. Sensitive outputs are omitted. No API
  access is needed.

Options:

  -json       Print the rendered outputs as JSON.

  -no-color   Disable color codes in the command output.
`
	return strings.TrimSpace(helpText)
}

func (c *OutputsCommand) Synopsis() string {
	return "Show the output values available for export"
}
