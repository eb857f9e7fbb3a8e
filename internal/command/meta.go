// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package command contains the CLI commands of tfve. Every command
// embeds Meta, which carries the pieces they all share.
package command

import (
	"flag"
	"io"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/colorstring"

	"github.com/hashicorp/tfve/internal/cloud"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	// Ui is used for all command output. If nil the command will
	// panic, so main always sets it.
	Ui cli.Ui

	// color is false if -no-color was given. Set by process.
	color bool
}

// process strips the global -no-color flag from the argument list.
// Commands call it before parsing their own flags.
func (m *Meta) process(args []string) []string {
	m.color = true
	for i, v := range args {
		if v == "-no-color" {
			m.color = false
			args = append(args[:i], args[i+1:]...)
			break
		}
	}
	return args
}

// Colorize returns the colorization structure for output, honoring the
// -no-color flag.
func (m *Meta) Colorize() *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !m.color,
		Reset:   true,
	}
}

// defaultFlagSet creates a default flag set for commands. Flag errors
// are reported by the command itself, not by the flag package.
func (m *Meta) defaultFlagSet(n string) *flag.FlagSet {
	f := flag.NewFlagSet(n, flag.ContinueOnError)
	f.SetOutput(io.Discard)

	// Suppress the flag package's own usage output; commands print
	// their Help text instead.
	f.Usage = func() {}

	return f
}

// cloudClient builds the API client from the TFVE_* environment
// variables and the -base-url flag value.
func (m *Meta) cloudClient(baseURL string) (*cloud.Client, error) {
	cfg, err := cloud.ConfigFromEnv(baseURL)
	if err != nil {
		return nil, err
	}
	return cloud.NewClient(cfg)
}
