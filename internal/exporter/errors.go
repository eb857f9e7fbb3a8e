// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package exporter

import (
	"fmt"

	"github.com/hashicorp/tfve/internal/exportlist"
)

// MissingOutputError is recorded when a directive names an output that
// is not present in the output values file. Sensitive outputs are
// dropped at parse time, so a directive pointing at one lands here too.
type MissingOutputError struct {
	Directive exportlist.Directive
}

func (e *MissingOutputError) Error() string {
	return fmt.Sprintf(
		"no output named %q for variable %q (export list line %d)",
		e.Directive.SourceOutput, e.Directive.TargetVariable, e.Directive.Line,
	)
}

// ConflictError is recorded when the target variable already exists on
// the workspace and updates were not allowed. It is the safety rail
// against accidental overwrites; no mutation happens.
type ConflictError struct {
	Workspace string
	Directive exportlist.Directive
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"variable %q already exists in workspace %q; pass -allow-update to overwrite it",
		e.Directive.TargetVariable, e.Workspace,
	)
}

// RemoteError wraps a failed API call with enough context for the
// operator to retry by hand. The run keeps going; nothing is retried
// automatically.
type RemoteError struct {
	Workspace string
	Op        string
	Err       error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("workspace %q: %s: %s", e.Workspace, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
