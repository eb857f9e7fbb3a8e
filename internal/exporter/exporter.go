// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package exporter implements the synchronization between local output
// values and workspace variables: for each export list directive it
// creates the target variable if it does not exist, updates it if
// updates are allowed, and records a conflict otherwise.
//
// The exporter is best-effort: expected per-directive failures (missing
// outputs, conflicts, API errors) are accumulated per workspace rather
// than aborting the run, so one bad mapping does not block unrelated
// ones. The caller decides the exit status from the summary.
package exporter

import (
	"context"
	"log"

	tfe "github.com/hashicorp/go-tfe"

	"github.com/hashicorp/tfve/internal/exportlist"
	"github.com/hashicorp/tfve/internal/outputs"
)

// VariableStore is the narrow slice of the workspace variables API the
// exporter needs. *cloud.Client implements it; tests substitute an
// in-memory fake.
type VariableStore interface {
	ListVariables(ctx context.Context, workspaceID string) ([]*tfe.Variable, error)
	CreateVariable(ctx context.Context, workspaceID string, options tfe.VariableCreateOptions) (*tfe.Variable, error)
	UpdateVariable(ctx context.Context, workspaceID, variableID string, options tfe.VariableUpdateOptions) (*tfe.Variable, error)
}

// Workspace identifies one target workspace.
type Workspace struct {
	ID   string
	Name string
}

// Exporter holds the immutable inputs of one run.
type Exporter struct {
	Store      VariableStore
	Outputs    outputs.Map
	Directives []exportlist.Directive

	// AllowUpdate permits overwriting variables that already exist.
	// Without it an existing variable is a conflict, not an update.
	AllowUpdate bool
}

// Result is the outcome for a single workspace.
type Result struct {
	Workspace Workspace

	Created   int
	Updated   int
	Conflicts int

	// Problems holds every per-directive error for this workspace, in
	// directive order: *MissingOutputError, *ConflictError or
	// *RemoteError.
	Problems []error
}

// Summary aggregates the per-workspace results of a run.
type Summary struct {
	Results []*Result
}

// OK reports whether every directive was applied to every workspace.
func (s *Summary) OK() bool {
	for _, r := range s.Results {
		if len(r.Problems) > 0 {
			return false
		}
	}
	return true
}

// Run applies every directive to every workspace, in order. Workspaces
// are independent: a failure in one never blocks the others.
func (e *Exporter) Run(ctx context.Context, workspaces []Workspace) *Summary {
	s := &Summary{}
	for _, ws := range workspaces {
		s.Results = append(s.Results, e.runWorkspace(ctx, ws))
	}
	return s
}

func (e *Exporter) runWorkspace(ctx context.Context, ws Workspace) *Result {
	res := &Result{Workspace: ws}

	// Snapshot the existing variables once. Variables we create below
	// are folded into the snapshot so that a duplicate directive later
	// in the file sees them and takes the update/conflict path instead
	// of attempting a second create.
	existing, err := e.Store.ListVariables(ctx, ws.ID)
	if err != nil {
		res.Problems = append(res.Problems, &RemoteError{
			Workspace: ws.Name,
			Op:        "list variables",
			Err:       err,
		})
		return res
	}
	byKey := make(map[string]*tfe.Variable, len(existing))
	for _, v := range existing {
		byKey[v.Key] = v
	}

	for _, d := range e.Directives {
		out, ok := e.Outputs[d.SourceOutput]
		if !ok {
			res.Problems = append(res.Problems, &MissingOutputError{Directive: d})
			continue
		}

		value, hcl := RenderValue(out.Value)

		cur, exists := byKey[d.TargetVariable]
		if !exists {
			opts := tfe.VariableCreateOptions{
				Key:       tfe.String(d.TargetVariable),
				Value:     tfe.String(value),
				HCL:       tfe.Bool(hcl),
				Category:  tfe.Category(tfe.CategoryTerraform),
				Sensitive: tfe.Bool(false),
			}
			if d.HasDescription {
				opts.Description = tfe.String(d.Description)
			}

			v, err := e.Store.CreateVariable(ctx, ws.ID, opts)
			if err != nil {
				res.Problems = append(res.Problems, &RemoteError{
					Workspace: ws.Name,
					Op:        "create variable " + d.TargetVariable,
					Err:       err,
				})
				continue
			}
			log.Printf("[INFO] exporter: created variable %q (%s) in workspace %q", v.Key, v.ID, ws.Name)
			byKey[v.Key] = v
			res.Created++
			continue
		}

		if !e.AllowUpdate {
			res.Conflicts++
			res.Problems = append(res.Problems, &ConflictError{
				Workspace: ws.Name,
				Directive: d,
			})
			continue
		}

		opts := tfe.VariableUpdateOptions{
			Key:   tfe.String(d.TargetVariable),
			Value: tfe.String(value),
			HCL:   tfe.Bool(hcl),
		}
		// A directive without a description leaves the remote
		// description untouched.
		if d.HasDescription {
			opts.Description = tfe.String(d.Description)
		}

		v, err := e.Store.UpdateVariable(ctx, ws.ID, cur.ID, opts)
		if err != nil {
			res.Problems = append(res.Problems, &RemoteError{
				Workspace: ws.Name,
				Op:        "update variable " + d.TargetVariable,
				Err:       err,
			})
			continue
		}
		log.Printf("[INFO] exporter: updated variable %q (%s) in workspace %q", v.Key, v.ID, ws.Name)
		byKey[v.Key] = v
		res.Updated++
	}

	return res
}
