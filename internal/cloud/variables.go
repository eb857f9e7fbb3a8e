// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloud

import (
	"context"

	tfe "github.com/hashicorp/go-tfe"
)

// ListVariables returns every variable of the workspace, across pages.
func (c *Client) ListVariables(ctx context.Context, workspaceID string) ([]*tfe.Variable, error) {
	var variables []*tfe.Variable
	options := &tfe.VariableListOptions{
		ListOptions: tfe.ListOptions{PageNumber: 1, PageSize: pageSize},
	}
	for {
		page, err := c.tfe.Variables.List(ctx, workspaceID, options)
		if err != nil {
			return nil, err
		}
		variables = append(variables, page.Items...)

		if page.Pagination == nil || page.CurrentPage >= page.TotalPages {
			break
		}
		options.PageNumber = page.NextPage
	}
	return variables, nil
}

// CreateVariable creates a new variable on the workspace.
func (c *Client) CreateVariable(ctx context.Context, workspaceID string, options tfe.VariableCreateOptions) (*tfe.Variable, error) {
	return c.tfe.Variables.Create(ctx, workspaceID, options)
}

// UpdateVariable replaces the value (and whatever else the options
// carry) of an existing variable on the workspace.
func (c *Client) UpdateVariable(ctx context.Context, workspaceID, variableID string, options tfe.VariableUpdateOptions) (*tfe.Variable, error) {
	return c.tfe.Variables.Update(ctx, workspaceID, variableID, options)
}
