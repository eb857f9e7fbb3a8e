// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloud

import (
	"context"
	"fmt"
	"log"
	"sort"

	tfe "github.com/hashicorp/go-tfe"
)

// Project is the parent grouping of a workspace.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Workspace is the identifying metadata of one workspace, as shown by
// the discovery mode.
type Workspace struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Project Project `json:"project"`
}

// ListWorkspaces returns every workspace in the organization, joined
// with its parent project's name, sorted by workspace name.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	projects, err := c.listProjects(ctx)
	if err != nil {
		return nil, err
	}

	var workspaces []Workspace
	options := &tfe.WorkspaceListOptions{
		ListOptions: tfe.ListOptions{PageNumber: 1, PageSize: pageSize},
	}
	for {
		page, err := c.tfe.Workspaces.List(ctx, c.organization, options)
		if err != nil {
			return nil, fmt.Errorf("failed to list workspaces in organization %q: %w", c.organization, err)
		}

		for _, ws := range page.Items {
			w := Workspace{ID: ws.ID, Name: ws.Name}
			if ws.Project != nil {
				w.Project.ID = ws.Project.ID
				w.Project.Name = projects[ws.Project.ID]
			}
			workspaces = append(workspaces, w)
		}

		if page.Pagination == nil || page.CurrentPage >= page.TotalPages {
			break
		}
		options.PageNumber = page.NextPage
	}

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].Name < workspaces[j].Name
	})

	log.Printf("[INFO] cloud: %d workspaces found in organization %q", len(workspaces), c.organization)
	return workspaces, nil
}

// listProjects returns a map of project ID to project name.
func (c *Client) listProjects(ctx context.Context) (map[string]string, error) {
	projects := make(map[string]string)
	options := &tfe.ProjectListOptions{
		ListOptions: tfe.ListOptions{PageNumber: 1, PageSize: pageSize},
	}
	for {
		page, err := c.tfe.Projects.List(ctx, c.organization, options)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects in organization %q: %w", c.organization, err)
		}

		for _, p := range page.Items {
			projects[p.ID] = p.Name
		}

		if page.Pagination == nil || page.CurrentPage >= page.TotalPages {
			break
		}
		options.PageNumber = page.NextPage
	}

	log.Printf("[INFO] cloud: %d projects found in organization %q", len(projects), c.organization)
	return projects, nil
}
