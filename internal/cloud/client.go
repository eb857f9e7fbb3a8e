// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package cloud wraps the HCP Terraform / Terraform Enterprise API
// client for the small surface this tool consumes: workspace and
// project discovery, and workspace variable reads and writes.
package cloud

import (
	"context"
	"fmt"
	"net/http"

	tfe "github.com/hashicorp/go-tfe"
)

const (
	// DefaultBaseURL is used when no -base-url is given.
	DefaultBaseURL = "https://app.terraform.io"

	headerSourceKey   = "X-Terraform-Integration"
	headerSourceValue = "tfve"

	// pageSize is the page size for list requests; 100 is the API's
	// documented maximum.
	pageSize = 100
)

// Client talks to one organization on one HCP Terraform or Terraform
// Enterprise instance.
type Client struct {
	organization string
	tfe          *tfe.Client
}

// NewClient dials nothing; it only validates the config and constructs
// the underlying API client. Server errors and rate limiting (HTTP 429)
// are retried by the client's own transport.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Organization == "" {
		return nil, fmt.Errorf("no organization configured")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("no API token configured")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	headers := make(http.Header)
	headers.Set(headerSourceKey, headerSourceValue)

	tc, err := tfe.NewClient(&tfe.Config{
		Address:           baseURL,
		Token:             cfg.Token,
		Headers:           headers,
		RetryServerErrors: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &Client{
		organization: cfg.Organization,
		tfe:          tc,
	}, nil
}

// Organization returns the configured organization name.
func (c *Client) Organization() string {
	return c.organization
}

// ResolveWorkspace looks up a workspace by name within the configured
// organization and returns its external ID.
func (c *Client) ResolveWorkspace(ctx context.Context, name string) (string, error) {
	ws, err := c.tfe.Workspaces.Read(ctx, c.organization, name)
	if err != nil {
		return "", fmt.Errorf("failed to read workspace %q in organization %q: %w", name, c.organization, err)
	}
	return ws.ID, nil
}
