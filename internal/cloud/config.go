// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloud

import (
	"fmt"
	"os"
)

// Environment variable names for the credentials. The token is secret
// and must never appear in logs or error messages.
const (
	envOrganization = "TFVE_ORGANIZATION_NAME"
	envToken        = "TFVE_TOKEN"
)

// Config carries everything needed to talk to HCP Terraform or a
// Terraform Enterprise instance. It is built once at startup and passed
// around explicitly; there is no hidden process-wide state.
type Config struct {
	// BaseURL is the scheme://host of the target system, without the
	// /api/v2 prefix. Empty means DefaultBaseURL.
	BaseURL string

	// Organization is the organization holding the target workspaces.
	Organization string

	// Token is the API token used for authentication.
	Token string
}

// ConfigFromEnv builds a Config from the TFVE_* environment variables
// and the given base URL.
func ConfigFromEnv(baseURL string) (Config, error) {
	organization := os.Getenv(envOrganization)
	if organization == "" {
		return Config{}, fmt.Errorf("environment variable %s is not set", envOrganization)
	}
	token := os.Getenv(envToken)
	if token == "" {
		return Config{}, fmt.Errorf("environment variable %s is not set", envToken)
	}

	return Config{
		BaseURL:      baseURL,
		Organization: organization,
		Token:        token,
	}, nil
}
