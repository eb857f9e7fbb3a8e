// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
)

func TestVersion(t *testing.T) {
	ui := cli.NewMockUi()
	c := &VersionCommand{Meta: Meta{Ui: ui}, Version: "0.3.0-dev"}

	if code := c.Run(nil); code != 0 {
		t.Fatalf("wrong exit code %d", code)
	}
	if got := strings.TrimSpace(ui.OutputWriter.String()); got != "tfve v0.3.0-dev" {
		t.Errorf("wrong output: %q", got)
	}
}
